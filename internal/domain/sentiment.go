package domain

import "strings"

// Sentiment es la etiqueta del clasificador para un texto.
type Sentiment string

const (
	SentimentPositive   Sentiment = "positive"
	SentimentNegative   Sentiment = "negative"
	SentimentNeutral    Sentiment = "neutral"
	SentimentDistressed Sentiment = "distressed"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral, SentimentDistressed:
		return true
	default:
		return false
	}
}

// ParseSentiment acepta la cadena vacia como "sin clasificar".
func ParseSentiment(raw string) (Sentiment, error) {
	s := Sentiment(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return "", nil
	}
	if !s.Valid() {
		return "", ErrInvalidSentiment
	}
	return s, nil
}

// SentimentCounts acumula ocurrencias por etiqueta.
type SentimentCounts struct {
	Positive   int `json:"positive"`
	Negative   int `json:"negative"`
	Neutral    int `json:"neutral"`
	Distressed int `json:"distressed"`
}

// Add suma una ocurrencia de s. Etiquetas desconocidas se ignoran.
func (c *SentimentCounts) Add(s Sentiment) {
	switch s {
	case SentimentPositive:
		c.Positive++
	case SentimentNegative:
		c.Negative++
	case SentimentNeutral:
		c.Neutral++
	case SentimentDistressed:
		c.Distressed++
	}
}

func (c SentimentCounts) Total() int {
	return c.Positive + c.Negative + c.Neutral + c.Distressed
}

// Severity es el nivel de angustia usado para elegir recursos de apoyo.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func ParseSeverity(raw string) (Severity, error) {
	s := Severity(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return s, nil
	default:
		return "", ErrInvalidSeverity
	}
}
