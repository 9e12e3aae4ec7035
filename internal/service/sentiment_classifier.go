package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"moodfeed/internal/domain"
)

// SentimentClassifier asigna una etiqueta de sentimiento por coincidencia de palabras clave.
type SentimentClassifier struct {
	distress []string
	negative []string
	positive []string
}

// DefaultSentimentClassifier permite uso directo sin instanciar.
var DefaultSentimentClassifier = NewSentimentClassifier()

func NewSentimentClassifier() *SentimentClassifier {
	return &SentimentClassifier{
		distress: []string{
			"depressed", "suicidal", "hopeless", "worthless", "dying",
			"can't take it", "end it all", "kill myself", "hate myself",
			"don't want to live", "no reason to live", "giving up",
			"can't handle", "overwhelmed", "too much", "breaking down",
		},
		negative: []string{
			"sad", "bad", "angry", "upset", "frustrated", "annoyed", "tired",
			"exhausted", "hate", "dislike", "awful", "terrible", "horrible",
			"anxious", "worried", "stressed", "depressing", "disappointing",
			"lonely", "miserable", "hurt", "betrayed", "rejected", "ignored",
			"struggling", "failing", "lost", "confused", "unsure",
		},
		positive: []string{
			"happy", "excited", "great", "wonderful", "amazing", "love",
			"like", "enjoy", "beautiful", "fantastic", "awesome", "good",
			"excellent", "pleased", "delighted", "grateful", "thankful",
			"blessed", "hopeful", "inspiring", "motivated", "peaceful",
			"content", "satisfied", "accomplished", "proud", "confident",
		},
	}
}

// SentimentAnalysis expone la etiqueta junto con los terminos que la produjeron.
type SentimentAnalysis struct {
	Sentiment     domain.Sentiment `json:"sentiment"`
	DistressMatch string           `json:"distress_match,omitempty"`
	PositiveHits  []string         `json:"positive_hits,omitempty"`
	NegativeHits  []string         `json:"negative_hits,omitempty"`
}

// Classify devuelve la etiqueta de sentimiento de text.
func (c *SentimentClassifier) Classify(text string) domain.Sentiment {
	return c.Analyze(text).Sentiment
}

// Analyze aplica las reglas de clasificacion:
// cualquier frase de angustia gana de inmediato; si no, se cuentan entradas distintas de
// cada lexico contenidas como subcadena y el empate (incluido 0-0) es neutral.
func (c *SentimentClassifier) Analyze(text string) SentimentAnalysis {
	if strings.TrimSpace(text) == "" {
		return SentimentAnalysis{Sentiment: domain.SentimentNeutral}
	}
	l := cases.Lower(language.Und).String(text)

	for _, phrase := range c.distress {
		if strings.Contains(l, phrase) {
			return SentimentAnalysis{Sentiment: domain.SentimentDistressed, DistressMatch: phrase}
		}
	}

	res := SentimentAnalysis{
		PositiveHits: matchTerms(l, c.positive),
		NegativeHits: matchTerms(l, c.negative),
	}
	switch {
	case len(res.PositiveHits) > len(res.NegativeHits):
		res.Sentiment = domain.SentimentPositive
	case len(res.NegativeHits) > len(res.PositiveHits):
		res.Sentiment = domain.SentimentNegative
	default:
		res.Sentiment = domain.SentimentNeutral
	}
	return res
}

func matchTerms(l string, lexicon []string) []string {
	var hits []string
	for _, term := range lexicon {
		if strings.Contains(l, term) {
			hits = append(hits, term)
		}
	}
	return hits
}
