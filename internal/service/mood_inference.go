package service

import "moodfeed/internal/domain"

// DistressMood es el mood fijo que se infiere cuando aparece cualquier senal de angustia.
// Su conjunto complementario (calm, happy) es el que lleva contenido calmante al feed.
const DistressMood = domain.MoodSad

// MoodInference agrega sentimientos de un historial de comentarios en un mood representativo.
type MoodInference struct {
	classifier *SentimentClassifier
}

func NewMoodInference(classifier *SentimentClassifier) *MoodInference {
	if classifier == nil {
		classifier = DefaultSentimentClassifier
	}
	return &MoodInference{classifier: classifier}
}

// Tally cuenta sentimientos; una etiqueta ya cacheada se usa tal cual y no se reclasifica.
func (m *MoodInference) Tally(comments []domain.Comment) domain.SentimentCounts {
	var counts domain.SentimentCounts
	for _, c := range comments {
		counts.Add(m.SentimentOf(c))
	}
	return counts
}

// SentimentOf devuelve la etiqueta cacheada del comentario o la clasifica.
func (m *MoodInference) SentimentOf(c domain.Comment) domain.Sentiment {
	if c.Sentiment.Valid() {
		return c.Sentiment
	}
	return m.classifier.Classify(c.Text)
}

// DominantSentiment elige el sentimiento ganador.
// Neutral arranca como lider, asi que empatar con neutral deja neutral.
// Positive se evalua antes que negative y por eso gana sus empates.
func DominantSentiment(counts domain.SentimentCounts) domain.Sentiment {
	if counts.Distressed > 0 {
		return domain.SentimentDistressed
	}
	dominant := domain.SentimentNeutral
	best := counts.Neutral
	if counts.Positive > best {
		dominant = domain.SentimentPositive
		best = counts.Positive
	}
	if counts.Negative > best {
		dominant = domain.SentimentNegative
	}
	return dominant
}

// MoodFromSentiment mapea un sentimiento a un mood; la eleccion entre candidatos sale de rng.
func MoodFromSentiment(sentiment domain.Sentiment, rng RandSource) domain.Mood {
	switch sentiment {
	case domain.SentimentPositive:
		if rng.Float64() > 0.5 {
			return domain.MoodHappy
		}
		return domain.MoodExcited
	case domain.SentimentNegative:
		if rng.Float64() > 0.7 {
			return domain.MoodSad
		}
		if rng.Float64() > 0.5 {
			return domain.MoodAngry
		}
		return domain.MoodAnxious
	case domain.SentimentDistressed:
		if rng.Float64() > 0.5 {
			return domain.MoodSad
		}
		return domain.MoodStressed
	default:
		return domain.MoodCalm
	}
}

// InferMood devuelve el mood inferido y false cuando no hay comentarios.
// Sin inferencia el llamador no debe pisar el mood elegido por el usuario.
func (m *MoodInference) InferMood(comments []domain.Comment, rng RandSource) (domain.Mood, bool) {
	if len(comments) == 0 {
		return "", false
	}
	counts := m.Tally(comments)
	if counts.Distressed > 0 {
		return DistressMood, true
	}
	return MoodFromSentiment(DominantSentiment(counts), rng), true
}
