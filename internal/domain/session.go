package domain

import (
	"strings"
	"time"
)

// FilterStrength controla que tan agresivo es el filtro de contrastes.
type FilterStrength string

const (
	FilterStrengthLow    FilterStrength = "low"
	FilterStrengthMedium FilterStrength = "medium"
	FilterStrengthHigh   FilterStrength = "high"
)

func (s FilterStrength) Valid() bool {
	switch s {
	case FilterStrengthLow, FilterStrengthMedium, FilterStrengthHigh:
		return true
	default:
		return false
	}
}

func ParseFilterStrength(raw string) (FilterStrength, error) {
	s := FilterStrength(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", ErrInvalidFilterStrength
	}
	return s, nil
}

// Settings es la superficie de configuracion del visor; el motor solo la lee.
type Settings struct {
	MoodFilterEnabled        bool           `json:"mood_filter_enabled"`
	MoodFilterStrength       FilterStrength `json:"mood_filter_strength"`
	AIAssistEnabled          bool           `json:"ai_assist_enabled"`
	SentimentTrackingEnabled bool           `json:"sentiment_tracking_enabled"`
}

// DefaultSettings replica los valores iniciales de la aplicacion.
func DefaultSettings(strength FilterStrength) Settings {
	if !strength.Valid() {
		strength = FilterStrengthMedium
	}
	return Settings{
		MoodFilterEnabled:        true,
		MoodFilterStrength:       strength,
		AIAssistEnabled:          true,
		SentimentTrackingEnabled: true,
	}
}

// MoodSession es el estado efimero de un visor.
// CurrentMood solo cambia por eleccion explicita; DetectedMood solo lo escribe la inferencia.
type MoodSession struct {
	ID                string     `json:"id"`
	Viewer            string     `json:"viewer,omitempty"`
	CurrentMood       Mood       `json:"current_mood,omitempty"`
	CurrentSubEmotion SubEmotion `json:"current_sub_emotion,omitempty"`
	DetectedMood      Mood       `json:"detected_mood,omitempty"`
	Settings          Settings   `json:"settings"`
	RecentComments    []Comment  `json:"recent_comments,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
