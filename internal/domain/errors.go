package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMood           = errors.New("invalid mood")
	ErrInvalidSubEmotion     = errors.New("invalid sub-emotion")
	ErrSubEmotionMismatch    = errors.New("sub-emotion does not belong to mood")
	ErrInvalidSentiment      = errors.New("invalid sentiment")
	ErrInvalidFilterStrength = errors.New("invalid filter strength")
	ErrInvalidSeverity       = errors.New("invalid severity")
	ErrPostWithoutMoods      = errors.New("post has no moods")
)

// InvalidMoodError se devuelve cuando se consulta un mood fuera de la taxonomia.
// Es un error de contrato: con entradas validadas nunca deberia ocurrir.
type InvalidMoodError struct {
	Mood Mood
}

func (e *InvalidMoodError) Error() string {
	return fmt.Sprintf("invalid mood %q", string(e.Mood))
}

// Is permite errors.Is(err, ErrInvalidMood).
func (e *InvalidMoodError) Is(target error) bool {
	return target == ErrInvalidMood
}
