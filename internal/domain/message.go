package domain

import "time"

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// AssistantMessage es un turno de la conversacion con el asistente de apoyo.
type AssistantMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id,omitempty"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Sentiment Sentiment `json:"sentiment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
