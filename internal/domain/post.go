package domain

import "time"

// Post es una publicacion del feed. Filtered y Boosted son anotaciones transitorias
// que calcula el filtro de contenido en cada pasada; no pertenecen a la entidad.
type Post struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Avatar       string    `json:"avatar,omitempty"`
	Image        string    `json:"image,omitempty"`
	Caption      string    `json:"caption"`
	LikeCount    int       `json:"likes"`
	CommentCount int       `json:"comments"`
	CreatedAt    time.Time `json:"created_at"`
	Moods        []Mood    `json:"moods"`
	Filtered     bool      `json:"filtered,omitempty"`
	Boosted      bool      `json:"boosted,omitempty"`
}

// HasAnyMood indica si la publicacion comparte al menos un mood con set.
func (p Post) HasAnyMood(set []Mood) bool {
	for _, m := range p.Moods {
		for _, s := range set {
			if m == s {
				return true
			}
		}
	}
	return false
}

// Comment es un comentario del usuario. Sentiment vacio significa "sin clasificar";
// un valor presente es autoritativo y no se recalcula.
type Comment struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id,omitempty"`
	Username  string    `json:"username,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Sentiment Sentiment `json:"sentiment,omitempty"`
}
