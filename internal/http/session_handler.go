package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moodfeed/internal/domain"
	"moodfeed/internal/service"
)

// SessionHandler mantiene dependencias para endpoints del estado del visor y su feed.
type SessionHandler struct {
	logger *zap.Logger
	moods  *service.MoodService
	feeds  *service.FeedService
	rng    service.RandSource
}

// NewSessionHandler crea una instancia de SessionHandler con dependencias necesarias.
func NewSessionHandler(
	logger *zap.Logger,
	moods *service.MoodService,
	feeds *service.FeedService,
	rng service.RandSource,
) *SessionHandler {
	return &SessionHandler{
		logger: logger,
		moods:  moods,
		feeds:  feeds,
		rng:    rng,
	}
}

type moodSelection struct {
	Mood       string `json:"mood" binding:"required"`
	SubEmotion string `json:"sub_emotion"`
}

func (s moodSelection) parse() (domain.Mood, domain.SubEmotion, error) {
	mood, err := domain.ParseMood(s.Mood)
	if err != nil {
		return "", "", err
	}
	sub, err := domain.ParseSubEmotion(s.SubEmotion)
	if err != nil {
		return "", "", err
	}
	return mood, sub, nil
}

type createSessionRequest struct {
	Viewer     string `json:"viewer"`
	Mood       string `json:"mood" binding:"required"`
	SubEmotion string `json:"sub_emotion"`
}

// CreateSession maneja POST /sessions. viewer es opcional y selecciona el historial de comentarios.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	mood, sub, err := moodSelection{Mood: req.Mood, SubEmotion: req.SubEmotion}.parse()
	if err != nil {
		respondError(c, h.logger, err, "could not create session")
		return
	}

	session, err := h.moods.StartSession(c.Request.Context(), req.Viewer, mood, sub)
	if err != nil {
		respondError(c, h.logger, err, "could not create session")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GetSession maneja GET /sessions/:id.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.moods.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "could not get session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectMood maneja PUT /sessions/:id/mood.
func (h *SessionHandler) SelectMood(c *gin.Context) {
	var req moodSelection
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid select mood request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	mood, sub, err := req.parse()
	if err != nil {
		respondError(c, h.logger, err, "could not select mood")
		return
	}

	session, err := h.moods.SelectMood(c.Request.Context(), c.Param("id"), mood, sub)
	if err != nil {
		respondError(c, h.logger, err, "could not select mood")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateSettings maneja PATCH /sessions/:id/settings.
func (h *SessionHandler) UpdateSettings(c *gin.Context) {
	var req struct {
		MoodFilterEnabled        *bool   `json:"mood_filter_enabled"`
		MoodFilterStrength       *string `json:"mood_filter_strength"`
		AIAssistEnabled          *bool   `json:"ai_assist_enabled"`
		SentimentTrackingEnabled *bool   `json:"sentiment_tracking_enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid settings request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	patch := service.SettingsPatch{
		MoodFilterEnabled:        req.MoodFilterEnabled,
		AIAssistEnabled:          req.AIAssistEnabled,
		SentimentTrackingEnabled: req.SentimentTrackingEnabled,
	}
	if req.MoodFilterStrength != nil {
		strength, err := domain.ParseFilterStrength(*req.MoodFilterStrength)
		if err != nil {
			respondError(c, h.logger, err, "could not update settings")
			return
		}
		patch.MoodFilterStrength = &strength
	}

	session, err := h.moods.UpdateSettings(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.logger, err, "could not update settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// PostComment maneja POST /sessions/:id/comments.
func (h *SessionHandler) PostComment(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
		Seed *int64 `json:"seed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid comment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	comment, session, err := h.moods.RecordComment(c.Request.Context(), c.Param("id"), req.Text, requestRand(req.Seed, h.rng))
	if err != nil {
		respondError(c, h.logger, err, "could not record comment")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"comment":       comment,
		"detected_mood": session.DetectedMood,
	})
}

// GetFeed maneja GET /sessions/:id/feed.
func (h *SessionHandler) GetFeed(c *gin.Context) {
	seed, err := querySeed(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid seed"})
		return
	}

	feed, err := h.feeds.BuildFeed(c.Request.Context(), c.Param("id"), requestRand(seed, h.rng))
	if err != nil {
		respondError(c, h.logger, err, "could not build feed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"feed": feed})
}
