package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moodfeed/internal/domain"
	"moodfeed/internal/service"
)

// AssistantHandler mantiene dependencias para el asistente de apoyo.
type AssistantHandler struct {
	logger    *zap.Logger
	assistant *service.AssistantService
	responder *service.SupportiveResponder
	rng       service.RandSource
}

// NewAssistantHandler crea una instancia de AssistantHandler con dependencias necesarias.
func NewAssistantHandler(
	logger *zap.Logger,
	assistant *service.AssistantService,
	responder *service.SupportiveResponder,
	rng service.RandSource,
) *AssistantHandler {
	return &AssistantHandler{
		logger:    logger,
		assistant: assistant,
		responder: responder,
		rng:       rng,
	}
}

// Greeting maneja GET /sessions/:id/assistant/greeting.
func (h *AssistantHandler) Greeting(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.assistant.Greeting(c.Param("id"))})
}

// CheckIn maneja GET /sessions/:id/assistant/check-in. 204 cuando no hay nada que ofrecer.
func (h *AssistantHandler) CheckIn(c *gin.Context) {
	seed, err := querySeed(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid seed"})
		return
	}
	reply, err := h.assistant.CheckIn(c.Request.Context(), c.Param("id"), requestRand(seed, h.rng))
	if err != nil {
		respondError(c, h.logger, err, "could not check in")
		return
	}
	if reply == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// PostMessage maneja POST /sessions/:id/assistant/messages.
func (h *AssistantHandler) PostMessage(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
		Seed *int64 `json:"seed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assistant message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	reply, err := h.assistant.Reply(c.Request.Context(), c.Param("id"), req.Text, requestRand(req.Seed, h.rng))
	if err != nil {
		respondError(c, h.logger, err, "could not generate reply")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reply": reply})
}

// Resources maneja GET /resources/:severity.
func (h *AssistantHandler) Resources(c *gin.Context) {
	severity, err := domain.ParseSeverity(c.Param("severity"))
	if err != nil {
		respondError(c, h.logger, err, "could not get resources")
		return
	}
	text, err := h.responder.ResourcesFor(severity)
	if err != nil {
		respondError(c, h.logger, err, "could not get resources")
		return
	}
	c.JSON(http.StatusOK, gin.H{"severity": severity, "resources": text})
}
