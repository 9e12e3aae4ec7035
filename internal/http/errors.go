package http

import (
	"errors"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moodfeed/internal/domain"
	"moodfeed/internal/repository"
	"moodfeed/internal/service"
)

// respondError traduce errores del dominio a codigos HTTP.
func respondError(c *gin.Context, logger *zap.Logger, err error, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidMood),
		errors.Is(err, domain.ErrInvalidSubEmotion),
		errors.Is(err, domain.ErrSubEmotionMismatch),
		errors.Is(err, domain.ErrInvalidSentiment),
		errors.Is(err, domain.ErrInvalidFilterStrength),
		errors.Is(err, domain.ErrInvalidSeverity),
		errors.Is(err, domain.ErrPostWithoutMoods),
		errors.Is(err, service.ErrEmptyComment):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrMoodNotSelected):
		c.JSON(http.StatusConflict, gin.H{"error": "select a mood first"})
	case errors.Is(err, service.ErrAssistantDisabled):
		c.JSON(http.StatusForbidden, gin.H{"error": "assistant is disabled"})
	default:
		logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

// requestRand usa una fuente nueva con semilla cuando el request la trae,
// para que la respuesta sea reproducible; si no, la fuente compartida.
func requestRand(seed *int64, fallback service.RandSource) service.RandSource {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return fallback
}

func querySeed(c *gin.Context) (*int64, error) {
	raw := c.Query("seed")
	if raw == "" {
		return nil, nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &seed, nil
}
