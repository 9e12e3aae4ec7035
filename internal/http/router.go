package http

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moodfeed/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	limiter service.RateLimiter,
	moodH *MoodHandler,
	sessionH *SessionHandler,
	assistantH *AssistantHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	// Motor sin estado.
	r.GET("/moods", moodH.ListMoods)
	r.GET("/moods/:mood/relations", moodH.MoodRelations)
	r.POST("/sentiment/classify", moodH.ClassifySentiment)
	r.POST("/mood/infer", moodH.InferMood)
	r.POST("/feed/filter", moodH.FilterPosts)
	r.GET("/resources/:severity", assistantH.Resources)

	sessions := r.Group("/sessions")
	sessions.POST("", sessionH.CreateSession)
	sessions.GET("/:id", sessionH.GetSession)
	sessions.PUT("/:id/mood", sessionH.SelectMood)
	sessions.PATCH("/:id/settings", sessionH.UpdateSettings)
	sessions.POST("/:id/comments", rateLimitMiddleware(logger, limiter, service.RateScopeComments), sessionH.PostComment)
	sessions.GET("/:id/feed", sessionH.GetFeed)
	sessions.GET("/:id/assistant/greeting", assistantH.Greeting)
	sessions.GET("/:id/assistant/check-in", assistantH.CheckIn)
	sessions.POST("/:id/assistant/messages", rateLimitMiddleware(logger, limiter, service.RateScopeMessages), assistantH.PostMessage)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

// rateLimitMiddleware limita escrituras por sesion. Sin limiter no hace nada.
func rateLimitMiddleware(logger *zap.Logger, limiter service.RateLimiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		sessionID := c.Param("id")
		decision := limiter.Allow(c.Request.Context(), sessionID, scope)
		if !decision.Allowed {
			retry := int(math.Ceil(decision.RetryAfter.Seconds()))
			if retry < 1 {
				retry = 1
			}
			logger.Warn("rate limit exceeded",
				zap.String("scope", scope),
				zap.String("session_id", sessionID),
				zap.Duration("retry_after", decision.RetryAfter),
			)
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
