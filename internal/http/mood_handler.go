package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moodfeed/internal/domain"
	"moodfeed/internal/service"
)

// MoodHandler expone el motor sin estado: taxonomia, grafo, clasificador, inferencia y filtro.
type MoodHandler struct {
	logger     *zap.Logger
	graph      *service.MoodGraph
	classifier *service.SentimentClassifier
	inference  *service.MoodInference
	filter     *service.MoodFilter
	rng        service.RandSource
}

// NewMoodHandler crea una instancia de MoodHandler con dependencias necesarias.
func NewMoodHandler(
	logger *zap.Logger,
	graph *service.MoodGraph,
	classifier *service.SentimentClassifier,
	inference *service.MoodInference,
	filter *service.MoodFilter,
	rng service.RandSource,
) *MoodHandler {
	return &MoodHandler{
		logger:     logger,
		graph:      graph,
		classifier: classifier,
		inference:  inference,
		filter:     filter,
		rng:        rng,
	}
}

// ListMoods maneja GET /moods.
func (h *MoodHandler) ListMoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"moods": domain.MoodOptions()})
}

// MoodRelations maneja GET /moods/:mood/relations.
func (h *MoodHandler) MoodRelations(c *gin.Context) {
	mood := domain.Mood(c.Param("mood"))
	contrast, err := h.graph.ContrastMoodsOf(mood)
	if err != nil {
		respondError(c, h.logger, err, "could not resolve relations")
		return
	}
	complementary, err := h.graph.ComplementaryMoodsOf(mood)
	if err != nil {
		respondError(c, h.logger, err, "could not resolve relations")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"mood":          mood,
		"contrast":      contrast,
		"complementary": complementary,
	})
}

// ClassifySentiment maneja POST /sentiment/classify.
func (h *MoodHandler) ClassifySentiment(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid classify request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": h.classifier.Analyze(req.Text)})
}

// InferMood maneja POST /mood/infer.
func (h *MoodHandler) InferMood(c *gin.Context) {
	var req struct {
		Comments []domain.Comment `json:"comments"`
		Seed     *int64           `json:"seed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid infer mood request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	for _, cm := range req.Comments {
		if cm.Sentiment != "" && !cm.Sentiment.Valid() {
			respondError(c, h.logger, domain.ErrInvalidSentiment, "could not infer mood")
			return
		}
	}

	counts := h.inference.Tally(req.Comments)
	mood, ok := h.inference.InferMood(req.Comments, requestRand(req.Seed, h.rng))
	resp := gin.H{
		"counts":   counts,
		"inferred": ok,
	}
	if ok {
		resp["mood"] = mood
	}
	c.JSON(http.StatusOK, resp)
}

// FilterPosts maneja POST /feed/filter. Sin mood devuelve los posts intactos.
func (h *MoodHandler) FilterPosts(c *gin.Context) {
	var req struct {
		Posts      []domain.Post `json:"posts"`
		Mood       string        `json:"mood"`
		Strength   string        `json:"strength"`
		SubEmotion string        `json:"sub_emotion"`
		Seed       *int64        `json:"seed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid filter request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	for _, p := range req.Posts {
		if len(p.Moods) == 0 {
			respondError(c, h.logger, fmt.Errorf("post %s: %w", p.ID, domain.ErrPostWithoutMoods), "could not filter posts")
			return
		}
		for _, m := range p.Moods {
			if !m.Valid() {
				respondError(c, h.logger, &domain.InvalidMoodError{Mood: m}, "could not filter posts")
				return
			}
		}
	}

	var (
		mood     domain.Mood
		strength domain.FilterStrength
		sub      domain.SubEmotion
		err      error
	)
	if req.Mood != "" {
		if mood, err = domain.ParseMood(req.Mood); err != nil {
			respondError(c, h.logger, err, "could not filter posts")
			return
		}
		if strength, err = domain.ParseFilterStrength(req.Strength); err != nil {
			respondError(c, h.logger, err, "could not filter posts")
			return
		}
		if sub, err = domain.ParseSubEmotion(req.SubEmotion); err != nil {
			respondError(c, h.logger, err, "could not filter posts")
			return
		}
	}

	posts, err := h.filter.Apply(req.Posts, mood, strength, sub, requestRand(req.Seed, h.rng))
	if err != nil {
		respondError(c, h.logger, err, "could not filter posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"posts":   posts,
		"summary": service.Summarize(posts),
	})
}
