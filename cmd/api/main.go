package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"moodfeed/internal/config"
	"moodfeed/internal/db"
	"moodfeed/internal/domain"
	apihttp "moodfeed/internal/http"
	"moodfeed/internal/repository"
	"moodfeed/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	strength, err := domain.ParseFilterStrength(cfg.DefaultFilterStrength)
	if err != nil {
		logger.Warn("invalid default filter strength, using medium", zap.String("value", cfg.DefaultFilterStrength))
		strength = domain.FilterStrengthMedium
	}

	var (
		postRepo    repository.PostRepository
		commentRepo repository.CommentRepository
	)
	fixtures := repository.NewFixtureFeedRepository()
	postRepo, commentRepo = fixtures, fixtures
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		postRepo = repository.NewPgPostRepository(pool)
		commentRepo = repository.NewPgCommentRepository(pool)
		logger.Info("using postgres feed source")
	} else {
		logger.Info("DATABASE_URL not set, using fixture feed source")
	}

	sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	rateWindow := time.Duration(cfg.WriteRateWindowSec) * time.Second
	var sessionRepo repository.MoodSessionRepository = repository.NewMemoryMoodSessionRepository(sessionTTL)
	limiter := service.NewRateLimiter(rateWindow, cfg.WriteRateLimit)
	if cfg.RedisAddr != "" {
		redisClient, err := db.NewRedisClient(ctx, cfg)
		if err != nil {
			logger.Warn("redis unavailable, keeping sessions in memory", zap.Error(err))
		} else {
			defer redisClient.Close()
			sessionRepo = repository.NewRedisMoodSessionRepository(redisClient, sessionTTL)
			limiter = service.NewRedisRateLimiter(logger, redisClient, rateWindow, cfg.WriteRateLimit)
		}
	}

	rng := service.NewLockedRandSource(cfg.RandomSeed)
	graph := service.NewMoodGraph()
	classifier := service.NewSentimentClassifier()
	inference := service.NewMoodInference(classifier)
	filter := service.NewMoodFilter(graph)
	responder := service.NewSupportiveResponder()

	moodSvc := service.NewMoodService(logger, sessionRepo, commentRepo, inference, strength, cfg.CommentWindow)
	feedSvc := service.NewFeedService(logger, postRepo, moodSvc, filter, cfg.FeedLimit)
	assistantSvc := service.NewAssistantService(logger, moodSvc, responder)

	moodHandler := apihttp.NewMoodHandler(logger, graph, classifier, inference, filter, rng)
	sessionHandler := apihttp.NewSessionHandler(logger, moodSvc, feedSvc, rng)
	assistantHandler := apihttp.NewAssistantHandler(logger, assistantSvc, responder, rng)
	router := apihttp.NewRouter(logger, limiter, moodHandler, sessionHandler, assistantHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
