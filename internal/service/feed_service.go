package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"moodfeed/internal/domain"
	"moodfeed/internal/repository"
)

const (
	MoodSourceSelected = "selected"
	MoodSourceDetected = "detected"
)

// Feed es el feed personalizado listo para la capa de presentacion.
type Feed struct {
	SessionID     string                `json:"session_id"`
	ReferenceMood domain.Mood           `json:"reference_mood"`
	MoodSource    string                `json:"mood_source"`
	SubEmotion    domain.SubEmotion     `json:"sub_emotion,omitempty"`
	FilterEnabled bool                  `json:"filter_enabled"`
	Strength      domain.FilterStrength `json:"strength"`
	Notice        string                `json:"notice,omitempty"`
	Summary       FilterSummary         `json:"summary"`
	Posts         []domain.Post         `json:"posts"`
}

// FeedService arma el feed de un visor combinando su estado con el filtro de contenido.
type FeedService struct {
	posts     repository.PostRepository
	moods     *MoodService
	filter    *MoodFilter
	postLimit int
	logger    *zap.Logger
}

func NewFeedService(
	logger *zap.Logger,
	posts repository.PostRepository,
	moods *MoodService,
	filter *MoodFilter,
	postLimit int,
) *FeedService {
	if filter == nil {
		filter = NewMoodFilter(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedService{
		posts:     posts,
		moods:     moods,
		filter:    filter,
		postLimit: postLimit,
		logger:    logger,
	}
}

// BuildFeed exige un mood elegido. Con el seguimiento activo usa el mood detectado como
// referencia (infiriendolo si todavia no existe); si no, el elegido. La sub-emocion solo
// aplica cuando la referencia es el mood elegido.
func (s *FeedService) BuildFeed(ctx context.Context, sessionID string, rng RandSource) (Feed, error) {
	session, err := s.moods.GetSession(ctx, sessionID)
	if err != nil {
		return Feed{}, err
	}
	if session.CurrentMood == "" {
		return Feed{}, ErrMoodNotSelected
	}
	tracking := session.Settings.SentimentTrackingEnabled
	if tracking && session.DetectedMood == "" {
		session, err = s.moods.DetectMood(ctx, sessionID, rng)
		if err != nil {
			return Feed{}, fmt.Errorf("detect mood: %w", err)
		}
	}

	feed := Feed{
		SessionID:     session.ID,
		ReferenceMood: session.CurrentMood,
		MoodSource:    MoodSourceSelected,
		SubEmotion:    session.CurrentSubEmotion,
		FilterEnabled: session.Settings.MoodFilterEnabled,
		Strength:      session.Settings.MoodFilterStrength,
	}
	if tracking && session.DetectedMood != "" {
		feed.ReferenceMood = session.DetectedMood
		feed.MoodSource = MoodSourceDetected
		if session.DetectedMood != session.CurrentMood {
			feed.SubEmotion = ""
			feed.Notice = fmt.Sprintf(
				"We noticed your recent comments suggest you might be feeling %s. We've adjusted your feed to match your current emotional state.",
				domain.MoodPhrase(session.DetectedMood),
			)
		}
	}

	posts, err := s.posts.ListPosts(ctx, s.postLimit)
	if err != nil {
		return Feed{}, fmt.Errorf("list posts: %w", err)
	}

	if feed.FilterEnabled {
		posts, err = s.filter.Apply(posts, feed.ReferenceMood, feed.Strength, feed.SubEmotion, rng)
		if err != nil {
			return Feed{}, fmt.Errorf("apply mood filter: %w", err)
		}
	}
	feed.Posts = posts
	feed.Summary = Summarize(posts)

	s.logger.Info("feed built",
		zap.String("session_id", session.ID),
		zap.String("reference_mood", string(feed.ReferenceMood)),
		zap.String("mood_source", feed.MoodSource),
		zap.Int("filtered", feed.Summary.Filtered),
		zap.Int("boosted", feed.Summary.Boosted),
	)
	return feed, nil
}
