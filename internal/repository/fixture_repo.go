package repository

import (
	"context"
	"time"

	"moodfeed/internal/domain"
)

// FixtureFeedRepository sirve el feed de demostracion cuando no hay base configurada.
// Cada llamada devuelve copias nuevas.
type FixtureFeedRepository struct {
	now func() time.Time
}

func NewFixtureFeedRepository() *FixtureFeedRepository {
	return &FixtureFeedRepository{now: time.Now}
}

func (r *FixtureFeedRepository) ListPosts(_ context.Context, limit int) ([]domain.Post, error) {
	now := r.now().UTC()
	posts := []domain.Post{
		{
			ID:           "1",
			Username:     "nature_lover",
			Avatar:       "https://images.unsplash.com/photo-1534528741775-53994a69daeb?q=80&w=128&auto=format&fit=crop",
			Image:        "https://images.unsplash.com/photo-1518495973542-4542c06a5843?q=80&w=600&auto=format&fit=crop",
			Caption:      "Finding peace in the mountains. The view was absolutely breathtaking! 🏔️",
			LikeCount:    243,
			CommentCount: 42,
			CreatedAt:    now.Add(-2 * time.Hour),
			Moods:        []domain.Mood{domain.MoodCalm, domain.MoodHappy},
		},
		{
			ID:           "2",
			Username:     "urban_explorer",
			Avatar:       "https://images.unsplash.com/photo-1544005313-94ddf0286df2?q=80&w=128&auto=format&fit=crop",
			Image:        "https://images.unsplash.com/photo-1496449903678-68ddcb189a24?q=80&w=600&auto=format&fit=crop",
			Caption:      "City lights never sleep. The energy here is incredible! 🌃",
			LikeCount:    576,
			CommentCount: 28,
			CreatedAt:    now.Add(-4 * time.Hour),
			Moods:        []domain.Mood{domain.MoodExcited, domain.MoodHappy},
		},
		{
			ID:           "3",
			Username:     "quiet_thoughts",
			Avatar:       "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?q=80&w=128&auto=format&fit=crop",
			Image:        "https://images.unsplash.com/photo-1542856391-010fb87dcfed?q=80&w=600&auto=format&fit=crop",
			Caption:      "Sometimes the weight of the world feels too heavy to bear...",
			LikeCount:    189,
			CommentCount: 73,
			CreatedAt:    now.Add(-7 * time.Hour),
			Moods:        []domain.Mood{domain.MoodSad, domain.MoodAnxious},
		},
		{
			ID:           "4",
			Username:     "fitness_journey",
			Avatar:       "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=128&auto=format&fit=crop",
			Image:        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?q=80&w=600&auto=format&fit=crop",
			Caption:      "Pushing through the pain! No excuses, just results. 💪",
			LikeCount:    892,
			CommentCount: 45,
			CreatedAt:    now.Add(-9 * time.Hour),
			Moods:        []domain.Mood{domain.MoodExcited, domain.MoodStressed},
		},
		{
			ID:           "5",
			Username:     "mindful_moments",
			Avatar:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=128&auto=format&fit=crop",
			Image:        "https://images.unsplash.com/photo-1499209974431-9dddcece7f88?q=80&w=600&auto=format&fit=crop",
			Caption:      "Taking a moment to breathe and center myself. Peace comes from within.",
			LikeCount:    340,
			CommentCount: 18,
			CreatedAt:    now.Add(-12 * time.Hour),
			Moods:        []domain.Mood{domain.MoodCalm},
		},
		{
			ID:           "6",
			Username:     "party_person",
			Avatar:       "https://images.unsplash.com/photo-1580489944761-15a19d654956?q=80&w=128&auto=format&fit=crop",
			Image:        "https://images.unsplash.com/photo-1496024840928-4c417adf211d?q=80&w=600&auto=format&fit=crop",
			Caption:      "Best night ever!!! The concert was AMAZING! Can't wait for the next one! 🎉🎵",
			LikeCount:    723,
			CommentCount: 59,
			CreatedAt:    now.Add(-13 * time.Hour),
			Moods:        []domain.Mood{domain.MoodExcited, domain.MoodHappy},
		},
		{
			ID:           "7",
			Username:     "deep_thinker",
			Avatar:       "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?q=80&w=128&auto=format&fit=crop",
			Image:        "https://images.unsplash.com/photo-1468276311594-df7cb65d8df6?q=80&w=600&auto=format&fit=crop",
			Caption:      "Feeling lost in the chaos of life. Does anyone else struggle with finding their purpose?",
			LikeCount:    287,
			CommentCount: 124,
			CreatedAt:    now.Add(-24 * time.Hour),
			Moods:        []domain.Mood{domain.MoodAnxious, domain.MoodSad},
		},
		{
			ID:           "8",
			Username:     "political_observer",
			Avatar:       "https://images.unsplash.com/photo-1552058544-f2b08422138a?q=80&w=128&auto=format&fit=crop",
			Image:        "https://images.unsplash.com/photo-1569098644584-210bcd375b59?q=80&w=600&auto=format&fit=crop",
			Caption:      "I can't believe what's happening in the world right now. So frustrated with the system!",
			LikeCount:    412,
			CommentCount: 231,
			CreatedAt:    now.Add(-26 * time.Hour),
			Moods:        []domain.Mood{domain.MoodAngry},
		},
	}
	if limit > 0 && limit < len(posts) {
		posts = posts[:limit]
	}
	return posts, nil
}

// DemoViewer es el autor de los comentarios de demostracion.
const DemoViewer = "user"

// ListRecentComments solo conoce comentarios de DemoViewer; cualquier otro autor no tiene historial.
func (r *FixtureFeedRepository) ListRecentComments(_ context.Context, author string, limit int) ([]domain.Comment, error) {
	if author != DemoViewer {
		return nil, nil
	}
	const avatar = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?q=80&w=128&auto=format&fit=crop"
	now := r.now().UTC()
	comments := []domain.Comment{
		{
			ID:        "1",
			Username:  DemoViewer,
			Avatar:    avatar,
			Text:      "This is such a beautiful photo! I love the colors and composition.",
			CreatedAt: now.Add(-5 * time.Minute),
			Sentiment: domain.SentimentPositive,
		},
		{
			ID:        "2",
			Username:  DemoViewer,
			Avatar:    avatar,
			Text:      "I'm feeling so stressed today, nothing seems to be going right.",
			CreatedAt: now.Add(-1 * time.Hour),
			Sentiment: domain.SentimentNegative,
		},
		{
			ID:        "3",
			Username:  DemoViewer,
			Avatar:    avatar,
			Text:      "Just checking out this post. Interesting concept.",
			CreatedAt: now.Add(-2 * time.Hour),
			Sentiment: domain.SentimentNeutral,
		},
	}
	if limit > 0 && limit < len(comments) {
		comments = comments[:limit]
	}
	return comments, nil
}
