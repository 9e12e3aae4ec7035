package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"moodfeed/internal/domain"
)

type mockRedisKV struct {
	data       map[string]string
	lastSetKey string
	lastSetTTL time.Duration
	getErr     error
	setErr     error
}

func newMockRedisKV() *mockRedisKV {
	return &mockRedisKV{data: make(map[string]string)}
}

func (m *mockRedisKV) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if m.getErr != nil {
		cmd.SetErr(m.getErr)
		return cmd
	}
	val, ok := m.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(val)
	return cmd
}

func (m *mockRedisKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.lastSetKey = key
	m.lastSetTTL = expiration
	cmd := redis.NewStatusCmd(ctx)
	if m.setErr != nil {
		cmd.SetErr(m.setErr)
		return cmd
	}
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	cmd.SetVal("OK")
	return cmd
}

func sampleSession() domain.MoodSession {
	return domain.MoodSession{
		ID:                "s1",
		CurrentMood:       domain.MoodSad,
		CurrentSubEmotion: domain.SubEmotionLonely,
		DetectedMood:      domain.MoodCalm,
		Settings:          domain.DefaultSettings(domain.FilterStrengthHigh),
		RecentComments: []domain.Comment{
			{ID: "c1", SessionID: "s1", Text: "so tired", Sentiment: domain.SentimentNegative},
		},
	}
}

func TestMemoryMoodSessionRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryMoodSessionRepository(time.Minute)
	repo.now = func() time.Time { return now }

	t.Run("missing", func(t *testing.T) {
		if _, err := repo.Get(ctx, "nope"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("empty id rejected", func(t *testing.T) {
		if err := repo.Save(ctx, domain.MoodSession{ID: "  "}); err == nil {
			t.Fatalf("expected error for empty id")
		}
	})

	t.Run("stored copy is isolated", func(t *testing.T) {
		session := sampleSession()
		if err := repo.Create(ctx, session); err != nil {
			t.Fatalf("create: %v", err)
		}
		session.RecentComments[0].Text = "changed"
		got, err := repo.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.RecentComments[0].Text != "so tired" {
			t.Fatalf("expected stored comments to be isolated, got %q", got.RecentComments[0].Text)
		}
	})

	t.Run("expires after ttl", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		if _, err := repo.Get(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected expired session, got %v", err)
		}
	})
}

func TestMemoryMoodSessionRepositorySweepsOnSave(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryMoodSessionRepository(time.Minute)
	repo.now = func() time.Time { return now }

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Save(ctx, domain.MoodSession{ID: id}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	now = now.Add(30 * time.Second)
	if err := repo.Save(ctx, domain.MoodSession{ID: "a"}); err != nil {
		t.Fatalf("refresh a: %v", err)
	}

	now = now.Add(45 * time.Second)
	if err := repo.Save(ctx, domain.MoodSession{ID: "d"}); err != nil {
		t.Fatalf("save d: %v", err)
	}
	if len(repo.items) != 2 {
		t.Fatalf("expected abandoned sessions to be swept, got %d entries", len(repo.items))
	}
	if _, ok := repo.items["a"]; !ok {
		t.Fatalf("expected refreshed session to survive the sweep")
	}
}

func TestRedisMoodSessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("nil client", func(t *testing.T) {
		if repo := NewRedisMoodSessionRepository(nil, time.Minute); repo != nil {
			t.Fatalf("expected nil repository for nil client")
		}
	})

	t.Run("round trip", func(t *testing.T) {
		kv := newMockRedisKV()
		repo := newRedisMoodSessionRepository(kv, 30*time.Minute)
		session := sampleSession()
		if err := repo.Save(ctx, session); err != nil {
			t.Fatalf("save: %v", err)
		}
		if kv.lastSetKey != "moodfeed:session:s1" || kv.lastSetTTL != 30*time.Minute {
			t.Fatalf("unexpected key/ttl: %s %v", kv.lastSetKey, kv.lastSetTTL)
		}
		got, err := repo.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.CurrentMood != domain.MoodSad || got.DetectedMood != domain.MoodCalm ||
			got.Settings.MoodFilterStrength != domain.FilterStrengthHigh || len(got.RecentComments) != 1 {
			t.Fatalf("unexpected session: %+v", got)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		repo := newRedisMoodSessionRepository(newMockRedisKV(), 0)
		if _, err := repo.Get(ctx, "ghost"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
		if _, err := repo.Get(ctx, " "); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound for blank id, got %v", err)
		}
	})

	t.Run("redis errors surface", func(t *testing.T) {
		kv := newMockRedisKV()
		kv.getErr = errors.New("conn refused")
		kv.setErr = errors.New("conn refused")
		repo := newRedisMoodSessionRepository(kv, time.Minute)
		if _, err := repo.Get(ctx, "s1"); err == nil || errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected wrapped redis error, got %v", err)
		}
		if err := repo.Save(ctx, sampleSession()); err == nil {
			t.Fatalf("expected save error")
		}
	})

	t.Run("corrupt payload", func(t *testing.T) {
		kv := newMockRedisKV()
		kv.data["moodfeed:session:s1"] = "{not json"
		repo := newRedisMoodSessionRepository(kv, time.Minute)
		if _, err := repo.Get(ctx, "s1"); err == nil {
			t.Fatalf("expected decode error")
		}
	})
}
