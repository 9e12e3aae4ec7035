package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"moodfeed/internal/domain"
)

var ErrSessionNotFound = errors.New("mood session not found")

// MoodSessionRepository guarda el estado efimero del visor (mood elegido, mood detectado, ajustes).
type MoodSessionRepository interface {
	Create(ctx context.Context, session domain.MoodSession) error
	Get(ctx context.Context, id string) (domain.MoodSession, error)
	Save(ctx context.Context, session domain.MoodSession) error
}

type memorySessionEntry struct {
	session   domain.MoodSession
	expiresAt time.Time
}

// MemoryMoodSessionRepository vence sesiones por TTL. Get descarta la sesion pedida si vencio
// y Save barre las vencidas como mucho una vez por minuto.
type MemoryMoodSessionRepository struct {
	mu        sync.Mutex
	ttl       time.Duration
	items     map[string]memorySessionEntry
	lastSweep time.Time
	now       func() time.Time
}

const memorySweepInterval = time.Minute

func NewMemoryMoodSessionRepository(ttl time.Duration) *MemoryMoodSessionRepository {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &MemoryMoodSessionRepository{
		ttl:   ttl,
		items: make(map[string]memorySessionEntry),
		now:   time.Now,
	}
}

func (r *MemoryMoodSessionRepository) Create(ctx context.Context, session domain.MoodSession) error {
	return r.Save(ctx, session)
}

func (r *MemoryMoodSessionRepository) Get(_ context.Context, id string) (domain.MoodSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.items[id]
	if !ok {
		return domain.MoodSession{}, ErrSessionNotFound
	}
	if r.now().After(entry.expiresAt) {
		delete(r.items, id)
		return domain.MoodSession{}, ErrSessionNotFound
	}
	return cloneSession(entry.session), nil
}

func (r *MemoryMoodSessionRepository) Save(_ context.Context, session domain.MoodSession) error {
	if strings.TrimSpace(session.ID) == "" {
		return errors.New("mood session id is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	if now.Sub(r.lastSweep) >= memorySweepInterval {
		for id, entry := range r.items {
			if now.After(entry.expiresAt) {
				delete(r.items, id)
			}
		}
		r.lastSweep = now
	}
	r.items[session.ID] = memorySessionEntry{
		session:   cloneSession(session),
		expiresAt: now.Add(r.ttl),
	}
	return nil
}

func cloneSession(s domain.MoodSession) domain.MoodSession {
	s.RecentComments = append([]domain.Comment(nil), s.RecentComments...)
	return s
}

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type RedisMoodSessionRepository struct {
	client redisKV
	ttl    time.Duration
	prefix string
}

func NewRedisMoodSessionRepository(client *redis.Client, ttl time.Duration) *RedisMoodSessionRepository {
	if client == nil {
		return nil
	}
	return newRedisMoodSessionRepository(client, ttl)
}

func newRedisMoodSessionRepository(client redisKV, ttl time.Duration) *RedisMoodSessionRepository {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &RedisMoodSessionRepository{
		client: client,
		ttl:    ttl,
		prefix: "moodfeed:session:",
	}
}

func (r *RedisMoodSessionRepository) Create(ctx context.Context, session domain.MoodSession) error {
	return r.Save(ctx, session)
}

func (r *RedisMoodSessionRepository) Get(ctx context.Context, id string) (domain.MoodSession, error) {
	if strings.TrimSpace(id) == "" {
		return domain.MoodSession{}, ErrSessionNotFound
	}
	raw, err := r.client.Get(ctx, r.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.MoodSession{}, ErrSessionNotFound
	}
	if err != nil {
		return domain.MoodSession{}, fmt.Errorf("redis get session: %w", err)
	}
	var session domain.MoodSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return domain.MoodSession{}, fmt.Errorf("decode session: %w", err)
	}
	return session, nil
}

// Save reescribe la sesion completa y renueva el TTL.
func (r *RedisMoodSessionRepository) Save(ctx context.Context, session domain.MoodSession) error {
	if strings.TrimSpace(session.ID) == "" {
		return errors.New("mood session id is empty")
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, r.prefix+session.ID, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}
