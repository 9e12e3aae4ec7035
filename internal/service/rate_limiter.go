package service

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Ambitos de escritura con cupo propio por sesion.
const (
	RateScopeComments = "comments"
	RateScopeMessages = "messages"
)

// RateDecision es el resultado de pedir un turno de escritura.
// RetryAfter solo tiene sentido cuando Allowed es false.
type RateDecision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// RateLimiter reparte un cupo de escrituras por sesion y ambito dentro de una ventana.
type RateLimiter interface {
	Allow(ctx context.Context, sessionID, scope string) RateDecision
}

type rateBucketKey struct {
	sessionID string
	scope     string
}

// memoryRateLimiter usa ventana deslizante. Los buckets vacios se borran y una barrida
// periodica descarta las sesiones que dejaron de escribir.
type memoryRateLimiter struct {
	mu        sync.Mutex
	window    time.Duration
	limit     int
	buckets   map[rateBucketKey][]time.Time
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(window time.Duration, limit int) RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memoryRateLimiter{
		window:  window,
		limit:   limit,
		buckets: make(map[rateBucketKey][]time.Time),
		now:     time.Now,
	}
}

func (l *memoryRateLimiter) Allow(_ context.Context, sessionID, scope string) RateDecision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)
	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(cutoff)
		l.lastSweep = now
	}

	key := rateBucketKey{sessionID: sessionID, scope: scope}
	hits := pruneHits(l.buckets[key], cutoff)
	if len(hits) >= l.limit {
		l.buckets[key] = hits
		return RateDecision{RetryAfter: hits[0].Add(l.window).Sub(now)}
	}
	l.buckets[key] = append(hits, now)
	return RateDecision{Allowed: true}
}

func (l *memoryRateLimiter) sweep(cutoff time.Time) {
	for key, hits := range l.buckets {
		if len(pruneHits(hits, cutoff)) == 0 {
			delete(l.buckets, key)
		}
	}
}

func pruneHits(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	return hits[i:]
}

// El script devuelve el contador de la ventana fija y los milisegundos que le quedan.
const rateWindowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`

type redisScripter interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// redisRateLimiter comparte el cupo entre instancias con una ventana fija por clave.
// Si Redis no responde deja pasar la escritura y lo registra.
type redisRateLimiter struct {
	client  redisScripter
	window  time.Duration
	limit   int
	prefix  string
	timeout time.Duration
	logger  *zap.Logger
}

func NewRedisRateLimiter(logger *zap.Logger, client *redis.Client, window time.Duration, limit int) RateLimiter {
	if client == nil {
		return nil
	}
	return newRedisRateLimiter(logger, client, window, limit)
}

func newRedisRateLimiter(logger *zap.Logger, client redisScripter, window time.Duration, limit int) *redisRateLimiter {
	if window < time.Millisecond {
		window = time.Minute
	}
	if limit <= 0 {
		limit = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisRateLimiter{
		client:  client,
		window:  window,
		limit:   limit,
		prefix:  "moodfeed:rl:",
		timeout: 500 * time.Millisecond,
		logger:  logger,
	}
}

func (l *redisRateLimiter) Allow(ctx context.Context, sessionID, scope string) RateDecision {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	key := l.prefix + scope + ":" + sessionID
	res, err := l.client.Eval(ctx, rateWindowScript, []string{key}, l.window.Milliseconds()).Int64Slice()
	if err != nil || len(res) != 2 {
		l.logger.Warn("rate limiter unavailable, allowing write",
			zap.String("session_id", sessionID),
			zap.String("scope", scope),
			zap.Error(err),
		)
		return RateDecision{Allowed: true}
	}
	if res[0] <= int64(l.limit) {
		return RateDecision{Allowed: true}
	}
	retry := time.Duration(res[1]) * time.Millisecond
	if retry <= 0 {
		retry = l.window
	}
	return RateDecision{RetryAfter: retry}
}
