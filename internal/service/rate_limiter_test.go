package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type mockRedisScripter struct {
	lastKeys []string
	lastArgs []interface{}
	lastCtx  context.Context
	result   []interface{}
	err      error
}

func (m *mockRedisScripter) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastCtx = ctx
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func TestMemoryRateLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	l := NewRateLimiter(time.Minute, 2).(*memoryRateLimiter)
	l.now = func() time.Time { return now }

	if !l.Allow(ctx, "s1", RateScopeComments).Allowed {
		t.Fatalf("expected first hit to pass")
	}
	now = now.Add(10 * time.Second)
	if !l.Allow(ctx, "s1", RateScopeComments).Allowed {
		t.Fatalf("expected second hit to pass")
	}
	d := l.Allow(ctx, "s1", RateScopeComments)
	if d.Allowed || d.RetryAfter != 50*time.Second {
		t.Fatalf("expected deny with 50s left, got %+v", d)
	}
	if !l.Allow(ctx, "s1", RateScopeMessages).Allowed || !l.Allow(ctx, "s2", RateScopeComments).Allowed {
		t.Fatalf("expected scopes and sessions to have separate budgets")
	}

	now = now.Add(51 * time.Second)
	if !l.Allow(ctx, "s1", RateScopeComments).Allowed {
		t.Fatalf("expected window to slide")
	}
}

func TestMemoryRateLimiterDropsIdleSessions(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	l := NewRateLimiter(time.Minute, 5).(*memoryRateLimiter)
	l.now = func() time.Time { return now }

	for _, id := range []string{"a", "b", "c"} {
		l.Allow(ctx, id, RateScopeComments)
		l.Allow(ctx, id, RateScopeMessages)
	}
	if len(l.buckets) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(l.buckets))
	}

	now = now.Add(2 * time.Minute)
	l.Allow(ctx, "d", RateScopeComments)
	if len(l.buckets) != 1 {
		t.Fatalf("expected idle buckets to be swept, got %d", len(l.buckets))
	}
}

func TestRedisRateLimiter(t *testing.T) {
	t.Run("nil client", func(t *testing.T) {
		if l := NewRedisRateLimiter(zap.NewNop(), nil, time.Minute, 3); l != nil {
			t.Fatalf("expected nil limiter for nil client")
		}
	})

	t.Run("allow within limit", func(t *testing.T) {
		mock := &mockRedisScripter{result: []interface{}{int64(3), int64(40000)}}
		l := newRedisRateLimiter(zap.NewNop(), mock, 2*time.Minute, 3)
		type ctxKey struct{}
		ctx := context.WithValue(context.Background(), ctxKey{}, "req")
		if !l.Allow(ctx, "s1", RateScopeComments).Allowed {
			t.Fatalf("expected allow when count <= limit")
		}
		if len(mock.lastKeys) != 1 || mock.lastKeys[0] != "moodfeed:rl:comments:s1" {
			t.Fatalf("unexpected key, got %+v", mock.lastKeys)
		}
		if len(mock.lastArgs) != 1 || mock.lastArgs[0] != int64(120000) {
			t.Fatalf("expected window in ms, got %+v", mock.lastArgs)
		}
		if mock.lastCtx.Value(ctxKey{}) != "req" {
			t.Fatalf("expected the request context to reach redis")
		}
	})

	t.Run("deny reports remaining window", func(t *testing.T) {
		l := newRedisRateLimiter(zap.NewNop(), &mockRedisScripter{result: []interface{}{int64(4), int64(1500)}}, time.Minute, 3)
		d := l.Allow(context.Background(), "s1", RateScopeMessages)
		if d.Allowed || d.RetryAfter != 1500*time.Millisecond {
			t.Fatalf("expected deny with 1.5s left, got %+v", d)
		}
	})

	t.Run("cancelled request context", func(t *testing.T) {
		mock := &mockRedisScripter{result: []interface{}{int64(1), int64(60000)}}
		l := newRedisRateLimiter(zap.NewNop(), mock, time.Minute, 3)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		l.Allow(ctx, "s1", RateScopeComments)
		if mock.lastCtx.Err() == nil {
			t.Fatalf("expected the cancelled request context to be propagated")
		}
	})

	t.Run("redis error fails open", func(t *testing.T) {
		l := newRedisRateLimiter(zap.NewNop(), &mockRedisScripter{err: errors.New("redis down")}, time.Minute, 3)
		if !l.Allow(context.Background(), "s1", RateScopeComments).Allowed {
			t.Fatalf("expected fail-open on redis errors")
		}
	})
}
