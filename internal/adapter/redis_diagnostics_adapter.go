package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vidquiz/internal/cache"
	"vidquiz/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisDiagnosticsAdapter implements domain.DiagnosticsSink with a capped Redis list.
type RedisDiagnosticsAdapter struct {
	client     redis.Cmdable
	key        string
	maxEntries int64
	ttl        time.Duration
}

// NewRedisDiagnosticsAdapter keeps at most maxEntries records, newest first.
// A zero ttl leaves the list without expiry.
func NewRedisDiagnosticsAdapter(client redis.Cmdable, maxEntries int, ttl time.Duration) *RedisDiagnosticsAdapter {
	return &RedisDiagnosticsAdapter{
		client:     client,
		key:        cache.MalformedCompletionsKey,
		maxEntries: int64(maxEntries),
		ttl:        ttl,
	}
}

// RecordMalformedCompletion pushes entry onto the list and trims it.
func (r *RedisDiagnosticsAdapter) RecordMalformedCompletion(ctx context.Context, entry domain.MalformedCompletion) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal malformed completion: %w", err)
	}
	if err := r.client.LPush(ctx, r.key, string(payload)).Err(); err != nil {
		return fmt.Errorf("push malformed completion: %w", err)
	}
	if err := r.client.LTrim(ctx, r.key, 0, r.maxEntries-1).Err(); err != nil {
		return fmt.Errorf("trim malformed completions: %w", err)
	}
	if r.ttl > 0 {
		if err := r.client.Expire(ctx, r.key, r.ttl).Err(); err != nil {
			return fmt.Errorf("expire malformed completions: %w", err)
		}
	}
	return nil
}

// Ping checks the health of the Redis server.
func (r *RedisDiagnosticsAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// NoopDiagnosticsSink is used when no Redis is configured; the pipeline still logs the completion.
type NoopDiagnosticsSink struct{}

func (NoopDiagnosticsSink) RecordMalformedCompletion(ctx context.Context, entry domain.MalformedCompletion) error {
	return nil
}

func (NoopDiagnosticsSink) Ping(ctx context.Context) error {
	return nil
}

var (
	_ domain.DiagnosticsSink = (*RedisDiagnosticsAdapter)(nil)
	_ domain.DiagnosticsSink = NoopDiagnosticsSink{}
)
