package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"vidquiz/internal/cache"
	"vidquiz/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() domain.MalformedCompletion {
	return domain.MalformedCompletion{
		RunID:      "01HGZ8VNRYXS8QKNJV5GRWPWDQ",
		Locator:    "https://youtu.be/abc",
		Completion: "I cannot help with that.",
		Reason:     "completion is not valid JSON",
		RecordedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRedisDiagnosticsAdapter_RecordMalformedCompletion(t *testing.T) {
	key := cache.MalformedCompletionsKey
	entry := sampleEntry()
	payload, err := json.Marshal(entry)
	require.NoError(t, err)
	ttl := 168 * time.Hour
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		sink := NewRedisDiagnosticsAdapter(db, 100, ttl)

		mock.ExpectLPush(key, string(payload)).SetVal(1)
		mock.ExpectLTrim(key, 0, 99).SetVal("OK")
		mock.ExpectExpire(key, ttl).SetVal(true)

		assert.NoError(t, sink.RecordMalformedCompletion(ctx, entry))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoTTL", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		sink := NewRedisDiagnosticsAdapter(db, 10, 0)

		mock.ExpectLPush(key, string(payload)).SetVal(1)
		mock.ExpectLTrim(key, 0, 9).SetVal("OK")

		assert.NoError(t, sink.RecordMalformedCompletion(ctx, entry))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("PushError", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		sink := NewRedisDiagnosticsAdapter(db, 100, ttl)
		redisErr := errors.New("some redis error")

		mock.ExpectLPush(key, string(payload)).SetErr(redisErr)

		err := sink.RecordMalformedCompletion(ctx, entry)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("TrimError", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		sink := NewRedisDiagnosticsAdapter(db, 100, ttl)
		redisErr := errors.New("trim failed")

		mock.ExpectLPush(key, string(payload)).SetVal(1)
		mock.ExpectLTrim(key, 0, 99).SetErr(redisErr)

		err := sink.RecordMalformedCompletion(ctx, entry)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisDiagnosticsAdapter_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	sink := NewRedisDiagnosticsAdapter(db, 100, time.Hour)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectPing().SetVal("PONG")
		assert.NoError(t, sink.Ping(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("connection refused")
		mock.ExpectPing().SetErr(redisErr)
		assert.ErrorIs(t, sink.Ping(ctx), redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoopDiagnosticsSink(t *testing.T) {
	var sink domain.DiagnosticsSink = NoopDiagnosticsSink{}
	assert.NoError(t, sink.RecordMalformedCompletion(context.Background(), sampleEntry()))
	assert.NoError(t, sink.Ping(context.Background()))
}
