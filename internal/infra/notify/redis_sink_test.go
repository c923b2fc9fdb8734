package notify

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-pro/internal/events"
)

// precisa de um Redis real: REDIS_TEST_ADDR=localhost:6379
func testClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	t.Cleanup(func() {
		rdb.FlushDB(context.Background())
		rdb.Close()
	})
	return rdb
}

func TestRedisSink_PublishAndRecent(t *testing.T) {
	rdb := testClient(t)
	ctx := context.Background()

	sub := rdb.Subscribe(ctx, Channel(7))
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	sink := NewRedisSink(rdb, 2)
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	for i := uint(1); i <= 3; i++ {
		ev := events.New(events.AppointmentCreated, 7, at)
		ev.AppointmentID = i
		require.NoError(t, sink.Publish(ctx, ev))
	}

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Contains(t, msg.Payload, `"appointment.created"`)

	recent, err := sink.Recent(ctx, 7, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, uint(3), recent[0].AppointmentID)
	assert.Equal(t, uint(2), recent[1].AppointmentID)
}
