package redis

import (
	"context"
	"testing"
	"time"

	"digiteen-wallet/internal/core/ports"
	"digiteen-wallet/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeFeed_PublishSubscribe(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	feed := NewChangeFeed(client, logger.New("error", false))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := feed.Subscribe(ctx)
	require.NoError(t, err)

	sent := ports.WalletEvent{
		TeenID:  uuid.New(),
		Key:     ports.FeedKeyWallet,
		Version: 3,
		At:      time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, feed.Publish(ctx, sent))

	select {
	case got := <-events:
		assert.Equal(t, sent.TeenID, got.TeenID)
		assert.Equal(t, ports.FeedKeyWallet, got.Key)
		assert.Equal(t, int64(3), got.Version)
	case <-ctx.Done():
		t.Fatal("timed out waiting for wallet event")
	}
}

func TestChangeFeed_SubscribeClosesOnCancel(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	feed := NewChangeFeed(client, logger.New("error", false))

	ctx, cancel := context.WithCancel(context.Background())
	events, err := feed.Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-events:
		assert.False(t, open, "event channel must close after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("event channel did not close after cancel")
	}
}

func TestChangeFeed_MalformedPayloadSkipped(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	feed := NewChangeFeed(client, logger.New("error", false))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := feed.Subscribe(ctx)
	require.NoError(t, err)

	// Raw garbage on the channel must not kill the subscription.
	require.NoError(t, client.Publish(ctx, changeFeedChannel, "not-json").Err())

	good := ports.WalletEvent{TeenID: uuid.New(), Key: ports.FeedKeyCard, At: time.Now()}
	require.NoError(t, feed.Publish(ctx, good))

	select {
	case got := <-events:
		assert.Equal(t, good.TeenID, got.TeenID)
		assert.Equal(t, ports.FeedKeyCard, got.Key)
	case <-ctx.Done():
		t.Fatal("timed out waiting for wallet event after malformed payload")
	}
}
