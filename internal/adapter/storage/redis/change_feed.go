package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"digiteen-wallet/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const changeFeedChannel = "digiteen:wallet-events"

// ChangeFeed implements ports.ChangeFeed over Redis pub/sub. Events tell
// other service instances (and their connected clients) that committed
// state changed; delivery is best-effort and losing one only delays a
// refresh.
type ChangeFeed struct {
	client *goredis.Client
	log    zerolog.Logger
}

// NewChangeFeed creates a Redis-backed change feed.
func NewChangeFeed(client *goredis.Client, log zerolog.Logger) *ChangeFeed {
	return &ChangeFeed{client: client, log: log}
}

// Publish broadcasts a wallet event to all subscribers.
func (f *ChangeFeed) Publish(ctx context.Context, event ports.WalletEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal wallet event: %w", err)
	}
	if err := f.client.Publish(ctx, changeFeedChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish wallet event: %w", err)
	}
	return nil
}

// Subscribe delivers wallet events until ctx is cancelled. Malformed
// payloads are logged and skipped so one bad message cannot stall the
// feed.
func (f *ChangeFeed) Subscribe(ctx context.Context) (<-chan ports.WalletEvent, error) {
	sub := f.client.Subscribe(ctx, changeFeedChannel)

	// Confirm the subscription before handing back the channel.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe wallet events: %w", err)
	}

	events := make(chan ports.WalletEvent)
	go func() {
		defer close(events)
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event ports.WalletEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					f.log.Warn().Err(err).Msg("Dropping malformed wallet event")
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return events, nil
}
