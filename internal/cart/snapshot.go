package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const snapshotPrefix = "cart:snapshot:"

// SnapshotStore persists the line list of a cart between requests. The
// sidebar flag is deliberately excluded from the snapshot.
type SnapshotStore interface {
	Save(ctx context.Context, cartID string, lines []Line) error
	Load(ctx context.Context, cartID string) ([]Line, bool, error)
}

// RedisSnapshots keeps cart snapshots in Redis under a fixed key namespace
// with a sliding TTL.
type RedisSnapshots struct {
	Client *redis.Client
	TTL    time.Duration
}

func snapshotKey(cartID string) string {
	return snapshotPrefix + cartID
}

// Save serialises the lines and stores them, refreshing the TTL.
func (s RedisSnapshots) Save(ctx context.Context, cartID string, lines []Line) error {
	if s.Client == nil {
		return fmt.Errorf("cart: snapshot client not configured")
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("cart: marshal snapshot: %w", err)
	}
	if err := s.Client.Set(ctx, snapshotKey(cartID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("cart: save snapshot: %w", err)
	}
	return nil
}

// Load restores the line list. The second return value reports whether a
// snapshot existed.
func (s RedisSnapshots) Load(ctx context.Context, cartID string) ([]Line, bool, error) {
	if s.Client == nil {
		return nil, false, fmt.Errorf("cart: snapshot client not configured")
	}
	data, err := s.Client.Get(ctx, snapshotKey(cartID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cart: load snapshot: %w", err)
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, false, fmt.Errorf("cart: decode snapshot: %w", err)
	}
	return lines, true, nil
}
