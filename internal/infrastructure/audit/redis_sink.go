// Package audit ships validation-failure records to an external store.
// Delivery is best effort: the sink is not part of request correctness and
// its failures never propagate to callers.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/userhub/accounts-api/internal/core/ports"
)

const entryTTL = 7 * 24 * time.Hour

// RedisSink writes audit entries as JSON into per-category Redis lists.
// Key format: audit:<category>, e.g. audit:users/create.
type RedisSink struct {
	client *redis.Client
}

func NewRedisSink(client *redis.Client) *RedisSink {
	return &RedisSink{client: client}
}

// Write appends the entry to its category list and refreshes the list TTL.
func (s *RedisSink) Write(ctx context.Context, entry ports.AuditEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}

	key := s.key(entry.Category)
	if err := s.client.LPush(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("audit write: %w", err)
	}
	return s.client.Expire(ctx, key, entryTTL).Err()
}

func (s *RedisSink) key(category string) string {
	return fmt.Sprintf("audit:%s", category)
}
