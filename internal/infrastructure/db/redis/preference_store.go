package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const preferencePrefix = "prefs:"

// PreferenceStore keeps UI preferences as plain Redis strings without expiry.
// Key format: prefs:<key>
type PreferenceStore struct {
	client *redis.Client
}

// NewPreferenceStore creates a PreferenceStore wrapping the given Redis client.
func NewPreferenceStore(client *redis.Client) *PreferenceStore {
	return &PreferenceStore{client: client}
}

func (p *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := p.client.Get(ctx, preferencePrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %s: %w", key, err)
	}
	return v, true, nil
}

func (p *PreferenceStore) Set(ctx context.Context, key, value string) error {
	if err := p.client.Set(ctx, preferencePrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}
