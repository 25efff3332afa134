package ports

import "context"

// PreferenceStore is a small key-value store for UI preferences.
type PreferenceStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
