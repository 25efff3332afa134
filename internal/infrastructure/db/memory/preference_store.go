// Package memory holds process-local adapters used when no external store is
// configured.
package memory

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
)

// PreferenceStore keeps preferences in process memory. Values never expire
// and are lost on restart.
type PreferenceStore struct {
	c *gocache.Cache
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{c: gocache.New(gocache.NoExpiration, 0)}
}

func (p *PreferenceStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	return s, ok, nil
}

func (p *PreferenceStore) Set(_ context.Context, key, value string) error {
	p.c.Set(key, value, gocache.NoExpiration)
	return nil
}
