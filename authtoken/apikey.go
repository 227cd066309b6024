// Package authtoken supplies bearer tokens for outgoing API requests.
package authtoken

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var ErrMissingAPIKey = errors.New("authtoken: api key is empty")

// APIKey hands out a static API key as bearer token. The key can be rotated
// at runtime with Set.
type APIKey struct {
	mu  sync.RWMutex
	key string
}

func New(key string) *APIKey {
	return &APIKey{
		mu:  sync.RWMutex{},
		key: strings.TrimSpace(key),
	}
}

func (a *APIKey) GetToken(_ context.Context) (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.key == "" {
		return "", ErrMissingAPIKey
	}

	return a.key, nil
}

func (a *APIKey) Set(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.key = strings.TrimSpace(key)
}

// Masked returns the key with all but the last four characters hidden.
func (a *APIKey) Masked() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	const visible = 4
	if len(a.key) <= visible {
		return strings.Repeat("*", len(a.key))
	}

	return strings.Repeat("*", len(a.key)-visible) + a.key[len(a.key)-visible:]
}
