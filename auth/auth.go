package auth

import (
	"context"
	"sync"
)

// Authenticator resolves the API token sent with every request.
type Authenticator interface {
	// Token returns the credential value for the Api-Key header.
	Token(ctx context.Context) (string, error)
}

// StaticToken authenticates with a literal token supplied at construction.
// Token never performs I/O.
type StaticToken struct {
	token string
}

// NewStaticToken creates an authenticator around a literal API token
func NewStaticToken(token string) *StaticToken {
	return &StaticToken{token: token}
}

// Token returns the configured token
func (a *StaticToken) Token(_ context.Context) (string, error) {
	return a.token, nil
}

// SecretToken resolves the API token lazily from a SecretStore and caches
// the resolved value for the lifetime of the authenticator.
//
// The first successful Token call performs exactly one store read; every
// later call returns the cached value without I/O. A failed read is
// propagated unchanged and leaves the cache empty, so a subsequent call
// performs a fresh lookup.
type SecretToken struct {
	store SecretStore
	path  string

	mu       sync.Mutex
	token    string
	resolved bool
}

// NewSecretToken creates an authenticator that reads the token from store
// under the given path on first use
func NewSecretToken(store SecretStore, path string) *SecretToken {
	return &SecretToken{store: store, path: path}
}

// Token returns the cached token, resolving it through the store on first call
func (a *SecretToken) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.resolved {
		return a.token, nil
	}

	value, err := a.store.Get(ctx, a.path)
	if err != nil {
		return "", err
	}

	a.token = value
	a.resolved = true
	return a.token, nil
}
