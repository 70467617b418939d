package auth

import (
	"context"
	"errors"
	"fmt"
)

// ErrSecretNotFound is returned when a store has no value under the requested path.
var ErrSecretNotFound = errors.New("secret not found")

// SecretStore is the boundary to an external key-value secret backend.
//
// Implementations wrap whatever secret manager the application uses
// (cloud secret managers, vaults, files). Lookup failures are surfaced
// verbatim; the SDK performs no retries or fallbacks on top of them.
type SecretStore interface {
	// Get returns the secret value stored under path.
	Get(ctx context.Context, path string) (string, error)
}

// StoreFunc adapts a plain function to the SecretStore interface.
type StoreFunc func(ctx context.Context, path string) (string, error)

// Get calls f
func (f StoreFunc) Get(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

// InMemoryStore is a SecretStore backed by a map, for development and tests.
type InMemoryStore map[string]string

// Get returns the value stored under path, or ErrSecretNotFound
func (m InMemoryStore) Get(_ context.Context, path string) (string, error) {
	value, ok := m[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, path)
	}
	return value, nil
}
