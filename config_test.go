package helpdesk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-go/helpdesk/auth"
	"github.com/helpdesk-go/helpdesk/errors"
)

func TestNewFromEnvWithLiteralToken(t *testing.T) {
	t.Setenv("HELPDESK_API_TOKEN", "tok-env")
	t.Setenv("HELPDESK_SECRET_PATH", "")

	c, err := NewFromEnv(nil)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNewFromEnvWithSecretPath(t *testing.T) {
	t.Setenv("HELPDESK_API_TOKEN", "")
	t.Setenv("HELPDESK_SECRET_PATH", "path/to/secret")

	store := auth.InMemoryStore{"path/to/secret": "tok-env"}
	c, err := NewFromEnv(store)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNewFromEnvSecretPathRequiresStore(t *testing.T) {
	t.Setenv("HELPDESK_API_TOKEN", "")
	t.Setenv("HELPDESK_SECRET_PATH", "path/to/secret")

	_, err := NewFromEnv(nil)
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestNewFromEnvRequiresIdentity(t *testing.T) {
	t.Setenv("HELPDESK_API_TOKEN", "")
	t.Setenv("HELPDESK_SECRET_PATH", "")

	_, err := NewFromEnv(nil)
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestSecretTokenHelper(t *testing.T) {
	store := auth.InMemoryStore{"path/to/secret": "tok-9"}
	a := NewSecretToken(store, "path/to/secret")

	token, err := a.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-9", token)
}
