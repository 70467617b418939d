package helpdesk

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/helpdesk-go/helpdesk/auth"
	"github.com/helpdesk-go/helpdesk/client"
	"github.com/helpdesk-go/helpdesk/errors"
)

// EnvConfig holds construction parameters read from the environment by
// NewFromEnv. The client core itself never reads the environment; this is
// an opt-in convenience for applications that configure the SDK that way.
type EnvConfig struct {
	// APIToken is a literal token (HELPDESK_API_TOKEN).
	APIToken string `envconfig:"API_TOKEN"`
	// SecretPath is a secret-store path to resolve the token from
	// (HELPDESK_SECRET_PATH). Requires a store passed to NewFromEnv.
	SecretPath string `envconfig:"SECRET_PATH"`
	// BaseURL overrides the production API URL (HELPDESK_BASE_URL).
	BaseURL string `envconfig:"BASE_URL"`
	// Debug enables HTTP debug dumps (HELPDESK_DEBUG).
	Debug bool `envconfig:"DEBUG"`
}

// NewFromEnv builds a client from HELPDESK_* environment variables.
//
// HELPDESK_API_TOKEN takes precedence; otherwise HELPDESK_SECRET_PATH is
// resolved lazily through store. Exactly one identity source must be set.
func NewFromEnv(store auth.SecretStore) (*Client, error) {
	var cfg EnvConfig
	if err := envconfig.Process("helpdesk", &cfg); err != nil {
		return nil, err
	}

	var authenticator auth.Authenticator
	switch {
	case cfg.APIToken != "":
		authenticator = auth.NewStaticToken(cfg.APIToken)
	case cfg.SecretPath != "":
		if store == nil {
			return nil, &errors.ConfigError{
				Field:   "HELPDESK_SECRET_PATH",
				Message: "a secret store is required to resolve a secret path",
			}
		}
		authenticator = auth.NewSecretToken(store, cfg.SecretPath)
	default:
		return nil, &errors.ConfigError{
			Field:   "HELPDESK_API_TOKEN",
			Message: "either HELPDESK_API_TOKEN or HELPDESK_SECRET_PATH must be set",
		}
	}

	return client.NewClient(&client.Config{
		BaseURL: cfg.BaseURL,
		Auth:    authenticator,
		Debug:   cfg.Debug,
	}), nil
}
