package client

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// restyLogger adapts zerolog to resty's Logger interface so debug dumps of
// requests and responses flow through the application's structured logs.
type restyLogger struct {
	log zerolog.Logger
}

func newLogger() *restyLogger {
	return &restyLogger{log: log.With().Str("component", "helpdesk-sdk").Logger()}
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error().Msgf(format, v...)
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Msgf(format, v...)
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}

// debugRequested checks if HTTP debug logging should be enabled via the
// environment. HELPDESK_DEBUG targets this SDK; DEBUG is the general flag.
// Debug dumps include headers and bodies, so keep it off outside development.
func debugRequested() bool {
	return os.Getenv("HELPDESK_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
