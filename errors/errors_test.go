package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorMessage(t *testing.T) {
	err := NewAPIError(http.StatusNotFound, "Request not found", "NOT_FOUND", `{"error":"not_found"}`)
	assert.Equal(t, "helpdesk API error (404 NOT_FOUND): Request not found", err.Error())

	bare := NewAPIError(http.StatusBadGateway, "Bad Gateway", "", "upstream exploded")
	assert.Equal(t, "helpdesk API error (502): Bad Gateway", bare.Error())
}

func TestPredicates(t *testing.T) {
	notFound := NewAPIError(http.StatusNotFound, "missing", "", "")
	unauthorized := NewAPIError(http.StatusUnauthorized, "bad token", "", "")

	assert.True(t, IsAPIError(notFound))
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(unauthorized))
	assert.True(t, IsUnauthorized(unauthorized))
	assert.False(t, IsAPIError(stderrors.New("plain")))
	assert.False(t, IsNotFound(stderrors.New("plain")))
}

func TestNetworkErrorUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := &NetworkError{Operation: "GET", URL: "https://api.helpdesk.com/v1/requests", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "GET")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "HELPDESK_API_TOKEN", Message: "must be set"}
	assert.Equal(t, fmt.Sprintf("configuration error for %s: %s", err.Field, err.Message), err.Error())
}
