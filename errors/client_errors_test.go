package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryExhaustedError_AggregatesAttempts(t *testing.T) {
	first := errors.New("timeout")
	last := errors.New("no hash")
	err := &RetryExhaustedError{Attempts: 3, Errs: []error{first, errors.New("refused"), last}}

	msg := err.Error()
	assert.Contains(t, msg, "retry_exhausted")
	assert.Contains(t, msg, "all 3 attempts failed")
	assert.Contains(t, msg, "attempt 1: timeout")
	assert.Contains(t, msg, "attempt 3: no hash")

	assert.ErrorIs(t, err, last)
}

func TestNetworkError_Unwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := &NetworkError{Op: "GET http://node", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "network_error")
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{Status: 422, Body: "invalid nonce"}
	assert.Contains(t, err.Error(), "api_error")
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid nonce")
}
