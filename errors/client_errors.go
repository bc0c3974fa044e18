package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents standardized error codes for client operations
type ErrorCode string

const (
	// Transport errors
	ErrCodeNetwork ErrorCode = "network_error"
	ErrCodeAPI     ErrorCode = "api_error"
	ErrCodeDecode  ErrorCode = "decode_error"

	// Contract errors
	ErrCodeContract       ErrorCode = "contract_error"
	ErrCodeRetryExhausted ErrorCode = "retry_exhausted"

	// Startup errors
	ErrCodeConfig ErrorCode = "config_error"
)

// NetworkError wraps a transport-level failure: unreachable host, timeout,
// connection reset. The node was never heard from.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrCodeNetwork, e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-success HTTP status with the node-provided body.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", ErrCodeAPI, e.Status, e.Body)
}

// DecodeError is a response that was received but did not match the
// expected shape.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrCodeDecode, e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ContractError is a logical rejection reported by the view endpoint. Raw
// carries the node's verbatim response for the operator.
type ContractError struct {
	Raw string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCodeContract, e.Raw)
}

// RetryExhaustedError aggregates the per-attempt failures of a submission
// whose every attempt failed.
type RetryExhaustedError struct {
	Attempts int
	Errs     []error
}

func (e *RetryExhaustedError) Error() string {
	parts := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		parts[i] = fmt.Sprintf("attempt %d: %v", i+1, err)
	}
	return fmt.Sprintf("%s: all %d attempts failed: %s",
		ErrCodeRetryExhausted, e.Attempts, strings.Join(parts, "; "))
}

func (e *RetryExhaustedError) Unwrap() error {
	if len(e.Errs) == 0 {
		return nil
	}
	return e.Errs[len(e.Errs)-1]
}

// ConfigError is a startup-time failure: missing or malformed wallet,
// interface or tuning file. Fatal, never retried.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrCodeConfig, e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
