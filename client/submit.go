package client

import (
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"
	"net/http"
	"time"

	octerr "octest/errors"
	"octest/logx"
	"octest/utils"
)

const (
	// DefaultAttempts bounds a submission; the loop never runs open-ended.
	DefaultAttempts = 3
	// DefaultBackoff is the fixed gap between attempts. Not exponential.
	DefaultBackoff = 2 * time.Second

	// Contract calls move no tokens and carry the fixed operation-unit tag.
	callAmount = "0"
	callOU     = "1"
)

// ErrNoTxHash marks an accepted HTTP exchange whose response carried no
// transaction hash. The attempt is discarded like any other failure.
var ErrNoTxHash = errors.New("client: node returned no transaction hash")

// phase tracks where a submission attempt is. Every attempt walks
// fetching -> signing -> submitting; a failure anywhere discards the whole
// attempt, so no nonce, timestamp or signature survives into the next one.
type phase int

const (
	phaseIdle phase = iota
	phaseFetching
	phaseSigning
	phaseSubmitting
	phaseSucceeded
	phaseFailed
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseFetching:
		return "fetching"
	case phaseSigning:
		return "signing"
	case phaseSubmitting:
		return "submitting"
	case phaseSucceeded:
		return "succeeded"
	case phaseFailed:
		return "failed"
	}
	return "unknown"
}

// Node is what the submitter needs from the transport: fresh account state
// and a JSON POST. *Client satisfies it.
type Node interface {
	AccountState(ctx context.Context, addr string) (*AccountState, error)
	CallJSON(ctx context.Context, method, path string, body, out interface{}) error
}

// Submitter drives the fetch-nonce -> sign -> submit cycle for
// state-changing contract calls, rebuilding the transaction from scratch on
// every attempt.
type Submitter struct {
	node   Node
	from   string
	seed   []byte
	pubKey ed25519.PublicKey

	attempts int
	backoff  time.Duration
	sleep    func(time.Duration)
	now      func() float64

	phase phase
}

// SubmitterOption adjusts retry policy or, in tests, time itself.
type SubmitterOption func(*Submitter)

func WithRetryPolicy(attempts int, backoff time.Duration) SubmitterOption {
	return func(s *Submitter) {
		if attempts > 0 {
			s.attempts = attempts
		}
		if backoff >= 0 {
			s.backoff = backoff
		}
	}
}

func WithSleep(sleep func(time.Duration)) SubmitterOption {
	return func(s *Submitter) { s.sleep = sleep }
}

func WithClock(now func() float64) SubmitterOption {
	return func(s *Submitter) { s.now = now }
}

// NewSubmitter builds a submitter for one sending account. The seed is read
// only; it is never mutated after load.
func NewSubmitter(node Node, from string, seed []byte, opts ...SubmitterOption) (*Submitter, error) {
	pubKey, err := PublicKeyFromSeed(seed)
	if err != nil {
		return nil, err
	}
	s := &Submitter{
		node:     node,
		from:     from,
		seed:     seed,
		pubKey:   pubKey,
		attempts: DefaultAttempts,
		backoff:  DefaultBackoff,
		sleep:    time.Sleep,
		now:      utils.NowWireTimestamp,
		phase:    phaseIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Submit runs the retry state machine and returns the transaction hash on
// accept. Each failed attempt is reported before the next begins; after the
// last failure the per-attempt errors come back aggregated in a
// RetryExhaustedError.
func (s *Submitter) Submit(ctx context.Context, contract, method string, params []string) (string, error) {
	attemptErrs := make([]error, 0, s.attempts)
	for attempt := 1; attempt <= s.attempts; attempt++ {
		hash, err := s.runAttempt(ctx, contract, method, params)
		if err == nil {
			s.transition(phaseSucceeded)
			return hash, nil
		}
		logx.Warn("SUBMIT", fmt.Sprintf("%s attempt %d/%d failed: %v", method, attempt, s.attempts, err))
		attemptErrs = append(attemptErrs, err)
		if attempt < s.attempts {
			s.sleep(s.backoff)
		}
	}
	s.transition(phaseFailed)
	return "", &octerr.RetryExhaustedError{Attempts: s.attempts, Errs: attemptErrs}
}

// runAttempt performs one full fetch -> sign -> submit pass. The nonce is
// refetched here, inside the attempt, so a conflict caused by a prior
// attempt or another actor heals on the next pass.
func (s *Submitter) runAttempt(ctx context.Context, contract, method string, params []string) (string, error) {
	s.transition(phaseFetching)
	state, err := s.node.AccountState(ctx, s.from)
	if err != nil {
		return "", err
	}

	s.transition(phaseSigning)
	tx := &Tx{
		From:      s.from,
		To:        contract,
		Amount:    callAmount,
		Nonce:     state.Nonce + 1,
		OU:        callOU,
		Timestamp: s.now(),
	}
	sig, err := SignTx(tx, s.seed)
	if err != nil {
		return "", err
	}

	s.transition(phaseSubmitting)
	if params == nil {
		params = []string{}
	}
	req := callRequest{
		Contract:  contract,
		Method:    method,
		Params:    params,
		Caller:    s.from,
		Nonce:     tx.Nonce,
		Timestamp: tx.Timestamp,
		Signature: EncodeSignature(sig),
		PublicKey: EncodePublicKey(s.pubKey),
	}
	var resp callResponse
	if err := s.node.CallJSON(ctx, http.MethodPost, "/call-contract", req, &resp); err != nil {
		return "", err
	}
	if resp.TxHash == "" {
		return "", ErrNoTxHash
	}
	return resp.TxHash, nil
}

func (s *Submitter) transition(next phase) {
	logx.Debug("SUBMIT", fmt.Sprintf("%s -> %s", s.phase, next))
	s.phase = next
}
