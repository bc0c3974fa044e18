package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	octerr "octest/errors"
)

func TestAccountState_ResolvesBalanceAndNonce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/balance/octAbc", r.URL.Path)
		w.Write([]byte(`{"balance_raw":"2500000","nonce":5}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	state, err := c.AccountState(context.Background(), "octAbc")
	require.NoError(t, err)
	assert.Equal(t, "2.5", state.DecimalBalance())
	assert.Equal(t, uint64(5), state.Nonce)
}

func TestAccountState_NonNumericBalanceIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"balance_raw":"plenty","nonce":5}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.AccountState(context.Background(), "octAbc")

	var decodeErr *octerr.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestAccountState_PropagatesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no such account"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.AccountState(context.Background(), "octAbc")

	var apiErr *octerr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}
