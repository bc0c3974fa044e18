package client

import (
	"context"
	"net/http"

	"github.com/holiman/uint256"

	octerr "octest/errors"
)

// AccountState fetches the current balance and nonce for an address. No
// caching: a stale nonce is exactly what makes the node reject a
// submission, so every caller gets a fresh snapshot.
func (c *Client) AccountState(ctx context.Context, addr string) (*AccountState, error) {
	var resp balanceResponse
	if err := c.CallJSON(ctx, http.MethodGet, "/balance/"+addr, nil, &resp); err != nil {
		return nil, err
	}
	balance, err := uint256.FromDecimal(resp.BalanceRaw)
	if err != nil {
		return nil, &octerr.DecodeError{What: "balance_raw " + resp.BalanceRaw, Err: err}
	}
	return &AccountState{Balance: balance, Nonce: resp.Nonce}, nil
}
