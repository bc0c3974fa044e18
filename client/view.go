package client

import (
	"context"
	"net/http"

	octerr "octest/errors"
	"octest/jsonx"
)

const statusSuccess = "success"

// NullResult is returned when a successful view response carries no result
// field.
const NullResult = "null"

// CallView performs a stateless read-only contract call. No signing, no
// nonce, no retry; safe to repeat.
func (c *Client) CallView(ctx context.Context, contract, method string, params []string, caller string) (string, error) {
	if params == nil {
		params = []string{}
	}
	req := viewRequest{Contract: contract, Method: method, Params: params, Caller: caller}
	raw, err := c.Call(ctx, http.MethodPost, "/contract/call-view", req)
	if err != nil {
		return "", err
	}

	var resp viewResponse
	if err := jsonx.Unmarshal(raw, &resp); err != nil {
		return "", &octerr.DecodeError{What: "call-view response", Err: err}
	}
	if resp.Status != statusSuccess {
		return "", &octerr.ContractError{Raw: string(raw)}
	}
	return renderResult(resp.Result)
}

// renderResult coerces the result field to text: absent or JSON null yields
// the "null" sentinel, strings are unquoted, anything else is compact JSON.
func renderResult(raw []byte) (string, error) {
	if len(raw) == 0 || string(raw) == NullResult {
		return NullResult, nil
	}
	if raw[0] == '"' {
		var s string
		if err := jsonx.Unmarshal(raw, &s); err != nil {
			return "", &octerr.DecodeError{What: "call-view result", Err: err}
		}
		return s, nil
	}
	s, err := jsonx.Compact(raw)
	if err != nil {
		return "", &octerr.DecodeError{What: "call-view result", Err: err}
	}
	return s, nil
}
