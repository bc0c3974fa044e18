package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	octerr "octest/errors"
	"octest/jsonx"
)

func viewServer(t *testing.T, response string) (*httptest.Server, *[]viewRequest) {
	t.Helper()
	var seen []viewRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/contract/call-view", r.URL.Path)
		var req viewRequest
		require.NoError(t, jsonx.NewDecoder(r.Body).Decode(&req))
		seen = append(seen, req)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestCallView_SuccessWithStringResult(t *testing.T) {
	srv, seen := viewServer(t, `{"status":"success","result":"42"}`)

	c := NewClient(Config{BaseURL: srv.URL})
	result, err := c.CallView(context.Background(), "octContract1", "get_credits", []string{"7"}, "octAbc")
	require.NoError(t, err)
	assert.Equal(t, "42", result)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, "octContract1", req.Contract)
	assert.Equal(t, "get_credits", req.Method)
	assert.Equal(t, []string{"7"}, req.Params)
	assert.Equal(t, "octAbc", req.Caller)
}

func TestCallView_MissingResultYieldsNullSentinel(t *testing.T) {
	srv, _ := viewServer(t, `{"status":"success"}`)

	c := NewClient(Config{BaseURL: srv.URL})
	result, err := c.CallView(context.Background(), "octContract1", "m", nil, "octAbc")
	require.NoError(t, err)
	assert.Equal(t, NullResult, result)
}

func TestCallView_NonStringResultIsRenderedAsJSON(t *testing.T) {
	srv, _ := viewServer(t, `{"status":"success","result":7}`)

	c := NewClient(Config{BaseURL: srv.URL})
	result, err := c.CallView(context.Background(), "octContract1", "m", nil, "octAbc")
	require.NoError(t, err)
	assert.Equal(t, "7", result)
}

func TestCallView_NonSuccessStatusIsContractError(t *testing.T) {
	raw := `{"status":"error","message":"method reverted"}`
	srv, _ := viewServer(t, raw)

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.CallView(context.Background(), "octContract1", "m", nil, "octAbc")

	var contractErr *octerr.ContractError
	require.ErrorAs(t, err, &contractErr)
	assert.Equal(t, raw, contractErr.Raw)
}

func TestCallView_NeverTouchesOtherEndpoints(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"status":"success","result":"ok"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.CallView(context.Background(), "octContract1", "m", nil, "octAbc")
	require.NoError(t, err)

	// One request, view endpoint only: no balance fetch, no tx submission.
	assert.Equal(t, []string{"/contract/call-view"}, paths)
}
