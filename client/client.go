package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	octerr "octest/errors"
	"octest/jsonx"
)

// DefaultTimeout bounds a single RPC exchange. Retry is the submitter's
// concern, never this layer's.
const DefaultTimeout = 100 * time.Second

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the thin HTTP transport every other component goes through.
// One instance is shared for the whole run so connections get reused.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// Call issues one HTTP exchange and returns the raw response body. GET
// ignores body. Status >= 400 is an APIError carrying the node's message;
// transport failures are NetworkErrors.
func (c *Client) Call(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if method == http.MethodPost && body != nil {
		data, err := jsonx.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := c.cfg.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &octerr.NetworkError{Op: method + " " + url, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &octerr.NetworkError{Op: "read " + url, Err: err}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &octerr.APIError{Status: resp.StatusCode, Body: string(respBody)}
	}
	return respBody, nil
}

// CallJSON issues one exchange and decodes the response into out. A body
// that is not the expected shape is a DecodeError.
func (c *Client) CallJSON(ctx context.Context, method, path string, body, out interface{}) error {
	respBody, err := c.Call(ctx, method, path, body)
	if err != nil {
		return err
	}
	if err := jsonx.Unmarshal(respBody, out); err != nil {
		return &octerr.DecodeError{What: method + " " + path, Err: err}
	}
	return nil
}
