package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const pingPath = "/ping"

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpPeerAdapter struct {
	client *resty.Client
}

func NewHTTPPeerAdapter(cfg HTTPClientConfig) PeerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8001"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpPeerAdapter{client: cli}
}

func (h *httpPeerAdapter) Ping(ctx context.Context) (int, json.RawMessage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(pingPath)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrPeerUnreachable, err)
	}

	body := bytes.TrimSpace(resp.Body())
	if !json.Valid(body) {
		return resp.StatusCode(), nil, fmt.Errorf("%w: %q", ErrInvalidPeerResponse, truncate(body, 128))
	}

	return resp.StatusCode(), json.RawMessage(body), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}

	return string(b[:n]) + "..."
}
