package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	storeerr "github.com/RoyceAzure/lab/storefront/internal/errors"
	"github.com/RoyceAzure/lab/storefront/internal/infra/identity"
)

const (
	HeaderRequestID = "X-Request-ID"
	maxErrorBody    = 4 << 10
)

// Client 呼叫 storefront 後端的 REST API
// 同時實作訂單與目錄兩個後端介面
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     identity.ITokenSource
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithTokenSource 有 token 時帶上 Authorization: Bearer
func WithTokenSource(tokens identity.ITokenSource) ClientOption {
	return func(c *Client) { c.tokens = tokens }
}

func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: base url %q: %v", storeerr.ErrInvalidateParameter, baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base url %q needs scheme and host", storeerr.ErrInvalidateParameter, baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = u.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do 發出請求, 失敗一律包成 BackendError
// 回傳 http status 讓呼叫端處理 204 之類的情況
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), nil)
	if err != nil {
		return 0, storeerr.NewBackendError(op, 0, fmt.Errorf("%w: %v", storeerr.ErrInvalidateParameter, err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, uuid.New().String())

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		switch {
		case err == nil && token != "":
			req.Header.Set("Authorization", "Bearer "+token)
		case err != nil && !errors.Is(err, identity.ErrNoToken):
			return 0, storeerr.NewBackendError(op, 0, fmt.Errorf("load token: %w", err))
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, storeerr.NewBackendError(op, 0, fmt.Errorf("%w: %v", storeerr.ErrNetworkFailure, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, storeerr.FromStatus(op, resp.StatusCode, string(body))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return http.StatusNoContent, nil
		}
		return resp.StatusCode, storeerr.NewBackendError(op, resp.StatusCode, fmt.Errorf("%w: decode body: %v", storeerr.ErrServerRejected, err))
	}
	return resp.StatusCode, nil
}
