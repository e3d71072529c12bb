// Package chat talks to the coaching assistant about the active game.
// The replay engine feeds it PGN context; everything here lives at the
// application boundary.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

// Message is one chat turn. Role is "system", "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type AskRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type askResponse struct {
	Reply string `json:"reply"`
}

type Client struct {
	endpoint string
	apiKey   string
	http     *fasthttp.Client

	defaultTimeout time.Duration
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.defaultTimeout = d }
}

func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

func WithMaxConnsPerHost(n int) Option {
	return func(c *Client) { c.http.MaxConnsPerHost = n }
}

func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:       strings.TrimRight(endpoint, "/"),
		http:           &fasthttp.Client{ReadTimeout: 30 * time.Second, WriteTimeout: 10 * time.Second, MaxConnsPerHost: 4},
		defaultTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ask sends the conversation to the coach endpoint and returns its reply.
func (c *Client) Ask(ctx context.Context, in AskRequest) (string, error) {
	var out askResponse
	if err := c.doJSON(ctx, c.endpoint+"/chat", in, &out); err != nil {
		return "", err
	}
	return out.Reply, nil
}

func (c *Client) doJSON(ctx context.Context, url string, in, out any) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.Header.SetMethod(fasthttp.MethodPost)
	req.SetRequestURI(url)
	req.Header.SetContentType("application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req.SetBody(payload)

	timeout := c.defaultTimeout
	if dl, ok := ctx.Deadline(); ok {
		if remaining := time.Until(dl); remaining < timeout {
			timeout = remaining
		}
	}
	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		return fmt.Errorf("chat request: %w", err)
	}

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return fmt.Errorf("chat endpoint returned %d", code)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
