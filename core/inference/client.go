// Package inference is a client for a hosted text-summarization endpoint
// (Hugging Face Inference API wire format). One call summarizes one text.
package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gaurav-prasanna/pagesum/core"
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the hosted inference endpoint; the model id is appended.
	DefaultBaseURL = "https://router.huggingface.co/hf-inference/models"
	defaultTimeout = 60 * time.Second
)

// Client calls the summarization endpoint. It makes exactly one request
// per Summarize call and never retries.
type Client struct {
	http    *resty.Client
	baseURL string
}

type summarizeRequest struct {
	Inputs     string                `json:"inputs"`
	Parameters core.GenerationParams `json:"parameters"`
}

// NewClient creates a Client authenticated with a bearer token.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetAuthToken(token)

	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Summarize sends text to model and returns the normalized summary text.
func (c *Client) Summarize(
	ctx context.Context,
	model string,
	text string,
	params core.GenerationParams,
) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(summarizeRequest{Inputs: text, Parameters: params}).
		Post(c.modelURL(model))
	if err != nil {
		return "", fmt.Errorf("calling inference API: %w", err)
	}

	if resp.IsError() {
		return "", apiError(resp.StatusCode(), resp.Body())
	}

	decoded, err := DecodeResponse(resp.Body())
	if err != nil {
		return "", fmt.Errorf("model %s: %w", model, err)
	}
	return decoded.Text(), nil
}

func (c *Client) modelURL(model string) string {
	return c.baseURL + "/" + strings.TrimLeft(model, "/")
}

// apiError builds an error from a non-2xx response, preferring the
// endpoint's own "error" message when it sends one.
func apiError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("inference API returned %d: %s", status, payload.Error)
	}
	return fmt.Errorf("inference API returned %d: %s", status, strings.TrimSpace(string(body)))
}
