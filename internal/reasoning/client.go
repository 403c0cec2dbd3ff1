// Package reasoning talks to an OpenAI-compatible chat completion service
// (OpenRouter by default) that writes the narrative route assessment.
package reasoning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/jengzang/route-terrain-go/internal/logging"
	"github.com/jengzang/route-terrain-go/internal/models"
)

var (
	// ErrUnauthorized means the API key is missing or was rejected
	ErrUnauthorized = errors.New("reasoning service credentials missing or invalid")
	// ErrUnavailable covers every other failure of the call
	ErrUnavailable = errors.New("reasoning service request failed")
)

// Prompt is one completion request
type Prompt struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

// Completion is the raw answer plus its parsed form. Structured is nil when
// the text is not valid JSON for the expected schema.
type Completion struct {
	Text       string
	Structured *models.StructuredAnalysis
}

// Reasoner produces a completion for a prompt
type Reasoner interface {
	Complete(ctx context.Context, p Prompt) (*Completion, error)
}

// Config configures the client
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	Referer  string
	Title    string
	Timeout  time.Duration
	JSONMode bool
}

// Client is a Reasoner backed by go-openai
type Client struct {
	api      *openai.Client
	model    string
	hasKey   bool
	jsonMode bool
	logger   *slog.Logger
}

// NewClient creates a new reasoning client
func NewClient(cfg Config) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	oc.HTTPClient = &http.Client{
		Timeout: cfg.Timeout,
		Transport: &headerTransport{
			base:    http.DefaultTransport,
			referer: cfg.Referer,
			title:   cfg.Title,
		},
	}

	return &Client{
		api:      openai.NewClientWithConfig(oc),
		model:    cfg.Model,
		hasKey:   cfg.APIKey != "",
		jsonMode: cfg.JSONMode,
		logger:   logging.Component("reasoning"),
	}
}

// Complete implements Reasoner. It makes exactly one attempt.
func (c *Client) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	if !c.hasKey {
		return nil, fmt.Errorf("%w: API key is not configured", ErrUnauthorized)
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.System},
			{Role: openai.ChatMessageRoleUser, Content: p.User},
		},
		MaxTokens:   p.MaxTokens,
		Temperature: p.Temperature,
	}
	if c.jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	c.logger.Debug("sending completion request", "model", c.model, "prompt_chars", len(p.User))

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		status := statusCode(err)
		c.logger.Error("completion request failed", "model", c.model, "status", status, "error", err)
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return nil, fmt.Errorf("%w: HTTP %d", ErrUnauthorized, status)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		c.logger.Warn("completion returned no choices", "model", c.model)
		return nil, fmt.Errorf("%w: no choices returned", ErrUnavailable)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	c.logger.Debug("completion received", "finish_reason", resp.Choices[0].FinishReason, "chars", len(text))

	structured, perr := ParseStructured(text)
	if perr != nil {
		c.logger.Warn("completion is not valid structured JSON, keeping raw text", "error", perr)
	}

	return &Completion{Text: text, Structured: structured}, nil
}

func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

// headerTransport adds the attribution headers OpenRouter uses for app rankings
type headerTransport struct {
	base    http.RoundTripper
	referer string
	title   string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.referer == "" && t.title == "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	if t.referer != "" {
		r.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		r.Header.Set("X-Title", t.title)
	}
	return t.base.RoundTrip(r)
}
