// Package openrouter answers free-form guest questions through an
// OpenAI-compatible chat completion API (OpenRouter by default).
package openrouter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"aadhira_hotel/internal/adapters/observability"
	"aadhira_hotel/internal/domain"
	"aadhira_hotel/internal/language"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "openai/gpt-4o-mini"

	service  = "openrouter"
	endpoint = "chat_completions"
)

var errEmptyChoices = errors.New("openrouter: no choices in response")

type Config struct {
	APIKey          string
	BaseURL         string
	Model           string
	Timeout         time.Duration // per call
	RPS             int
	BreakerFailures uint32 // consecutive failures before the breaker opens
	BreakerCooldown time.Duration
}

// Client implements domain.Responder. It makes exactly one upstream
// attempt per call; callers fall back on failure.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	rl      *rate.Limiter
	cb      *gobreaker.CircuitBreaker
	langs   *language.Resolver
	log     zerolog.Logger
}

func New(cfg Config, langs *language.Resolver, log zerolog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 5
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 5
	}
	if cfg.BreakerCooldown <= 0 {
		cfg.BreakerCooldown = 30 * time.Second
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout + 5*time.Second}

	c := &Client{
		api:     openai.NewClientWithConfig(oc),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		rl:      rate.NewLimiter(rate.Limit(cfg.RPS), cfg.RPS),
		langs:   langs,
		log:     log,
	}
	failures := cfg.BreakerFailures
	c.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        service,
		MaxRequests: 1,
		Timeout:     cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})
	return c, nil
}

// FetchReply asks the model for a short concierge answer in language.
// Every failure wraps domain.ErrRemoteUnavailable.
func (c *Client) FetchReply(ctx context.Context, utterance, lang string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	out, err := c.cb.Execute(func() (interface{}, error) {
		if err := c.rl.Wait(ctx); err != nil {
			return nil, err
		}
		return c.complete(ctx, utterance, lang)
	})
	observability.ObserveExternal(service, endpoint, err, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrRemoteUnavailable, err)
	}
	return out.(string), nil
}

func (c *Client) complete(ctx context.Context, utterance, lang string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemPrompt(lang)},
			{Role: openai.ChatMessageRoleUser, Content: utterance},
		},
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyChoices
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *Client) systemPrompt(lang string) string {
	name := c.langs.Profile(lang).Name
	return "You are Aadhira, the friendly concierge assistant of a hotel. " +
		"Answer guest questions about the hotel warmly and in at most three sentences. " +
		"Do not invent bookings or prices. Reply in " + name + "."
}
