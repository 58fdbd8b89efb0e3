package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"objection-handler/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
	tokenizer TokenCounter
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	// CallTimeout bounds every single provider attempt
	CallTimeout time.Duration
	// MaxTotalTimeout bounds the entire retry/fallback chain
	MaxTotalTimeout time.Duration
}

// Options are the per-call sampling parameters.
type Options struct {
	// Models maps provider name to a model override for this call.
	// Providers without an entry use their configured model.
	Models      map[string]string
	MaxTokens   int
	Temperature float64
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// SetTokenizer enables local usage estimates for providers that report none.
func (m *Manager) SetTokenizer(tc TokenCounter) {
	m.tokenizer = tc
}

// Complete sends prompt as a single user turn and returns the trimmed
// completion. An empty completion counts as a failed attempt.
func (m *Manager) Complete(ctx context.Context, prompt string, opts Options) (*Response, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrInvalidRequest
	}

	resp, err := m.generate(ctx, &Request{
		Messages:    UserPrompt(prompt),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}, opts.Models)
	if err != nil {
		return nil, err
	}

	resp.Text = strings.TrimSpace(resp.Text)
	return resp, nil
}

// generate iterates through providers in priority order with fallback logic
func (m *Manager) generate(ctx context.Context, req *Request, models map[string]string) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	// Create context with global timeout for entire fallback chain
	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	// Iterate through providers in priority order
	for _, provider := range m.providers {
		// Check if context is already cancelled (timeout exceeded)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: global timeout exceeded: %w", ErrAllProvidersFailed, ctx.Err())
		default:
		}

		providerReq := *req
		if model, ok := models[provider.Name()]; ok && model != "" {
			providerReq.Model = model
		}

		resp, err := m.generateWithRetry(ctx, provider, &providerReq)
		if err == nil {
			if m.tokenizer != nil && (resp.Usage == nil || resp.Usage.TotalTokens == 0) {
				resp.Usage = estimateUsage(m.tokenizer, &providerReq, resp.Text)
			}
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		// On failure, log error and try next provider
		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		// If fallback is disabled, stop after first provider
		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry implements retry mechanism with linear backoff
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := m.attempt(ctx, provider, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
	}

	return nil, lastErr
}

// attempt performs one provider call under CallTimeout.
func (m *Manager) attempt(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	if m.config.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.CallTimeout)
		defer cancel()
	}

	resp, err := provider.GenerateContent(ctx, req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrProviderTimeout, err)
		}
		return nil, err
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return nil, ErrEmptyCompletion
	}
	return resp, nil
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	estimated := false
	if resp.Usage != nil {
		in, out, estimated = resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.Estimated
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", resp.ModelName,
		"input_tokens", in,
		"output_tokens", out,
		"usage_estimated", estimated,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
