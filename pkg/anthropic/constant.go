package anthropic

import "time"

const (
	// DefaultModel is the default Claude model
	DefaultModel = "claude-3-5-sonnet-20241022"

	// DefaultBaseURL is the default Anthropic API endpoint
	DefaultBaseURL = "https://api.anthropic.com/v1"

	// DefaultAPIVersion is sent as the anthropic-version header
	DefaultAPIVersion = "2023-06-01"

	// DefaultMaxTokens is used when a request does not set MaxTokens.
	// The Messages API rejects requests without max_tokens.
	DefaultMaxTokens = 1024

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
