// Package subagent runs single-purpose language-model stages.
package subagent

import (
	"context"
	"time"

	"objection-handler/pkg/llmprovider"
)

// Completer is the model capability a stage needs.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts llmprovider.Options) (*llmprovider.Response, error)
}

// Stage turns an input into a prompt, sends it, and decodes the completion.
// Decode reports whether it substituted a default for the model output.
type Stage[I, O any] struct {
	Name    string
	Prompt  func(in I) string
	Options llmprovider.Options
	Decode  func(ctx context.Context, text string) (O, bool)
}

// Result is the decoded output of one stage run.
type Result[O any] struct {
	Stage    string
	Value    O
	Fallback bool
	Provider string
	Model    string
	Usage    *llmprovider.Usage
	Duration time.Duration
}

// Run executes the stage once. Completer errors are returned unchanged;
// decoding never fails.
func (s Stage[I, O]) Run(ctx context.Context, c Completer, in I) (Result[O], error) {
	start := time.Now()

	resp, err := c.Complete(ctx, s.Prompt(in), s.Options)
	if err != nil {
		return Result[O]{Stage: s.Name, Duration: time.Since(start)}, err
	}

	value, fallback := s.Decode(ctx, resp.Text)
	return Result[O]{
		Stage:    s.Name,
		Value:    value,
		Fallback: fallback,
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
		Usage:    resp.Usage,
		Duration: time.Since(start),
	}, nil
}

// Text is a Decode for stages whose output is the completion itself.
func Text(_ context.Context, text string) (string, bool) {
	return text, false
}
