package subagent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"objection-handler/pkg/llmprovider"
)

type fakeCompleter struct {
	text string
	err  error

	gotPrompt string
	gotOpts   llmprovider.Options
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string, opts llmprovider.Options) (*llmprovider.Response, error) {
	f.gotPrompt = prompt
	f.gotOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.text, ProviderName: "fake", ModelName: "fake-1"}, nil
}

func TestStageRun(t *testing.T) {
	stage := Stage[string, int]{
		Name:    "Counter",
		Prompt:  func(in string) string { return "count: " + in },
		Options: llmprovider.Options{MaxTokens: 10, Temperature: 0.1},
		Decode: func(_ context.Context, text string) (int, bool) {
			if text == "" {
				return -1, true
			}
			return len(strings.Fields(text)), false
		},
	}

	fc := &fakeCompleter{text: "a b c"}
	res, err := stage.Run(context.Background(), fc, "xyz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fc.gotPrompt != "count: xyz" {
		t.Errorf("prompt = %q", fc.gotPrompt)
	}
	if fc.gotOpts.MaxTokens != 10 || fc.gotOpts.Temperature != 0.1 {
		t.Errorf("options = %+v", fc.gotOpts)
	}
	if res.Value != 3 || res.Fallback {
		t.Errorf("result = %+v", res)
	}
	if res.Stage != "Counter" {
		t.Errorf("stage = %q, want Counter", res.Stage)
	}
	if res.Model != "fake-1" || res.Provider != "fake" {
		t.Errorf("model/provider = %s/%s", res.Model, res.Provider)
	}
}

func TestStageRunCompleterError(t *testing.T) {
	upstream := errors.New("boom")
	decoded := false

	stage := Stage[string, string]{
		Name:   "Broken",
		Prompt: func(in string) string { return in },
		Decode: func(ctx context.Context, text string) (string, bool) {
			decoded = true
			return text, false
		},
	}

	res, err := stage.Run(context.Background(), &fakeCompleter{err: upstream}, "hi")
	if !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if res.Stage != "Broken" {
		t.Errorf("stage = %q, want Broken", res.Stage)
	}
	if decoded {
		t.Error("decode should not run after a completer error")
	}
}

func TestText(t *testing.T) {
	got, fallback := Text(context.Background(), "reply")
	if got != "reply" || fallback {
		t.Errorf("Text() = %q, %v", got, fallback)
	}
}
