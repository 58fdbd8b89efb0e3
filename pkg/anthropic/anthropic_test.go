package anthropic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"objection-handler/pkg/anthropic"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := anthropic.New(anthropic.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestClient_GenerateContent(t *testing.T) {
	var gotBody map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("x-api-key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
			return
		}
		if r.Header.Get("anthropic-version") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		gotBody = map[string]interface{}{}
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [
				{"type": "text", "text": "Hello "},
				{"type": "text", "text": "there."}
			],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 12, "output_tokens": 3}
		}`))
	}))
	defer ts.Close()

	client, err := anthropic.New(anthropic.Config{
		APIKey:  "test-api-key",
		Model:   "claude-default",
		BaseURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("success", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &anthropic.Request{
			Messages:    []anthropic.Message{{Role: "user", Text: "Hi"}},
			Temperature: 0.1,
			MaxTokens:   300,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if resp.Text != "Hello there." {
			t.Errorf("expected concatenated text, got %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
		}
		if gotBody["model"] != "claude-default" {
			t.Errorf("expected default model in body, got %v", gotBody["model"])
		}
		if gotBody["max_tokens"].(float64) != 300 {
			t.Errorf("expected max_tokens 300, got %v", gotBody["max_tokens"])
		}
	})

	t.Run("model override and default max tokens", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &anthropic.Request{
			Model:    "claude-override",
			Messages: []anthropic.Message{{Role: "user", Text: "Hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotBody["model"] != "claude-override" {
			t.Errorf("expected override model, got %v", gotBody["model"])
		}
		if gotBody["max_tokens"].(float64) != anthropic.DefaultMaxTokens {
			t.Errorf("expected default max_tokens, got %v", gotBody["max_tokens"])
		}
		if _, ok := gotBody["temperature"]; ok {
			t.Errorf("temperature should be omitted when zero")
		}
	})

	t.Run("api error", func(t *testing.T) {
		bad, _ := anthropic.New(anthropic.Config{APIKey: "wrong", BaseURL: ts.URL})
		_, err := bad.GenerateContent(context.Background(), &anthropic.Request{
			Messages: []anthropic.Message{{Role: "user", Text: "Hi"}},
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "invalid x-api-key") {
			t.Errorf("expected API message in error, got %v", err)
		}
	})
}
