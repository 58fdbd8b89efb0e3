package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"objection-handler/internal/conversation"
	"objection-handler/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockUseCase struct {
	processOut conversation.ProcessOutput
	processErr error
	gotInput   conversation.ProcessInput
	calls      int

	recent    []conversation.HistoryItem
	recentErr error
	gotLimit  int
}

func (m *mockUseCase) Process(ctx context.Context, input conversation.ProcessInput) (conversation.ProcessOutput, error) {
	m.calls++
	m.gotInput = input
	return m.processOut, m.processErr
}

func (m *mockUseCase) RecentContext(ctx context.Context, limit int) ([]conversation.HistoryItem, error) {
	m.gotLimit = limit
	return m.recent, m.recentErr
}

func newTestHandler(uc *mockUseCase) *handler {
	return New(log.NewNop(), uc, "", 0)
}

func doProcess(h *handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/conversation/process", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Process(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return out
}

func TestProcess_Success(t *testing.T) {
	ts := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	uc := &mockUseCase{processOut: conversation.ProcessOutput{
		Response: "I hear you on price.",
		Analysis: conversation.DefaultAnalysis(),
		Quality:  conversation.DefaultQualityAssessment(),
		Metadata: conversation.Metadata{
			Model:          "claude-3-5-sonnet-20241022",
			Timestamp:      ts,
			ProcessingTime: 1234 * time.Millisecond,
			SessionID:      "0190c3d2-7b1e-7c3a-9f00-000000000001",
			SubagentsUsed:  conversation.SubagentsUsed(),
		},
	}}
	h := newTestHandler(uc)

	w := doProcess(h, `{"conversationInput":"This seems too expensive for what we get","conversationStrategy":"value-focused sales"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	if uc.gotInput.ConversationInput != "This seems too expensive for what we get" || uc.gotInput.ConversationStrategy != "value-focused sales" {
		t.Errorf("use case got %+v", uc.gotInput)
	}

	body := decode(t, w)
	if body["success"] != true || body["response"] != "I hear you on price." {
		t.Errorf("unexpected body: %v", body)
	}

	analysis := body["analysis"].(map[string]any)
	if analysis["recommendedResponseTone"] != "professional" {
		t.Errorf("analysis = %v", analysis)
	}
	if topics, ok := analysis["keyTopics"].([]any); !ok || len(topics) != 0 {
		t.Errorf("keyTopics = %v, want []", analysis["keyTopics"])
	}

	quality := body["quality"].(map[string]any)
	if quality["overallScore"] != float64(7) {
		t.Errorf("quality = %v", quality)
	}

	md := body["metadata"].(map[string]any)
	if md["timestamp"] != "2024-05-01T15:30:00.000Z" {
		t.Errorf("timestamp = %v", md["timestamp"])
	}
	if md["processingTime"] != float64(1234) {
		t.Errorf("processingTime = %v", md["processingTime"])
	}
	if md["sessionId"] != "0190c3d2-7b1e-7c3a-9f00-000000000001" || md["model"] != "claude-3-5-sonnet-20241022" {
		t.Errorf("metadata = %v", md)
	}
	if used := md["subagentsUsed"].([]any); len(used) != 4 || used[0] != "ConversationAnalyzer" || used[3] != "ContextManager" {
		t.Errorf("subagentsUsed = %v", used)
	}
	if stages, ok := md["fallbackStages"].([]any); !ok || len(stages) != 0 {
		t.Errorf("fallbackStages = %v, want []", md["fallbackStages"])
	}
}

func TestProcess_BadRequest(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		ucErr     error
		wantCalls int
	}{
		{"malformed JSON", `{"conversationInput":`, nil, 0},
		{"not an object", `"hello"`, nil, 0},
		{"missing strategy", `{"conversationInput":"too expensive"}`, nil, 0},
		{"missing input", `{"conversationStrategy":"value"}`, nil, 0},
		{"whitespace input rejected by use case", `{"conversationInput":"   ","conversationStrategy":"value"}`, conversation.ErrInvalidRequest, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{processErr: tt.ucErr}
			w := doProcess(newTestHandler(uc), tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			body := decode(t, w)
			if body["error"] != "Missing required parameters: conversationInput and conversationStrategy" {
				t.Errorf("error = %v", body["error"])
			}
			if len(body) != 1 {
				t.Errorf("400 body should only carry error, got %v", body)
			}
			if uc.calls != tt.wantCalls {
				t.Errorf("use case calls = %d, want %d", uc.calls, tt.wantCalls)
			}
		})
	}
}

func TestProcess_Failure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"upstream", &conversation.UpstreamError{Stage: conversation.StageGenerator, Err: errors.New("status 529: overloaded")}},
		{"unexpected", errors.New("history store unavailable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doProcess(newTestHandler(&mockUseCase{processErr: tt.err}),
				`{"conversationInput":"too expensive","conversationStrategy":"value"}`)

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", w.Code)
			}
			body := decode(t, w)
			if body["success"] != false || body["error"] != "Failed to process conversation" {
				t.Errorf("unexpected body: %v", body)
			}
			if body["details"] != tt.err.Error() {
				t.Errorf("details = %v, want %q", body["details"], tt.err.Error())
			}
			if body["fallbackResponse"] != conversation.DefaultFallbackReply {
				t.Errorf("fallbackResponse = %v", body["fallbackResponse"])
			}
		})
	}
}

func TestProcess_ConfiguredFallbackReply(t *testing.T) {
	h := New(log.NewNop(), &mockUseCase{processErr: conversation.ErrUpstream}, "One moment, please.", 0)
	w := doProcess(h, `{"conversationInput":"a","conversationStrategy":"b"}`)

	if got := decode(t, w)["fallbackResponse"]; got != "One moment, please." {
		t.Errorf("fallbackResponse = %v", got)
	}
}

func TestHistory(t *testing.T) {
	ts := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantLimit int
	}{
		{"default window", "", http.StatusOK, 3},
		{"explicit limit", "?limit=5", http.StatusOK, 5},
		{"negative limit", "?limit=-1", http.StatusBadRequest, 0},
		{"non-numeric limit", "?limit=abc", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{recent: []conversation.HistoryItem{{
				Timestamp: ts,
				Input:     "too expensive",
				Response:  "I hear you.",
				Analysis:  conversation.DefaultAnalysis(),
				Quality:   conversation.DefaultQualityAssessment(),
				SessionID: "s-1",
			}}}
			h := newTestHandler(uc)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/conversation/history"+tt.query, nil)
			h.History(c)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d, body = %s", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}
			if uc.gotLimit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", uc.gotLimit, tt.wantLimit)
			}

			body := decode(t, w)
			data := body["data"].(map[string]any)
			items := data["items"].([]any)
			if len(items) != 1 {
				t.Fatalf("items = %v", items)
			}
			item := items[0].(map[string]any)
			if item["sessionId"] != "s-1" || item["timestamp"] != "2024-05-01T15:30:00.000Z" {
				t.Errorf("item = %v", item)
			}
		})
	}
}

func TestHistory_UseCaseError(t *testing.T) {
	h := newTestHandler(&mockUseCase{recentErr: errors.New("boom")})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/conversation/history", nil)
	h.History(c)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
