package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"objection-handler/internal/conversation"
	"objection-handler/internal/conversation/repository"
	"objection-handler/pkg/log"
)

func newTestRepo(capacity int) *implRepository {
	return New(capacity, log.NewNop()).(*implRepository)
}

func record(t *testing.T, r repository.Repository, input string) conversation.HistoryItem {
	t.Helper()
	item, err := r.Record(context.Background(), repository.RecordOptions{
		Input:    input,
		Response: "reply to " + input,
		Analysis: conversation.DefaultAnalysis(),
		Quality:  conversation.DefaultQualityAssessment(),
	})
	if err != nil {
		t.Fatalf("Record(%q): %v", input, err)
	}
	return item
}

func TestRecord(t *testing.T) {
	r := newTestRepo(10)
	fixed := time.Date(2024, 5, 1, 22, 30, 0, 0, time.FixedZone("ICT", 7*3600))
	r.now = func() time.Time { return fixed }

	item := record(t, r, "too expensive")

	if !item.Timestamp.Equal(fixed) || item.Timestamp.Location() != time.UTC {
		t.Errorf("Timestamp = %v, want %v in UTC", item.Timestamp, fixed)
	}
	if item.Input != "too expensive" || item.Response != "reply to too expensive" {
		t.Errorf("unexpected item: %+v", item)
	}

	id, err := uuid.Parse(item.SessionID)
	if err != nil {
		t.Fatalf("SessionID %q is not a UUID: %v", item.SessionID, err)
	}
	if id.Version() != 7 {
		t.Errorf("SessionID version = %d, want 7", id.Version())
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRecordEvictsOldest(t *testing.T) {
	r := newTestRepo(10)

	for i := 1; i <= 11; i++ {
		record(t, r, fmt.Sprintf("input-%d", i))
	}

	if r.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", r.Len())
	}

	items, _ := r.Recent(context.Background(), 10)
	if len(items) != 10 {
		t.Fatalf("Recent(10) returned %d items", len(items))
	}
	for i, item := range items {
		want := fmt.Sprintf("input-%d", i+2)
		if item.Input != want {
			t.Errorf("items[%d].Input = %q, want %q", i, item.Input, want)
		}
	}
}

func TestRecent(t *testing.T) {
	r := newTestRepo(10)
	for i := 1; i <= 5; i++ {
		record(t, r, fmt.Sprintf("input-%d", i))
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"last three", 3, []string{"input-3", "input-4", "input-5"}},
		{"zero means three", 0, []string{"input-3", "input-4", "input-5"}},
		{"negative means three", -2, []string{"input-3", "input-4", "input-5"}},
		{"more than held", 20, []string{"input-1", "input-2", "input-3", "input-4", "input-5"}},
		{"one", 1, []string{"input-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := r.Recent(context.Background(), tt.limit)
			if err != nil {
				t.Fatalf("Recent: %v", err)
			}
			if len(items) != len(tt.want) {
				t.Fatalf("got %d items, want %d", len(items), len(tt.want))
			}
			for i, item := range items {
				if item.Input != tt.want[i] {
					t.Errorf("items[%d].Input = %q, want %q", i, item.Input, tt.want[i])
				}
			}
		})
	}

	if r.Len() != 5 {
		t.Errorf("Recent changed Len() to %d", r.Len())
	}
}

func TestRecentReturnsCopies(t *testing.T) {
	r := newTestRepo(10)
	record(t, r, "input-1")

	items, _ := r.Recent(context.Background(), 1)
	items[0].Input = "mutated"
	items[0].Quality.Strengths[0] = "mutated"

	again, _ := r.Recent(context.Background(), 1)
	if again[0].Input != "input-1" || again[0].Quality.Strengths[0] != "Professional tone" {
		t.Errorf("stored item was mutated through Recent: %+v", again[0])
	}
}

func TestRecordIDError(t *testing.T) {
	r := newTestRepo(10)
	r.newID = func() (uuid.UUID, error) { return uuid.Nil, errors.New("entropy exhausted") }

	_, err := r.Record(context.Background(), repository.RecordOptions{Input: "x"})
	if !errors.Is(err, repository.ErrFailedToInsert) {
		t.Fatalf("expected ErrFailedToInsert, got %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("failed Record changed Len() to %d", r.Len())
	}
}

func TestRecordConcurrent(t *testing.T) {
	r := newTestRepo(10)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = r.Record(context.Background(), repository.RecordOptions{Input: fmt.Sprintf("input-%d", i)})
		}(i)
	}
	wg.Wait()

	if r.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", r.Len())
	}

	items, _ := r.Recent(context.Background(), 10)
	seen := map[string]bool{}
	for _, item := range items {
		if seen[item.SessionID] {
			t.Errorf("duplicate session id %s", item.SessionID)
		}
		seen[item.SessionID] = true
	}
}

func TestNewDefaultCapacity(t *testing.T) {
	if got := New(0, log.NewNop()).Capacity(); got != conversation.DefaultHistoryCapacity {
		t.Errorf("Capacity() = %d, want %d", got, conversation.DefaultHistoryCapacity)
	}
}
