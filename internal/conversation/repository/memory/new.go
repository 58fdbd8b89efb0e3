package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"objection-handler/internal/conversation"
	"objection-handler/internal/conversation/repository"
	"objection-handler/pkg/log"
)

type implRepository struct {
	l log.Logger

	mu       sync.Mutex
	items    []conversation.HistoryItem
	capacity int

	now   func() time.Time
	newID func() (uuid.UUID, error)
}

// New creates an in-memory Repository that keeps at most capacity items.
// capacity <= 0 selects conversation.DefaultHistoryCapacity.
func New(capacity int, l log.Logger) repository.Repository {
	if capacity <= 0 {
		capacity = conversation.DefaultHistoryCapacity
	}
	return &implRepository{
		l:        l,
		items:    make([]conversation.HistoryItem, 0, capacity),
		capacity: capacity,
		now:      time.Now,
		newID:    uuid.NewV7,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/memory.%s", method)
}
