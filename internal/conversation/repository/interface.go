package repository

import (
	"context"

	"objection-handler/internal/conversation"
)

// Repository is the composed interface for the conversation data store.
type Repository interface {
	HistoryRepository
}

// HistoryRepository holds the bounded rolling window of completed exchanges.
type HistoryRepository interface {
	// Record stamps, ids, and appends an item, evicting the oldest at capacity.
	Record(ctx context.Context, opt RecordOptions) (conversation.HistoryItem, error)
	// Recent returns copies of the last limit items, oldest first. limit <= 0 means 3.
	Recent(ctx context.Context, limit int) ([]conversation.HistoryItem, error)
	Len() int
	Capacity() int
}
