package conversation

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Process runs analyze → generate → assess → record for one utterance.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
	// RecentContext returns the last limit history items, oldest first.
	RecentContext(ctx context.Context, limit int) ([]HistoryItem, error)
}
