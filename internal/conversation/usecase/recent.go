package usecase

import (
	"context"

	"objection-handler/internal/conversation"
)

// RecentContext returns the last limit exchanges, oldest first.
func (uc *implUseCase) RecentContext(ctx context.Context, limit int) ([]conversation.HistoryItem, error) {
	items, err := uc.repo.Recent(ctx, limit)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RecentContext Recent: %v", err)
		return nil, err
	}
	return items, nil
}
