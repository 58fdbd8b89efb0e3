package memory

import (
	"context"
	"fmt"

	"objection-handler/internal/conversation"
	"objection-handler/internal/conversation/repository"
)

func (r *implRepository) Record(ctx context.Context, opt repository.RecordOptions) (conversation.HistoryItem, error) {
	id, err := r.newID()
	if err != nil {
		r.l.Errorf(ctx, "%s: new session id: %v", r.dsn("Record"), err)
		return conversation.HistoryItem{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	item := conversation.HistoryItem{
		Timestamp: r.now().UTC(),
		Input:     opt.Input,
		Response:  opt.Response,
		Analysis:  cloneAnalysis(opt.Analysis),
		Quality:   cloneQuality(opt.Quality),
		SessionID: id.String(),
	}

	r.mu.Lock()
	if len(r.items) == r.capacity {
		copy(r.items, r.items[1:])
		r.items = r.items[:len(r.items)-1]
	}
	r.items = append(r.items, item)
	r.mu.Unlock()

	return cloneItem(item), nil
}

func (r *implRepository) Recent(ctx context.Context, limit int) ([]conversation.HistoryItem, error) {
	if limit <= 0 {
		limit = conversation.DefaultRecentWindow
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	start := len(r.items) - limit
	if start < 0 {
		start = 0
	}

	out := make([]conversation.HistoryItem, 0, len(r.items)-start)
	for _, item := range r.items[start:] {
		out = append(out, cloneItem(item))
	}
	return out, nil
}

func (r *implRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *implRepository) Capacity() int {
	return r.capacity
}

func cloneItem(item conversation.HistoryItem) conversation.HistoryItem {
	item.Analysis = cloneAnalysis(item.Analysis)
	item.Quality = cloneQuality(item.Quality)
	return item
}

func cloneAnalysis(a conversation.Analysis) conversation.Analysis {
	a.KeyTopics = cloneStrings(a.KeyTopics)
	a.ContextualCues = cloneStrings(a.ContextualCues)
	return a
}

func cloneQuality(q conversation.QualityAssessment) conversation.QualityAssessment {
	q.Improvements = cloneStrings(q.Improvements)
	q.Strengths = cloneStrings(q.Strengths)
	return q
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
