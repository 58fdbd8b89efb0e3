package usecase

import (
	"context"
	"strings"
	"time"

	"objection-handler/internal/conversation"
	repo "objection-handler/internal/conversation/repository"
	"objection-handler/internal/metrics"
	"objection-handler/pkg/log"
)

// Process runs the four subagents strictly in sequence. Analyzer and
// generator failures end the run; an assessor failure degrades to the
// default assessment.
func (uc *implUseCase) Process(ctx context.Context, input conversation.ProcessInput) (conversation.ProcessOutput, error) {
	start := uc.now()

	if strings.TrimSpace(input.ConversationInput) == "" || strings.TrimSpace(input.ConversationStrategy) == "" {
		uc.metrics.RecordPipeline(metrics.StatusRejected, 0)
		return conversation.ProcessOutput{}, conversation.ErrInvalidRequest
	}

	var fallbacks []string

	// 1. Analyze
	analyzed, err := uc.analyzer.Run(ctx, uc.llm, input.ConversationInput)
	if err != nil {
		return conversation.ProcessOutput{}, uc.fail(ctx, start, uc.analyzer.Name, err)
	}
	observe(uc, analyzed)
	if analyzed.Fallback {
		fallbacks = append(fallbacks, analyzed.Stage)
	}
	uc.l.Debug(ctx, "Analysis completed",
		"sentiment", analyzed.Value.Sentiment,
		"intent", analyzed.Value.Intent,
		"tone", analyzed.Value.RecommendedResponseTone,
	)

	// 2. Generate
	generated, err := uc.generator.Run(ctx, uc.llm, generateInput{
		Utterance: input.ConversationInput,
		Strategy:  input.ConversationStrategy,
		Analysis:  analyzed.Value,
	})
	if err != nil {
		return conversation.ProcessOutput{}, uc.fail(ctx, start, uc.generator.Name, err)
	}
	observe(uc, generated)
	reply := strings.TrimSpace(generated.Value)

	// 3. Assess
	quality := conversation.DefaultQualityAssessment()
	assessed, err := uc.assessor.Run(ctx, uc.llm, assessInput{
		Utterance: input.ConversationInput,
		Reply:     reply,
		Analysis:  analyzed.Value,
	})
	switch {
	case err != nil:
		uc.l.Warn(ctx, "Quality assessment unavailable, using default",
			"stage", assessed.Stage,
			"error", err.Error(),
		)
		uc.metrics.RecordFallback(assessed.Stage)
		fallbacks = append(fallbacks, assessed.Stage)
	default:
		observe(uc, assessed)
		quality = assessed.Value
		if assessed.Fallback {
			fallbacks = append(fallbacks, assessed.Stage)
		}
	}

	// 4. Record
	item, err := uc.repo.Record(ctx, repo.RecordOptions{
		Input:    input.ConversationInput,
		Response: reply,
		Analysis: analyzed.Value,
		Quality:  quality,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Process Record: %v", err)
		uc.metrics.RecordPipeline(metrics.StatusFailed, uc.now().Sub(start))
		return conversation.ProcessOutput{}, err
	}
	uc.metrics.SetHistorySize(uc.repo.Len())

	elapsed := uc.now().Sub(start)
	uc.metrics.RecordPipeline(metrics.StatusCompleted, elapsed)

	ctx = context.WithValue(ctx, log.SessionIDKey, item.SessionID)
	uc.l.Info(ctx, "Conversation processed",
		"model", generated.Model,
		"provider", generated.Provider,
		"processing_ms", elapsed.Milliseconds(),
		"fallback_stages", fallbacks,
	)

	return conversation.ProcessOutput{
		Response: reply,
		Analysis: analyzed.Value,
		Quality:  quality,
		Metadata: conversation.Metadata{
			Model:          generated.Model,
			Timestamp:      uc.now().UTC(),
			ProcessingTime: elapsed,
			SessionID:      item.SessionID,
			SubagentsUsed:  conversation.SubagentsUsed(),
			FallbackStages: fallbacks,
		},
	}, nil
}

// fail wraps a model error for stage and records the failed run.
func (uc *implUseCase) fail(ctx context.Context, start time.Time, stage string, err error) error {
	uc.l.Errorf(ctx, "uc.Process %s: %v", stage, err)
	uc.metrics.RecordPipeline(metrics.StatusFailed, uc.now().Sub(start))
	return &conversation.UpstreamError{Stage: stage, Err: err}
}
