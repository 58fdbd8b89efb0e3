package usecase

import (
	"time"

	"objection-handler/internal/conversation"
	"objection-handler/internal/conversation/repository"
	"objection-handler/internal/metrics"
	"objection-handler/internal/subagent"
	"objection-handler/pkg/log"
)

// Config holds pipeline tuning.
type Config struct {
	// StageModels maps stage key → provider name → model override.
	StageModels map[string]map[string]string
}

// implUseCase is the private implementation of conversation.UseCase.
type implUseCase struct {
	llm     subagent.Completer
	repo    repository.Repository
	metrics *metrics.Metrics
	l       log.Logger

	analyzer  subagent.Stage[string, conversation.Analysis]
	generator subagent.Stage[generateInput, string]
	assessor  subagent.Stage[assessInput, conversation.QualityAssessment]

	now func() time.Time
}

// New creates a new conversation UseCase implementation.
func New(llm subagent.Completer, repo repository.Repository, m *metrics.Metrics, l log.Logger, cfg Config) *implUseCase {
	uc := &implUseCase{
		llm:     llm,
		repo:    repo,
		metrics: m,
		l:       l,
		now:     time.Now,
	}
	uc.analyzer = uc.newAnalyzer(cfg.StageModels[conversation.StageKeyAnalyzer])
	uc.generator = uc.newGenerator(cfg.StageModels[conversation.StageKeyGenerator])
	uc.assessor = uc.newAssessor(cfg.StageModels[conversation.StageKeyAssessor])
	return uc
}
