package usecase

import (
	"context"

	"objection-handler/internal/conversation"
	"objection-handler/internal/subagent"
	"objection-handler/pkg/llmprovider"
	"objection-handler/pkg/structured"
)

// Sampling per stage.
const (
	analyzerTemperature  = 0.1
	analyzerMaxTokens    = 300
	generatorTemperature = 0.7
	generatorMaxTokens   = 200
	assessorTemperature  = 0.1
	assessorMaxTokens    = 250
)

func (uc *implUseCase) newAnalyzer(models map[string]string) subagent.Stage[string, conversation.Analysis] {
	return subagent.Stage[string, conversation.Analysis]{
		Name:   conversation.StageAnalyzer,
		Prompt: buildAnalyzerPrompt,
		Options: llmprovider.Options{
			Models:      models,
			MaxTokens:   analyzerMaxTokens,
			Temperature: analyzerTemperature,
		},
		Decode: func(ctx context.Context, text string) (conversation.Analysis, bool) {
			return structured.ParseJSON(ctx, uc.l, conversation.StageAnalyzer, text, conversation.DefaultAnalysis)
		},
	}
}

func (uc *implUseCase) newGenerator(models map[string]string) subagent.Stage[generateInput, string] {
	return subagent.Stage[generateInput, string]{
		Name:   conversation.StageGenerator,
		Prompt: buildGeneratorPrompt,
		Options: llmprovider.Options{
			Models:      models,
			MaxTokens:   generatorMaxTokens,
			Temperature: generatorTemperature,
		},
		Decode: subagent.Text,
	}
}

func (uc *implUseCase) newAssessor(models map[string]string) subagent.Stage[assessInput, conversation.QualityAssessment] {
	return subagent.Stage[assessInput, conversation.QualityAssessment]{
		Name:   conversation.StageAssessor,
		Prompt: buildAssessorPrompt,
		Options: llmprovider.Options{
			Models:      models,
			MaxTokens:   assessorMaxTokens,
			Temperature: assessorTemperature,
		},
		Decode: func(ctx context.Context, text string) (conversation.QualityAssessment, bool) {
			p, fallback := structured.ParseJSON(ctx, uc.l, conversation.StageAssessor, text, func() assessmentPayload {
				return assessmentPayload{}
			})
			if fallback {
				return conversation.DefaultQualityAssessment(), true
			}
			return p.toQuality(), false
		},
	}
}

// assessmentPayload is the assessor's wire shape. Every score must be
// present; a missing key would otherwise read as a legitimate 0.
type assessmentPayload struct {
	OverallScore      *float64 `json:"overallScore"      validate:"required,min=0,max=10"`
	RelevanceScore    *float64 `json:"relevanceScore"    validate:"required,min=0,max=10"`
	EmotionalScore    *float64 `json:"emotionalScore"    validate:"required,min=0,max=10"`
	StrategicScore    *float64 `json:"strategicScore"    validate:"required,min=0,max=10"`
	NaturalScore      *float64 `json:"naturalScore"      validate:"required,min=0,max=10"`
	ProfessionalScore *float64 `json:"professionalScore" validate:"required,min=0,max=10"`
	Improvements      []string `json:"improvements"`
	Strengths         []string `json:"strengths"`
}

func (p assessmentPayload) toQuality() conversation.QualityAssessment {
	return conversation.QualityAssessment{
		OverallScore:      *p.OverallScore,
		RelevanceScore:    *p.RelevanceScore,
		EmotionalScore:    *p.EmotionalScore,
		StrategicScore:    *p.StrategicScore,
		NaturalScore:      *p.NaturalScore,
		ProfessionalScore: *p.ProfessionalScore,
		Improvements:      p.Improvements,
		Strengths:         p.Strengths,
	}
}

// observe records per-stage metrics for a finished run.
func observe[O any](uc *implUseCase, res subagent.Result[O]) {
	uc.metrics.RecordStage(res.Stage, res.Duration)
	if res.Usage != nil {
		uc.metrics.RecordTokens(res.Stage, res.Usage.InputTokens, res.Usage.OutputTokens)
	}
	if res.Fallback {
		uc.metrics.RecordFallback(res.Stage)
	}
}
