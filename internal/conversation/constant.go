package conversation

// Subagent names, in the order they run.
const (
	StageAnalyzer  = "ConversationAnalyzer"
	StageGenerator = "ResponseGenerator"
	StageAssessor  = "QualityAssessor"
	StageContext   = "ContextManager"
)

// Config keys for per-stage model overrides.
const (
	StageKeyAnalyzer  = "analyzer"
	StageKeyGenerator = "generator"
	StageKeyAssessor  = "assessor"
)

const (
	DefaultHistoryCapacity = 10
	DefaultRecentWindow    = 3
	DefaultFallbackReply   = "I understand your point. Let me think about this and provide you with a thoughtful response that addresses your concerns."
)

// DefaultAnalysis is used when the analyzer output cannot be decoded.
func DefaultAnalysis() Analysis {
	return Analysis{
		Sentiment:               "neutral",
		Intent:                  "question",
		EmotionalTone:           "calm",
		KeyTopics:               []string{},
		UrgencyLevel:            "medium",
		ContextualCues:          []string{},
		RecommendedResponseTone: "professional",
	}
}

// DefaultQualityAssessment is used when the assessor output cannot be
// decoded or the assessor call fails.
func DefaultQualityAssessment() QualityAssessment {
	return QualityAssessment{
		OverallScore:      7,
		RelevanceScore:    7,
		EmotionalScore:    7,
		StrategicScore:    7,
		NaturalScore:      7,
		ProfessionalScore: 7,
		Improvements:      []string{"Consider more specific examples"},
		Strengths:         []string{"Professional tone", "Clear communication"},
	}
}

// SubagentsUsed is the fixed metadata list for a completed run.
func SubagentsUsed() []string {
	return []string{StageAnalyzer, StageGenerator, StageAssessor, StageContext}
}
