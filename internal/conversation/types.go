package conversation

import "time"

// --- Stage outputs ---

// Analysis is the structured reading of an utterance.
type Analysis struct {
	Sentiment               string   `json:"sentiment"               validate:"required,oneof=positive neutral negative"`
	Intent                  string   `json:"intent"                  validate:"required,oneof=question objection interest complaint compliment"`
	EmotionalTone           string   `json:"emotionalTone"           validate:"required,oneof=calm frustrated excited confused skeptical"`
	KeyTopics               []string `json:"keyTopics"`
	UrgencyLevel            string   `json:"urgencyLevel"            validate:"required,oneof=low medium high"`
	ContextualCues          []string `json:"contextualCues"`
	RecommendedResponseTone string   `json:"recommendedResponseTone" validate:"required,oneof=empathetic professional enthusiastic reassuring"`
}

// QualityAssessment scores a generated reply. Scores are in [0,10].
type QualityAssessment struct {
	OverallScore      float64  `json:"overallScore"`
	RelevanceScore    float64  `json:"relevanceScore"`
	EmotionalScore    float64  `json:"emotionalScore"`
	StrategicScore    float64  `json:"strategicScore"`
	NaturalScore      float64  `json:"naturalScore"`
	ProfessionalScore float64  `json:"professionalScore"`
	Improvements      []string `json:"improvements"`
	Strengths         []string `json:"strengths"`
}

// HistoryItem is one completed exchange held by the context manager.
type HistoryItem struct {
	Timestamp time.Time
	Input     string
	Response  string
	Analysis  Analysis
	Quality   QualityAssessment
	SessionID string
}

// --- UseCase Inputs ---

type ProcessInput struct {
	ConversationInput    string
	ConversationStrategy string
}

// --- UseCase Outputs ---

type ProcessOutput struct {
	Response string
	Analysis Analysis
	Quality  QualityAssessment
	Metadata Metadata
}

// Metadata describes how a ProcessOutput was produced.
type Metadata struct {
	Model          string
	Timestamp      time.Time
	ProcessingTime time.Duration
	SessionID      string
	SubagentsUsed  []string
	// FallbackStages lists stages whose output is the documented default.
	FallbackStages []string
}
