package repository

import "objection-handler/internal/conversation"

// RecordOptions holds the parts of a finished exchange.
type RecordOptions struct {
	Input    string
	Response string
	Analysis conversation.Analysis
	Quality  conversation.QualityAssessment
}
