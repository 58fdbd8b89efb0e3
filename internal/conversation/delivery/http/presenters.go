package http

import (
	"objection-handler/internal/conversation"
	"objection-handler/pkg/response"
)

// --- Request DTOs ---

type processReq struct {
	ConversationInput    string `json:"conversationInput"`
	ConversationStrategy string `json:"conversationStrategy"`
}

func (r processReq) validate() error {
	if r.ConversationInput == "" || r.ConversationStrategy == "" {
		return conversation.ErrInvalidRequest
	}
	return nil
}

func (r processReq) toInput() conversation.ProcessInput {
	return conversation.ProcessInput{
		ConversationInput:    r.ConversationInput,
		ConversationStrategy: r.ConversationStrategy,
	}
}

// ---

type historyReq struct {
	Limit int `form:"limit"`
}

func (r historyReq) validate() error {
	if r.Limit < 0 {
		return errInvalidLimit
	}
	return nil
}

// --- Response DTOs ---

type analysisResp struct {
	Sentiment               string   `json:"sentiment"`
	Intent                  string   `json:"intent"`
	EmotionalTone           string   `json:"emotionalTone"`
	KeyTopics               []string `json:"keyTopics"`
	UrgencyLevel            string   `json:"urgencyLevel"`
	ContextualCues          []string `json:"contextualCues"`
	RecommendedResponseTone string   `json:"recommendedResponseTone"`
}

func newAnalysisResp(a conversation.Analysis) analysisResp {
	return analysisResp{
		Sentiment:               a.Sentiment,
		Intent:                  a.Intent,
		EmotionalTone:           a.EmotionalTone,
		KeyTopics:               nonNil(a.KeyTopics),
		UrgencyLevel:            a.UrgencyLevel,
		ContextualCues:          nonNil(a.ContextualCues),
		RecommendedResponseTone: a.RecommendedResponseTone,
	}
}

type qualityResp struct {
	OverallScore      float64  `json:"overallScore"`
	RelevanceScore    float64  `json:"relevanceScore"`
	EmotionalScore    float64  `json:"emotionalScore"`
	StrategicScore    float64  `json:"strategicScore"`
	NaturalScore      float64  `json:"naturalScore"`
	ProfessionalScore float64  `json:"professionalScore"`
	Improvements      []string `json:"improvements"`
	Strengths         []string `json:"strengths"`
}

func newQualityResp(q conversation.QualityAssessment) qualityResp {
	return qualityResp{
		OverallScore:      q.OverallScore,
		RelevanceScore:    q.RelevanceScore,
		EmotionalScore:    q.EmotionalScore,
		StrategicScore:    q.StrategicScore,
		NaturalScore:      q.NaturalScore,
		ProfessionalScore: q.ProfessionalScore,
		Improvements:      nonNil(q.Improvements),
		Strengths:         nonNil(q.Strengths),
	}
}

type metadataResp struct {
	Model          string             `json:"model"`
	Timestamp      response.Timestamp `json:"timestamp"`
	ProcessingTime int64              `json:"processingTime"`
	SessionID      string             `json:"sessionId"`
	SubagentsUsed  []string           `json:"subagentsUsed"`
	FallbackStages []string           `json:"fallbackStages"`
}

type processResp struct {
	Success  bool         `json:"success"`
	Response string       `json:"response"`
	Analysis analysisResp `json:"analysis"`
	Quality  qualityResp  `json:"quality"`
	Metadata metadataResp `json:"metadata"`
}

func (h *handler) newProcessResp(out conversation.ProcessOutput) processResp {
	return processResp{
		Success:  true,
		Response: out.Response,
		Analysis: newAnalysisResp(out.Analysis),
		Quality:  newQualityResp(out.Quality),
		Metadata: metadataResp{
			Model:          out.Metadata.Model,
			Timestamp:      response.Timestamp(out.Metadata.Timestamp),
			ProcessingTime: out.Metadata.ProcessingTime.Milliseconds(),
			SessionID:      out.Metadata.SessionID,
			SubagentsUsed:  nonNil(out.Metadata.SubagentsUsed),
			FallbackStages: nonNil(out.Metadata.FallbackStages),
		},
	}
}

type errorResp struct {
	Error string `json:"error"`
}

type failureResp struct {
	Success          bool   `json:"success"`
	Error            string `json:"error"`
	Details          string `json:"details"`
	FallbackResponse string `json:"fallbackResponse"`
}

func (h *handler) newFailureResp(msg string, err error) failureResp {
	return failureResp{
		Success:          false,
		Error:            msg,
		Details:          err.Error(),
		FallbackResponse: h.fallbackReply,
	}
}

type historyItemResp struct {
	Timestamp response.Timestamp `json:"timestamp"`
	Input     string             `json:"input"`
	Response  string             `json:"response"`
	Analysis  analysisResp       `json:"analysis"`
	Quality   qualityResp        `json:"quality"`
	SessionID string             `json:"sessionId"`
}

type historyResp struct {
	Items []historyItemResp `json:"items"`
	Limit int               `json:"limit"`
}

func (h *handler) newHistoryResp(items []conversation.HistoryItem, limit int) historyResp {
	out := make([]historyItemResp, len(items))
	for i, item := range items {
		out[i] = historyItemResp{
			Timestamp: response.Timestamp(item.Timestamp),
			Input:     item.Input,
			Response:  item.Response,
			Analysis:  newAnalysisResp(item.Analysis),
			Quality:   newQualityResp(item.Quality),
			SessionID: item.SessionID,
		}
	}
	return historyResp{Items: out, Limit: limit}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
