package usecase

import (
	"encoding/json"
	"fmt"

	"objection-handler/internal/conversation"
)

const analyzerPromptTemplate = `You are a conversation analysis specialist. Analyze the following conversation input and provide structured insights:

Input: "%s"

Provide analysis in this JSON format:
{
  "sentiment": "positive|neutral|negative",
  "intent": "question|objection|interest|complaint|compliment",
  "emotionalTone": "calm|frustrated|excited|confused|skeptical",
  "keyTopics": ["topic1", "topic2", "topic3"],
  "urgencyLevel": "low|medium|high",
  "contextualCues": ["cue1", "cue2"],
  "recommendedResponseTone": "empathetic|professional|enthusiastic|reassuring"
}

Be precise and analytical in your assessment.`

const generatorPromptTemplate = `You are an expert conversation strategist. Generate a strategic response based on:

Conversation Input: "%s"
Strategy Context: "%s"
Analysis: %s

Create a response that:
1. Acknowledges the person's perspective with empathy
2. Addresses their specific concerns or interests
3. Provides value and builds trust
4. Guides toward a positive outcome
5. Matches the recommended tone: %s

Generate a natural, conversational response (2-4 sentences) that demonstrates understanding while strategically advancing the conversation. Be authentic and avoid sounding scripted.`

const assessorPromptTemplate = `Evaluate the quality of this conversation response:

Original Input: "%s"
Generated Response: "%s"
Context Analysis: %s

Assess the response on:
1. Relevance to the original input (0-10)
2. Emotional appropriateness (0-10)
3. Strategic value (0-10)
4. Natural flow (0-10)
5. Professional tone (0-10)

Provide assessment in JSON format:
{
  "overallScore": 0-10,
  "relevanceScore": 0-10,
  "emotionalScore": 0-10,
  "strategicScore": 0-10,
  "naturalScore": 0-10,
  "professionalScore": 0-10,
  "improvements": ["suggestion1", "suggestion2"],
  "strengths": ["strength1", "strength2"]
}`

type generateInput struct {
	Utterance string
	Strategy  string
	Analysis  conversation.Analysis
}

type assessInput struct {
	Utterance string
	Reply     string
	Analysis  conversation.Analysis
}

func buildAnalyzerPrompt(utterance string) string {
	return fmt.Sprintf(analyzerPromptTemplate, utterance)
}

func buildGeneratorPrompt(in generateInput) string {
	return fmt.Sprintf(generatorPromptTemplate,
		in.Utterance, in.Strategy, encodeAnalysis(in.Analysis), in.Analysis.RecommendedResponseTone)
}

func buildAssessorPrompt(in assessInput) string {
	return fmt.Sprintf(assessorPromptTemplate, in.Utterance, in.Reply, encodeAnalysis(in.Analysis))
}

func encodeAnalysis(a conversation.Analysis) string {
	b, err := json.Marshal(a)
	if err != nil {
		return "{}"
	}
	return string(b)
}
