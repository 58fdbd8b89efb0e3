package http

import (
	"objection-handler/internal/conversation"
	"objection-handler/pkg/log"
)

type handler struct {
	l             log.Logger
	uc            conversation.UseCase
	fallbackReply string
	recentWindow  int
}

// New creates a new HTTP handler for the conversation domain.
func New(l log.Logger, uc conversation.UseCase, fallbackReply string, recentWindow int) *handler {
	if fallbackReply == "" {
		fallbackReply = conversation.DefaultFallbackReply
	}
	if recentWindow <= 0 {
		recentWindow = conversation.DefaultRecentWindow
	}
	return &handler{
		l:             l,
		uc:            uc,
		fallbackReply: fallbackReply,
		recentWindow:  recentWindow,
	}
}
