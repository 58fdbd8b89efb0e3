package httpserver

import (
	"context"

	convHTTP "objection-handler/internal/conversation/delivery/http"
	convRepo "objection-handler/internal/conversation/repository/memory"
	convUC "objection-handler/internal/conversation/usecase"
	"objection-handler/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupConversationDomain initializes the conversation domain and registers its routes.
//
//  1. Repository: bounded in-memory history
//  2. UseCase:    analyzer → generator → assessor → context manager
//  3. Handler:    JSON contract over gin
//  4. Routes:     /api/v1/conversation/* and the legacy function path
func (srv *HTTPServer) setupConversationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := convRepo.New(srv.pipeline.HistoryCapacity, srv.l)
	srv.history = repo

	// 2. UseCase
	uc := convUC.New(srv.llm, repo, srv.metrics, srv.l, convUC.Config{
		StageModels: srv.pipeline.StageModels,
	})

	// 3. HTTP Handler
	h := convHTTP.New(srv.l, uc, srv.pipeline.FallbackResponse, srv.pipeline.RecentWindow)

	// 4. Routes
	convHTTP.RegisterRoutes(api.Group("/conversation"), h, mw)
	convHTTP.RegisterLegacyRoute(srv.gin, h, mw)

	srv.l.Infof(ctx, "Conversation domain registered (history capacity %d)", repo.Capacity())
	return nil
}
