package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"objection-handler/config"
	"objection-handler/internal/conversation/repository"
	"objection-handler/internal/metrics"
	"objection-handler/internal/subagent"
	"objection-handler/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Shared infrastructure
	cfg      *config.Config
	pipeline config.PipelineConfig
	llm      subagent.Completer
	metrics  *metrics.Metrics

	// Set once the conversation domain is registered
	history repository.Repository
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	AppConfig *config.Config
	LLM       subagent.Completer
	Metrics   *metrics.Metrics
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		cfg:             cfg.AppConfig,
		llm:             cfg.LLM,
		metrics:         cfg.Metrics,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.pipeline = srv.cfg.Pipeline

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.llm == nil {
		return errors.New("llm is required")
	}
	if srv.metrics == nil {
		return errors.New("metrics is required")
	}
	return nil
}
