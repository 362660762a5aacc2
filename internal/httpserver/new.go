package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rev-chat-relay/internal/chat"
	"rev-chat-relay/internal/middleware"
	"rev-chat-relay/internal/session"
	"rev-chat-relay/pkg/log"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	staticDir   string
	mw          middleware.Middleware

	// Chat domain
	chatUC         chat.UseCase
	socketSessions *session.Registry
	httpSessions   *session.Registry
	ws             wsHandler
}

type wsHandler interface {
	Serve(c *gin.Context)
	Shutdown()
	Connections() int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	StaticDir      string
	AllowedOrigins []string

	// Chat domain. Each transport resolves ids only in its own registry.
	ChatUseCase    chat.UseCase
	SocketSessions *session.Registry
	HTTPSessions   *session.Registry
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		staticDir:   cfg.StaticDir,
		chatUC:         cfg.ChatUseCase,
		socketSessions: cfg.SocketSessions,
		httpSessions:   cfg.HTTPSessions,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, cfg.AllowedOrigins)
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if srv.socketSessions == nil || srv.httpSessions == nil {
		return errors.New("socket and http session registries are required")
	}
	if srv.socketSessions == srv.httpSessions {
		return errors.New("socket and http session registries must be distinct")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv *HTTPServer) addr() string {
	return fmt.Sprintf(":%d", srv.port)
}
