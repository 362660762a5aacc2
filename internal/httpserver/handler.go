package httpserver

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rev-chat-relay/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	srv.registerStatic()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.mode != gin.TestMode {
		srv.gin.Use(gin.Logger())
	}
	srv.gin.Use(srv.mw.Cors())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	api := srv.gin.Group("/api/v1")
	return srv.setupChatDomain(context.Background(), api)
}

// registerStatic serves the browser client for any unmatched path when the
// static directory exists.
func (srv *HTTPServer) registerStatic() {
	ctx := context.Background()
	if srv.staticDir == "" {
		return
	}
	info, err := os.Stat(srv.staticDir)
	if err != nil || !info.IsDir() {
		srv.l.Infof(ctx, "Static directory %q not found, skipping UI", srv.staticDir)
		return
	}

	files := http.FileServer(gin.Dir(srv.staticDir, false))
	srv.gin.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})
	srv.l.Infof(ctx, "Static UI served from %s", srv.staticDir)
}
