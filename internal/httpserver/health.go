package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rev-chat-relay/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthStatus  = "OK"
	HealthVersion = "1.0.0"
	ServiceName   = "rev-chat-relay"
)

// healthCheck reports whether the provider credential is usable and which
// model is in use. The body is flat so existing monitors can read it.
// @Summary Health Check
// @Description Report API key presence and active model
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        HealthStatus,
		"apiConfigured": srv.chatUC.Configured(),
		"model":         srv.chatUC.Model(),
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	})
}

// readyCheck handles readiness and reports the live session count.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":   "ready",
		"version":  HealthVersion,
		"service":  ServiceName,
		"sessions": srv.socketSessions.Len() + srv.httpSessions.Len(),
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
