package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const corsMaxAge = 12 * time.Hour

var (
	corsAllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	corsAllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
)

// Cors answers preflight requests and tags responses for allowed origins.
// Requests from other origins are rejected with 403.
func (m Middleware) Cors() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: corsAllowMethods,
		AllowHeaders: corsAllowHeaders,
		MaxAge:       corsMaxAge,
	}
	if m.allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOriginFunc = m.originAllowed
	}
	return cors.New(cfg)
}

// CheckOrigin is the websocket upgrader hook. Requests without an Origin
// header come from non-browser clients and are accepted.
func (m Middleware) CheckOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if m.originAllowed(origin) {
		return true
	}
	m.l.Warnf(r.Context(), "internal.middleware.CheckOrigin: rejected origin %s", origin)
	return false
}

func (m Middleware) originAllowed(origin string) bool {
	if m.allowAll {
		return true
	}
	for _, o := range m.allowedOrigins {
		if strings.EqualFold(strings.TrimRight(o, "/"), origin) {
			return true
		}
	}
	return false
}
