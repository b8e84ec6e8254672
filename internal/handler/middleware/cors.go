package middleware

import (
	"log/slog"
	"slices"

	"racing-ticket-desk/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const OperatorHeader = "X-Desk-Operator"

// NewCORSMiddleware always lets browsers send the desk operator header,
// even when CORS_ALLOW_HEADERS leaves it out.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowHeaders := slices.Clone(cfg.AllowHeaders)
	if !slices.Contains(allowHeaders, OperatorHeader) {
		allowHeaders = append(allowHeaders, OperatorHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_headers", allowHeaders)
	return cors.New(corsCfg)
}
