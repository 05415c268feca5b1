package middleware

import (
	intconfig "cabreport/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows every origin outside production. In production only the
// CORS_ALLOWED_ORIGINS allowlist is accepted, and an empty list denies all.
func CORS(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	switch {
	case !env.Production():
		cfg.AllowAllOrigins = true
	case len(env.CORSAllow) > 0:
		cfg.AllowOrigins = env.CORSAllow
		cfg.AllowCredentials = true
	default:
		cfg.AllowOriginFunc = func(string) bool { return false }
	}
	cfg.AddAllowMethods("GET", "POST", "OPTIONS")
	cfg.AddAllowHeaders("Origin", "Content-Type", "Authorization", RequestIDHeader)
	cfg.AddExposeHeaders("Content-Length", "Content-Disposition", RequestIDHeader)
	return cors.New(cfg)
}
