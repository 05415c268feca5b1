package middleware

import (
	"net/http"
	"strings"

	"cabreport/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	userRoleKey    = "userRole"
	userSubjectKey = "userSubject"
)

// TokenParser turns a bearer token into the caller's identity.
type TokenParser interface {
	ParseToken(raw string) (domain.RequestContext, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's role for RequireRoles.
func RequireAuth(p TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			abortJSON(c, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}
		rc, err := p.ParseToken(strings.TrimSpace(raw))
		if err != nil {
			abortJSON(c, http.StatusUnauthorized, "unauthorized", err.Error())
			return
		}
		c.Set(userSubjectKey, rc.Subject)
		c.Set(userRoleKey, rc.Role)
		c.Next()
	}
}

// RequireRoles only lets through callers whose role is in allowedRoles.
// RequireAuth must run first.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		role := strings.ToLower(strings.TrimSpace(c.GetString(userRoleKey)))
		if role == "" {
			abortJSON(c, http.StatusUnauthorized, "unauthorized", "no role on request")
			return
		}
		if _, ok := allowed[role]; !ok {
			abortJSON(c, http.StatusForbidden, "forbidden", "role not allowed")
			return
		}
		c.Next()
	}
}

// Caller returns the identity set by RequireAuth.
func Caller(c *gin.Context) domain.RequestContext {
	return domain.RequestContext{
		Subject: c.GetString(userSubjectKey),
		Role:    c.GetString(userRoleKey),
	}
}

func abortJSON(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      msg,
		"code":       code,
		"request_id": GetRequestID(c),
	})
}
