package handlers

import (
	"net/http"
	"sync"

	intconfig "cabreport/internal/config"
	intdb "cabreport/internal/db"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for /api/routes.
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"company": h.env.CompanyName,
		"audit":   h.audit != nil,
	})
}

func (h *Handler) DBCheck(c *gin.Context) {
	if !h.env.AuditEnabled() {
		respondError(c, http.StatusServiceUnavailable, "audit_disabled", "upload audit database is not configured", nil)
		return
	}
	db, err := intconfig.PingDB(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unreachable", "cannot reach database", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "database connection OK",
		"uploadsTable": intdb.HasTable(c.Request.Context(), db, "dashboard_uploads"),
	})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "not_ready", "router not ready", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
