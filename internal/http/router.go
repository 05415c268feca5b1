package api

import (
	stdhttp "net/http"

	intconfig "cabreport/internal/config"
	h "cabreport/internal/http/handlers"
	"cabreport/internal/http/middleware"
	"cabreport/internal/repositories"
	"cabreport/internal/services"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every endpoint. audit is nil when DB_DSN is not set.
func NewRouter(env intconfig.Env, audit *repositories.UploadAuditRepository) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = env.MaxUploadBytes
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env))

	if err := r.SetTrustedProxies(nil); err != nil {
		intconfig.GetLogger().WithError(err).Warn("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":      "route not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	hd := h.New(env, audit)

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)
		api.GET("/db-check", hd.DBCheck)
		api.GET("/routes", h.Routes)

		api.GET("/template", hd.Template)

		dashboard := api.Group("/dashboard")
		dashboard.GET("", hd.DashboardPrompt)
		dashboard.POST("", hd.Dashboard)
		dashboard.POST("/export/xlsx", hd.ExportWorkbook)
		dashboard.POST("/export/pdf", hd.ExportPDF)
		dashboard.POST("/charts/:name", hd.ChartPNG)

		auth := api.Group("/auth")
		auth.POST("/login", hd.Login)

		uploads := api.Group("/uploads", middleware.RequireAuth(hd.Auth()), middleware.RequireRoles(services.RoleAdmin))
		uploads.GET("", hd.ListUploads)
		uploads.GET("/:id", hd.GetUpload)
	}

	h.SetRouter(r)
	return r
}
