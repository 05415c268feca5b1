package handlers

import (
	"net/http"

	"cabreport/internal/domain/models"
	"cabreport/internal/http/middleware"
	"cabreport/internal/services"

	"github.com/gin-gonic/gin"
)

const uploadPrompt = "Download the template → Fill data → Upload to see analytics."

// GET /api/template
func (h *Handler) Template(c *gin.Context) {
	svc := services.TemplateService{CompanyCode: h.env.CompanyCode, RequestID: middleware.GetRequestID(c)}
	data, filename, err := svc.Template()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendAttachment(c, services.XLSXMimeType, filename, data)
}

// GET /api/dashboard shows the neutral prompt; nothing has been uploaded.
func (h *Handler) DashboardPrompt(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"company":  h.env.CompanyName,
		"title":    h.env.CompanyName + " - Business Analytics Dashboard",
		"message":  uploadPrompt,
		"template": "/api/template",
		"columns":  models.BookingColumns(),
	})
}

// POST /api/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	dash, ok := h.buildDashboard(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dash})
}

// buildDashboard runs the upload through the full pipeline and writes the
// error response itself when it fails.
func (h *Handler) buildDashboard(c *gin.Context) (models.Dashboard, bool) {
	in, closeFn, ok := readUpload(c, h.env.MaxUploadBytes)
	if !ok {
		return models.Dashboard{}, false
	}
	defer closeFn()

	dash, err := h.dashboardService(c).Build(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return models.Dashboard{}, false
	}
	return dash, true
}
