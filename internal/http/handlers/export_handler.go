package handlers

import (
	"net/http"

	"cabreport/internal/http/middleware"
	"cabreport/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/dashboard/export/xlsx
func (h *Handler) ExportWorkbook(c *gin.Context) {
	dash, ok := h.buildDashboard(c)
	if !ok {
		return
	}
	svc := services.ExportService{CompanyCode: h.env.CompanyCode, RequestID: middleware.GetRequestID(c)}
	data, filename, err := svc.Workbook(dash)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendAttachment(c, services.XLSXMimeType, filename, data)
}

// POST /api/dashboard/export/pdf
func (h *Handler) ExportPDF(c *gin.Context) {
	dash, ok := h.buildDashboard(c)
	if !ok {
		return
	}
	svc := services.DocsService{
		CompanyCode:    h.env.CompanyCode,
		CurrencySymbol: h.env.CurrencySymbol,
		RequestID:      middleware.GetRequestID(c),
	}
	data, filename, err := svc.SummaryPDF(dash)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendAttachment(c, "application/pdf", filename, data)
}

// POST /api/dashboard/charts/:name
func (h *Handler) ChartPNG(c *gin.Context) {
	name := c.Param("name")
	if !services.IsPlotName(name) {
		RespondDomainError(c, services.UnknownPlot(name))
		return
	}
	dash, ok := h.buildDashboard(c)
	if !ok {
		return
	}
	data, err := services.PlotService{RequestID: middleware.GetRequestID(c)}.Render(name, dash)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+name+`"`)
	c.Data(http.StatusOK, "image/png", data)
}
