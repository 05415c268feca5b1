package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"cabreport/internal/domain"
	"cabreport/internal/http/middleware"
	"cabreport/internal/services"
	"cabreport/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/uploads?page=&pageSize=
func (h *Handler) ListUploads(c *gin.Context) {
	if h.audit == nil {
		respondError(c, http.StatusServiceUnavailable, "audit_disabled", "upload audit database is not configured", nil)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	svc := services.UploadHistoryService{Repo: h.audit}
	out, err := svc.List(c.Request.Context(), domain.Pagination{Page: page, PageSize: size})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "uploads", "list",
		fmt.Sprintf("by=%s page=%d total=%d", middleware.Caller(c).Subject, out.Pagination.Page, out.Pagination.Total))
	c.JSON(http.StatusOK, out)
}

// GET /api/uploads/:id
func (h *Handler) GetUpload(c *gin.Context) {
	if h.audit == nil {
		respondError(c, http.StatusServiceUnavailable, "audit_disabled", "upload audit database is not configured", nil)
		return
	}
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	rec, err := services.UploadHistoryService{Repo: h.audit}.Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rec})
}
