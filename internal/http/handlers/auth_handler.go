package handlers

import (
	"net/http"
	"time"

	"cabreport/internal/http/middleware"
	"cabreport/internal/utils"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	token, exp, err := h.Auth().Login(req.Username, req.Password)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "auth", "login_failed", "user="+utils.SafeFilenamePart(req.Username))
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"tokenType": "Bearer",
		"expiresAt": exp.UTC().Format(time.RFC3339),
		"role":      "admin",
	})
}
