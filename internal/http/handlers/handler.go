package handlers

import (
	intconfig "cabreport/internal/config"
	"cabreport/internal/http/middleware"
	"cabreport/internal/repositories"
	"cabreport/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler holds the immutable configuration every request builds its
// services from.
type Handler struct {
	env   intconfig.Env
	audit *repositories.UploadAuditRepository
}

// New builds the handler set. audit may be nil, which disables upload
// logging and the admin uploads listing.
func New(env intconfig.Env, audit *repositories.UploadAuditRepository) *Handler {
	return &Handler{env: env, audit: audit}
}

func (h *Handler) Auth() services.AuthService {
	return services.AuthService{
		Username:     h.env.AdminUsername,
		PasswordHash: h.env.AdminPasswordHash,
		Secret:       []byte(h.env.JWTSecret),
		TTL:          h.env.JWTTTL,
	}
}

func (h *Handler) dashboardService(c *gin.Context) services.DashboardService {
	rid := middleware.GetRequestID(c)
	svc := services.DashboardService{
		Company:        h.env.CompanyName,
		CurrencySymbol: h.env.CurrencySymbol,
		Uploads:        services.UploadService{RequestID: rid},
		Reports:        services.ReportService{BlankFare: h.env.BlankFare, DateOrder: h.env.DateOrder},
		RequestID:      rid,
	}
	if h.audit != nil {
		svc.Audit = h.audit
	}
	return svc
}
