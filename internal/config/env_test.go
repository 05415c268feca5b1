package config

import (
	"testing"
	"time"

	"cabreport/internal/domain"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ADDR", "COMPANY_NAME", "COMPANY_CODE", "CURRENCY_SYMBOL", "BLANK_FARE_POLICY", "DATE_ORDER", "MAX_UPLOAD_MB", "DB_DSN", "JWT_TTL_HOURS"} {
		t.Setenv(k, "")
	}
	env := LoadEnv()
	if env.AppAddr != ":8080" || env.CompanyName != "SHREY CAB SERVICES" || env.CompanyCode != "SHREY_CAB" || env.CurrencySymbol != "₹" {
		t.Fatalf("unexpected defaults %+v", env)
	}
	if env.BlankFare != domain.BlankFareReject {
		t.Fatalf("expected reject policy by default, got %q", env.BlankFare)
	}
	if env.DateOrder != domain.DateMonthFirst {
		t.Fatalf("expected month-first dates by default, got %q", env.DateOrder)
	}
	if env.MaxUploadBytes != 10<<20 || env.JWTTTL != 24*time.Hour {
		t.Fatalf("unexpected limits %d %s", env.MaxUploadBytes, env.JWTTTL)
	}
	if env.AuditEnabled() {
		t.Fatalf("audit must be off without DB_DSN")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BLANK_FARE_POLICY", "Zero")
	t.Setenv("DATE_ORDER", "DMY")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("JWT_TTL_HOURS", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("GO_ENV", "production")
	t.Setenv("DB_DSN", "user:pw@tcp(localhost:3306)/cab")

	env := LoadEnv()
	if env.BlankFare != domain.BlankFareZero {
		t.Fatalf("expected zero policy, got %q", env.BlankFare)
	}
	if env.DateOrder != domain.DateDayFirst {
		t.Fatalf("expected day-first dates, got %q", env.DateOrder)
	}
	if env.MaxUploadBytes != 2<<20 || env.JWTTTL != 4*time.Hour {
		t.Fatalf("unexpected limits %d %s", env.MaxUploadBytes, env.JWTTTL)
	}
	if len(env.CORSAllow) != 2 || env.CORSAllow[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", env.CORSAllow)
	}
	if !env.Production() || !env.AuditEnabled() {
		t.Fatalf("expected production with audit on")
	}
}
