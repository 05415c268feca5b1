package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"cabreport/internal/domain"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr   string
	GinMode   string
	GoEnv     string
	LogLevel  string
	DBDSN     string
	CORSAllow []string

	CompanyName    string
	CompanyCode    string
	CurrencySymbol string
	BlankFare      domain.BlankFarePolicy
	DateOrder      domain.DateOrder
	MaxUploadBytes int64

	JWTSecret         string
	JWTTTL            time.Duration
	AdminUsername     string
	AdminPasswordHash string
}

// Production reports whether GO_ENV is "production".
func (e Env) Production() bool {
	return strings.EqualFold(e.GoEnv, "production")
}

// AuditEnabled reports whether uploads are logged to MySQL.
func (e Env) AuditEnabled() bool {
	return e.DBDSN != ""
}

// LoadEnv reads configuration from the process environment, after loading an
// optional .env file from the working directory.
func LoadEnv() Env {
	_ = godotenv.Load()

	env := Env{
		AppAddr:           getenv("APP_ADDR", ":8080"),
		GinMode:           getenv("GIN_MODE", ""),
		GoEnv:             getenv("GO_ENV", "development"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		DBDSN:             getenv("DB_DSN", ""),
		CORSAllow:         splitAndTrim(getenv("CORS_ALLOWED_ORIGINS", "")),
		CompanyName:       getenv("COMPANY_NAME", "SHREY CAB SERVICES"),
		CompanyCode:       getenv("COMPANY_CODE", "SHREY_CAB"),
		CurrencySymbol:    getenv("CURRENCY_SYMBOL", "₹"),
		MaxUploadBytes:    10 << 20,
		JWTSecret:         getenv("JWT_SECRET", ""),
		JWTTTL:            24 * time.Hour,
		AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getenv("ADMIN_PASSWORD_HASH", ""),
	}

	policy, err := domain.ParseBlankFarePolicy(os.Getenv("BLANK_FARE_POLICY"))
	if err != nil {
		GetLogger().WithField("env", "BLANK_FARE_POLICY").Warn(err.Error() + "; using reject")
	}
	env.BlankFare = policy

	order, err := domain.ParseDateOrder(os.Getenv("DATE_ORDER"))
	if err != nil {
		GetLogger().WithField("env", "DATE_ORDER").Warn(err.Error() + "; using mdy")
	}
	env.DateOrder = order

	if v := getenv("MAX_UPLOAD_MB", ""); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			env.MaxUploadBytes = n << 20
		}
	}
	if v := getenv("JWT_TTL_HOURS", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			env.JWTTTL = time.Duration(n) * time.Hour
		}
	}

	return env
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func splitAndTrim(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
