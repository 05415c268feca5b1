package services

import (
	"testing"
	"time"

	"cabreport/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func authSvc(t *testing.T, now time.Time) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return AuthService{
		Username:     "admin",
		PasswordHash: string(hash),
		Secret:       []byte("test-secret"),
		TTL:          time.Hour,
		Now:          func() time.Time { return now },
	}
}

func TestLoginAndParseToken(t *testing.T) {
	now := time.Now()
	svc := authSvc(t, now)

	token, exp, err := svc.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !exp.Equal(now.Add(time.Hour)) {
		t.Fatalf("unexpected expiry %s", exp)
	}

	rc, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rc.Subject != "admin" || rc.Role != RoleAdmin {
		t.Fatalf("unexpected claims %+v", rc)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := authSvc(t, time.Now())
	if _, _, err := svc.Login("admin", "wrong"); !domain.IsUnauthorized(err) {
		t.Fatalf("expected UnauthorizedError for bad password, got %v", err)
	}
	if _, _, err := svc.Login("root", "s3cret"); !domain.IsUnauthorized(err) {
		t.Fatalf("expected UnauthorizedError for bad username, got %v", err)
	}
}

func TestLoginDisabledWithoutSecret(t *testing.T) {
	svc := authSvc(t, time.Now())
	svc.Secret = nil
	if _, _, err := svc.Login("admin", "s3cret"); !domain.IsUnauthorized(err) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
}

func TestParseTokenExpired(t *testing.T) {
	issued := time.Now().Add(-3 * time.Hour)
	token, _, err := authSvc(t, issued).Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	svc := authSvc(t, time.Now())
	if _, err := svc.ParseToken(token); !domain.IsUnauthorized(err) {
		t.Fatalf("expected UnauthorizedError for expired token, got %v", err)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := authSvc(t, time.Now()).Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	other := authSvc(t, time.Now())
	other.Secret = []byte("another-secret")
	if _, err := other.ParseToken(token); !domain.IsUnauthorized(err) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
}
