package services

import (
	"errors"
	"strings"
	"time"

	"cabreport/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const RoleAdmin = "admin"

var errBadCredentials = domain.UnauthorizedError{Msg: "username or password is wrong"}

// AuthService issues and checks admin tokens. There is a single admin account
// configured through the environment.
type AuthService struct {
	Username     string
	PasswordHash string
	Secret       []byte
	TTL          time.Duration
	Now          func() time.Time
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Login checks the credentials and returns a signed HS256 token.
func (s AuthService) Login(username, password string) (string, time.Time, error) {
	if len(s.Secret) == 0 || s.PasswordHash == "" {
		return "", time.Time{}, domain.UnauthorizedError{Msg: "admin login is disabled"}
	}
	if strings.TrimSpace(username) != s.Username {
		return "", time.Time{}, errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, errBadCredentials
	}

	now := s.now()
	exp := now.Add(s.ttl())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", time.Time{}, domain.InternalError{Msg: "cannot sign token", Err: err}
	}
	return signed, exp, nil
}

// ParseToken validates a bearer token and returns its subject and role.
func (s AuthService) ParseToken(raw string) (domain.RequestContext, error) {
	if len(s.Secret) == 0 {
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: "admin login is disabled"}
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		msg := "invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "token expired"
		}
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: msg, Err: err}
	}
	return domain.RequestContext{Subject: claims.Subject, Role: claims.Role}, nil
}

func (s AuthService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return 24 * time.Hour
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
