package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"sufra/config"
	"sufra/shared/constant"
	"sufra/shared/timezone"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

const roleAdmin = "admin"

// Claims represents the JWT claims structure
type Claims struct {
	Role    string `json:"role"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

// AdminToken is returned to a caller that passed the admin challenge.
type AdminToken struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

// JWT handles admin override tokens
type JWT interface {
	GenerateAdminToken() (*AdminToken, error)
	ValidateAdminToken(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
}

// New creates a new JWT service
func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

// GenerateAdminToken issues a short-lived token carrying the admin role.
// Admin mode is deliberately not persisted anywhere: dropping the token
// ends it.
func (s *Service) GenerateAdminToken() (*AdminToken, error) {
	now := timezone.Now()
	expireMin := s.config.JWT.AdminExpireMin

	claims := Claims{
		Role:    roleAdmin,
		TokenID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.App.Name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireMin) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.config.JWT.AdminSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign admin token: %w", err)
	}

	return &AdminToken{
		Token:     signed,
		TokenType: "Bearer",
		ExpiresIn: int64(expireMin) * constant.MinutesToSeconds,
	}, nil
}

// ExtractTokenFromHeader pulls the raw token out of a Bearer authorization
// header value.
func ExtractTokenFromHeader(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

// ValidateAdminToken parses a bearer token and checks it carries the admin
// role and has not expired.
func (s *Service) ValidateAdminToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.config.JWT.AdminSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.Role != roleAdmin {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
