package auth

import (
	"fmt"
	"time"

	"broadcast-ops-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT token claims carried by every authenticated request.
// Roles are resolved once at login and baked into the token.
type Claims struct {
	Username             string               `json:"username" example:"noc-operator-1"`
	Role                 models.Role          `json:"role" example:"noc"`
	CallsheetRole        models.CallsheetRole `json:"callsheet_role,omitempty" example:"callsheet"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService issues and validates JWT tokens for workflow actors
type AuthService struct {
	jwtSecret []byte
	resolver  RoleResolver
	tokenTTL  time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(jwtSecret string, resolver RoleResolver) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		resolver:  resolver,
		tokenTTL:  time.Hour,
	}
}

// Login authenticates the actor, resolves their workflow roles and issues a
// signed token.
func (s *AuthService) Login(username, password string) (string, *Identity, error) {
	identity, err := s.resolver.Authenticate(username, password)
	if err != nil {
		return "", nil, err
	}
	token, err := s.GenerateJWT(identity)
	if err != nil {
		return "", nil, err
	}
	return token, identity, nil
}

// GenerateJWT issues a signed token for a resolved identity
func (s *AuthService) GenerateJWT(identity *Identity) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username:      identity.Username,
		Role:          identity.Role,
		CallsheetRole: identity.CallsheetRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "broadcast-ops-backend",
			Subject:   identity.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if !claims.Role.IsValid() {
			return nil, fmt.Errorf("token carries unknown role %q", claims.Role)
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
