package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager manages JWT token creation and validation
type TokenManager struct {
	secretKey string
	expiresIn time.Duration
	issuer    string
}

// Claims represents JWT claims
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// NewTokenManager creates a new token manager
func NewTokenManager(secretKey string, expiresIn time.Duration, issuer string) *TokenManager {
	return &TokenManager{
		secretKey: secretKey,
		expiresIn: expiresIn,
		issuer:    issuer,
	}
}

// Generate signs a new token carrying the given identity.
// Pure computation; never touches storage.
func (tm *TokenManager) Generate(email string, role Role) (string, error) {
	now := time.Now()

	claims := &Claims{
		Email: email,
		Role:  string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiresIn)),
			Issuer:    tm.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tm.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate validates and parses a token. Any failure (bad signature,
// malformed token, expiry, wrong issuer) is terminal; a partially
// trusted identity is never returned.
func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tm.secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("token has expired")
	}

	if claims.Issuer != tm.issuer {
		return nil, fmt.Errorf("invalid issuer")
	}

	return claims, nil
}

// Identity converts verified claims into an Identity.
// Fails when the role claim is outside the known set.
func (c *Claims) Identity() (Identity, error) {
	role, ok := ParseRole(c.Role)
	if !ok {
		return Identity{}, fmt.Errorf("unknown role %q", c.Role)
	}
	return Identity{Email: c.Email, Role: role}, nil
}

// GetExpiresIn returns the token expiration duration
func (tm *TokenManager) GetExpiresIn() time.Duration {
	return tm.expiresIn
}
