// Package auth provides JWT issuance/verification and the request
// authentication and authorization middlewares built on top of it.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/Rokuginn/polytechnic-library/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Verification failures. ErrTokenExpired is reported separately so
// callers can tell an elapsed expiry from a bad signature or malformed
// token; both map to the same HTTP status at the middleware.
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims is the signed claim set carried by a session token
type Claims struct {
	UserID   int         `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer issues and verifies signed session tokens
type TokenIssuer struct {
	secret      string
	tokenExpiry time.Duration
}

// NewTokenIssuer creates a new token issuer
func NewTokenIssuer(secret string, tokenExpiry time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:      secret,
		tokenExpiry: tokenExpiry,
	}
}

// Issue creates a signed token carrying the user's identity and role
func (ti *TokenIssuer) Issue(userID int, username string, role models.Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.tokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ti.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify checks the token signature and expiry and returns its claims
func (ti *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ti.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	if !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrTokenInvalid, claims.Role)
	}

	return claims, nil
}
