package helpers

import (
	"fmt"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

type SignedDetails struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

func (d *SignedDetails) Identity() Identity {
	return Identity{ID: d.ID, Username: d.Username, Role: d.Role}
}

// TokenManager signs HS256 session tokens. Nothing is persisted, so a token
// stays usable until it expires.
type TokenManager struct {
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

func NewTokenManager(secret string, expiresIn time.Duration) *TokenManager {
	return &TokenManager{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

func (m *TokenManager) Issue(who Identity) (string, error) {
	now := m.now()
	claims := &SignedDetails{
		ID:       who.ID,
		Username: who.Username,
		Role:     who.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.expiresIn).Unix(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry. Every failure is reported as
// ErrInvalidToken.
func (m *TokenManager) Verify(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return m.secret, nil
		},
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Decode reads the claims without checking the signature. Only use the
// result for display, never for access decisions.
func (m *TokenManager) Decode(signedToken string) (*SignedDetails, error) {
	claims := &SignedDetails{}
	if _, _, err := new(jwt.Parser).ParseUnverified(signedToken, claims); err != nil {
		return nil, fmt.Errorf("decoding token: %w", ErrInvalidToken)
	}
	return claims, nil
}

// Renew issues a token with a fresh expiry for the identity in a still valid
// token.
func (m *TokenManager) Renew(signedToken string) (string, error) {
	claims, err := m.Verify(signedToken)
	if err != nil {
		return "", err
	}
	return m.Issue(claims.Identity())
}
