// Package token provides stateless signed bearer tokens carrying
// developer identity claims.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is the fixed token lifetime. There is no revocation before expiry;
// rotating the signing secret invalidates every outstanding token.
const TTL = 7 * 24 * time.Hour

const issuer = "tracker-api"

// Claims is the identity payload embedded in every token.
type Claims struct {
	ID            uint   `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	DeveloperType string `json:"developer_type"`
	jwt.RegisteredClaims
}

// Service signs and verifies bearer tokens with an HMAC secret.
type Service struct {
	secret []byte
}

// New creates a token service. The secret should be at least 16 characters.
func New(secret string) (*Service, error) {
	if len(secret) < 16 {
		return nil, errors.New("token: secret must be at least 16 characters")
	}
	return &Service{secret: []byte(secret)}, nil
}

// Issue creates a signed token embedding claims with the fixed 7-day expiry.
func (s *Service) Issue(claims Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.Username,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: signing: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. It never returns an error:
// any invalid, expired, or forged token yields (nil, false) so callers can
// treat the request as anonymous.
func (s *Service) Verify(tokenStr string) (*Claims, bool) {
	tok, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("token: unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return nil, false
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || claims.Username == "" {
		return nil, false
	}
	return claims, true
}

// ExtractBearer returns the token substring of an Authorization header
// value of the exact shape "Bearer <token>".
func ExtractBearer(headerValue string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(headerValue, prefix) {
		return "", false
	}
	tok := headerValue[len(prefix):]
	if tok == "" || strings.ContainsRune(tok, ' ') {
		return "", false
	}
	return tok, true
}
