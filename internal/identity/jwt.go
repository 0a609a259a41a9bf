package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type claims struct {
	Role   Role   `json:"role"`
	TeamID string `json:"team_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTResolver verifies HS256 tokens carrying sub, role and team_id claims.
type JWTResolver struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewJWTResolver creates a resolver. An empty issuer skips the iss check.
func NewJWTResolver(secret, issuer string) *JWTResolver {
	return &JWTResolver{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// Resolve implements Resolver.
func (r *JWTResolver) Resolve(_ context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrUnauthorized
	}

	var c claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(token, &c, func(*jwt.Token) (interface{}, error) {
		return r.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, ErrUnauthorized
	}
	if r.issuer != "" && !c.VerifyIssuer(r.issuer, true) {
		return Identity{}, ErrUnauthorized
	}
	if c.Subject == "" {
		return Identity{}, ErrUnauthorized
	}

	switch c.Role {
	case RoleAdmin:
	case RoleTeam:
		if c.TeamID == "" {
			return Identity{}, ErrUnauthorized
		}
	default:
		return Identity{}, ErrUnauthorized
	}

	return Identity{Subject: c.Subject, Role: c.Role, TeamID: c.TeamID}, nil
}

// Sign issues a token for id valid for ttl. Used by operators and tests;
// session management itself lives with the identity provider.
func (r *JWTResolver) Sign(id Identity, ttl time.Duration) (string, error) {
	if id.Subject == "" {
		return "", errors.New("identity subject is required")
	}
	now := r.now()
	c := claims{
		Role:   id.Role,
		TeamID: id.TeamID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Subject,
			Issuer:    r.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(r.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
