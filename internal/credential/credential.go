// Package credential issues login credentials for admitted teams.
package credential

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
)

const (
	passwordLength   = 10
	passwordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"
	maxLoginBase     = 40
)

// Issued is an opaque credential. Password is shown to the administrator
// once and is never persisted; only PasswordHash is stored.
type Issued struct {
	// Subject is the identity subject the team acts as.
	Subject      string
	Login        string
	Password     string
	PasswordHash string
}

// Issuer creates credentials for a team.
type Issuer interface {
	Issue(ctx context.Context, teamName string) (Issued, error)
}

type issuer struct {
	domain string
	cost   int
}

// NewIssuer creates an issuer producing logins under domain.
// A cost of zero uses bcrypt.DefaultCost.
func NewIssuer(domain string, cost int) Issuer {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &issuer{domain: domain, cost: cost}
}

// Issue implements Issuer.
func (i *issuer) Issue(ctx context.Context, teamName string) (Issued, error) {
	if err := ctx.Err(); err != nil {
		return Issued{}, err
	}

	password, err := randomPassword(passwordLength)
	if err != nil {
		return Issued{}, fmt.Errorf("generate password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), i.cost)
	if err != nil {
		return Issued{}, fmt.Errorf("hash password: %w", err)
	}

	subject := uuid.NewString()
	return Issued{
		Subject:      subject,
		Login:        i.login(teamName, subject),
		Password:     password,
		PasswordHash: string(hash),
	}, nil
}

// login builds "<team-slug>.<suffix>@<domain>". The suffix keeps logins
// unique across championships that reuse a team name.
func (i *issuer) login(teamName, subject string) string {
	base := slug.Make(teamName)
	if len(base) > maxLoginBase {
		base = strings.TrimRight(base[:maxLoginBase], "-")
	}
	if base == "" {
		base = "team"
	}
	suffix := strings.ReplaceAll(subject, "-", "")[:8]
	return fmt.Sprintf("%s.%s@%s", base, suffix, i.domain)
}

func randomPassword(n int) (string, error) {
	limit := big.NewInt(int64(len(passwordAlphabet)))
	var b strings.Builder
	b.Grow(n)
	for j := 0; j < n; j++ {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b.WriteByte(passwordAlphabet[idx.Int64()])
	}
	return b.String(), nil
}
