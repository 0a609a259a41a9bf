// Package storage validates references to objects uploaded out of band
// (team badges, payment receipts) and builds their public URLs.
package storage

import (
	"context"
	"net/url"
	"strings"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
)

const maxReferenceLength = 1024

var (
	// ErrObjectNotFound indicates that the referenced object does not exist.
	ErrObjectNotFound = apperr.New(apperr.KindNotFound, "referenced object not found")
	// ErrInvalidReference indicates a malformed object reference.
	ErrInvalidReference = apperr.New(apperr.KindInvalidRequest, "invalid object reference")
)

// ReferenceValidator checks object references before they are stored.
type ReferenceValidator interface {
	// Validate returns nil when ref names an existing object.
	Validate(ctx context.Context, ref string) error
	// PublicURL returns the public URL of ref, or "" when none can be built.
	PublicURL(ref string) string
}

// CheckReference validates the syntax of an object key.
func CheckReference(ref string) error {
	if ref == "" || len(ref) > maxReferenceLength {
		return ErrInvalidReference
	}
	if strings.HasPrefix(ref, "/") || strings.Contains(ref, "..") || strings.ContainsAny(ref, "\\\x00") {
		return ErrInvalidReference
	}
	return nil
}

// publicURL joins base and ref.
func publicURL(base, ref string) string {
	if base == "" || ref == "" {
		return ""
	}
	u, err := url.JoinPath(base, ref)
	if err != nil {
		return ""
	}
	return u
}

// Permissive accepts every well-formed reference without contacting a store.
// It is used when no bucket is configured.
type Permissive struct {
	BaseURL string
}

// NewPermissive creates a validator that only checks reference syntax.
func NewPermissive(baseURL string) *Permissive {
	return &Permissive{BaseURL: baseURL}
}

// Validate implements ReferenceValidator.
func (p *Permissive) Validate(_ context.Context, ref string) error {
	return CheckReference(ref)
}

// PublicURL implements ReferenceValidator.
func (p *Permissive) PublicURL(ref string) string {
	return publicURL(p.BaseURL, ref)
}
