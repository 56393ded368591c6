// Package auth holds the credential primitives of the server: password
// hashing, session token signing and the session cookie.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/acquisitions/internal/common"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	// Hash produces a salted one-way digest of password.
	Hash(password string) (string, error)

	// Verify checks password against digest.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, common.ErrVerificationFailure) when the check itself failed.
	Verify(password, digest string) (bool, error)
}

// MaxPasswordBytes is the longest password bcrypt reads in full. Anything
// beyond it would be silently ignored, so longer inputs never verify.
const MaxPasswordBytes = 72

// generateFromPassword is a seam for simulating primitive failures.
var generateFromPassword = bcrypt.GenerateFromPassword

// BcryptHasher implements PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given work factor. Costs outside
// bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Cost returns the configured work factor.
func (h *BcryptHasher) Cost() int {
	return h.cost
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := generateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrHashingFailure, err)
	}
	if len(digest) == 0 {
		return "", common.ErrHashingFailure
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(password, digest string) (bool, error) {
	if len(password) > MaxPasswordBytes {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", common.ErrVerificationFailure, err)
	}
}
