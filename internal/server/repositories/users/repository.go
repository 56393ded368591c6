// Package users is the credential store: it looks user records up by email
// and inserts new ones. It is the only code that reads password hashes from
// storage.
package users

import (
	"context"

	"github.com/dmitrijs2005/acquisitions/internal/server/models"
)

type Repository interface {
	// FindByEmail returns the record whose email matches exactly, or
	// common.ErrorNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// Insert persists candidate and returns its public projection with the
	// generated id and created_at. A taken email yields common.ErrDuplicateEmail.
	Insert(ctx context.Context, candidate *models.User) (*models.PublicUser, error)
}
