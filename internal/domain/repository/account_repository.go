// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accountd/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateEmail is returned when a create or update collides with the
// unique email index. The index is the single enforcement point for email
// uniqueness; callers must not pre-check existence as their only guard.
var ErrDuplicateEmail = errors.New("email already registered")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. A collision on the unique email index
	// is reported as ErrDuplicateEmail.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes the account with the given email. Returns
	// ErrAccountNotFound when no such account exists.
	Delete(ctx context.Context, email string) error

	// List returns every account in the directory, ordered by join time.
	List(ctx context.Context) ([]*entity.Account, error)
}
