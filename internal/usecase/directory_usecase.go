package usecase

import "context"

// DirectoryUsecase defines the directory-wide operations restricted to the
// administrative account. The admin check itself happens in the delivery
// layer's policy middleware; these operations assume an authorized caller.
type DirectoryUsecase interface {
	// ListAccounts returns the public view of every account in the directory.
	ListAccounts(ctx context.Context) ([]*AccountView, error)

	// GetAccount returns the public view of the account with the given email.
	GetAccount(ctx context.Context, email string) (*AccountView, error)

	// DeleteAccount removes the account with the given email. The admin
	// account itself can never be deleted, regardless of the caller.
	DeleteAccount(ctx context.Context, email string) error
}
