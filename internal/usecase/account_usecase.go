// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"accountd/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Validation tags mirror the registration policy: alphanumeric usernames of
// 3-30 characters and passwords of 6-30 characters.
type RegisterInput struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=30"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=30"`
}

// UpdateAccountInput defines the optional fields of a partial self-update.
// Constraints apply only when a field is present.
type UpdateAccountInput struct {
	Username *string `json:"username" validate:"omitempty,alphanum,min=3,max=30"`
	Password *string `json:"password" validate:"omitempty,min=6,max=30"`
}

// IsEmpty reports whether the update carries no fields at all.
func (in *UpdateAccountInput) IsEmpty() bool {
	return in.Username == nil && in.Password == nil
}

// --- Output DTOs ---

// AccountView is the public projection of an account. It exists so that
// sensitive fields are excluded by construction: the password hash is not
// part of this type and therefore can never appear in a response.
type AccountView struct {
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// NewAccountView projects a domain account onto its public view.
func NewAccountView(account *entity.Account) *AccountView {
	if account == nil {
		return nil
	}

	return &AccountView{
		Username: account.Username,
		Email:    account.Email,
		Role:     account.Role.String(),
		JoinedAt: account.JoinedAt,
	}
}

// RegisterOutput returns the newly created account's public view.
type RegisterOutput struct {
	Account *AccountView
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token   string
	Account *AccountView
}

// UpdateAccountOutput reports which fields the update touched, so the
// delivery layer can phrase its confirmation accordingly.
type UpdateAccountOutput struct {
	UsernameUpdated bool
	PasswordUpdated bool
}

// AccountUsecase defines the interface for account self-service operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	UpdateAccount(ctx context.Context, email string, input *UpdateAccountInput) (*UpdateAccountOutput, error)
}
