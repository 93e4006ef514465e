// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"accountd/config"
	deliverycontext "accountd/internal/delivery/context"
	"accountd/internal/domain/entity"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/domain/repository"
	"accountd/internal/domain/service"
	"accountd/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager      repository.TransactionManager
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	adminEmail     string
	allowedDomains []string
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	var adminEmail string
	var allowedDomains []string
	if params.Config != nil && params.Config.Auth != nil {
		adminEmail = params.Config.Auth.AdminEmail
		allowedDomains = params.Config.Auth.AllowedEmailDomains
	}

	return &accountService{
		txManager:      params.TxManager,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		adminEmail:     adminEmail,
		allowedDomains: allowedDomains,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
// Email uniqueness is resolved by the repository's unique index, so two
// concurrent registrations with the same email cannot both succeed.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.checkEmailDomain(input.Email); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newAccount := &entity.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         srv.roleFor(input.Email),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().Create(ctx, newAccount); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrDuplicateAccount.WrapMessage("registration rejected by unique email index")
			}

			return errors.Wrap(err, "failed to create account during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", newAccount.ID))

	return &usecase.RegisterOutput{Account: usecase.NewAccountView(newAccount)}, nil
}

// Login verifies credentials and issues an access token. An unknown email and
// a wrong password produce the same error so callers cannot tell them apart.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := srv.checkEmailDomain(input.Email); err != nil {
		return nil, err
	}

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("no account for email")
			}

			return errors.Wrap(err, "failed to find account during login")
		}
		account = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.Issue(account.Email, account.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Info("Login successful", slog.String("email", input.Email))

	return &usecase.LoginOutput{
		Token:   token,
		Account: usecase.NewAccountView(account),
	}, nil
}

// UpdateAccount applies a partial self-update to the caller's own record.
// Exactly one combined update is issued, merging whichever fields were supplied.
func (srv *accountService) UpdateAccount(ctx context.Context, email string, input *usecase.UpdateAccountInput) (*usecase.UpdateAccountOutput, error) {
	if input.IsEmpty() {
		return nil, domainerrors.ErrNoUpdateFields.WrapMessage("empty update payload")
	}

	srv.log(ctx).Info("Updating account", slog.String("email", email))

	output := &usecase.UpdateAccountOutput{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("token subject no longer exists")
			}

			return errors.Wrap(err, "failed to find account for update")
		}

		if input.Username != nil {
			account.Username = *input.Username
			output.UsernameUpdated = true
		}
		if input.Password != nil {
			hashedPassword, err := srv.hasher.Hash(*input.Password)
			if err != nil {
				return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
			}
			account.PasswordHash = hashedPassword
			output.PasswordUpdated = true
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account update failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// roleFor assigns the administrative role to the configured admin email and
// the standard role to everyone else.
func (srv *accountService) roleFor(email string) entity.Role {
	if srv.adminEmail != "" && strings.EqualFold(email, srv.adminEmail) {
		return entity.RoleAdmin
	}

	return entity.RoleStandard
}

// checkEmailDomain enforces the allowed domain-suffix set on top of the
// syntactic email validation done at the delivery layer.
func (srv *accountService) checkEmailDomain(email string) error {
	if len(srv.allowedDomains) == 0 {
		return nil
	}

	for _, domain := range srv.allowedDomains {
		if strings.HasSuffix(strings.ToLower(email), "."+strings.ToLower(domain)) {
			return nil
		}
	}

	return domainerrors.ErrValidationFailed.
		WithDetails("email domain must end in one of: " + strings.Join(srv.allowedDomains, ", "))
}
