// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "accountd/internal/delivery/context"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/domain/repository"
	"accountd/internal/usecase"

	"github.com/pkg/errors"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	return &directoryService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAccounts returns the public view of every account in the directory.
func (srv *directoryService) ListAccounts(ctx context.Context) ([]*usecase.AccountView, error) {
	var views []*usecase.AccountView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accounts, err := repoFactory.AccountRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list accounts")
		}

		views = make([]*usecase.AccountView, 0, len(accounts))
		for _, account := range accounts {
			views = append(views, usecase.NewAccountView(account))
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list accounts", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Listed accounts", slog.Int("count", len(views)))

	return views, nil
}

// GetAccount returns the public view of a single account by email.
func (srv *directoryService) GetAccount(ctx context.Context, email string) (*usecase.AccountView, error) {
	var view *usecase.AccountView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account, err := repoFactory.AccountRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("no account for email")
			}

			return errors.Wrap(err, "failed to find account")
		}
		view = usecase.NewAccountView(account)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// DeleteAccount removes an account from the directory. The admin account is
// self-protected: it can never be deleted, even by the admin itself.
func (srv *directoryService) DeleteAccount(ctx context.Context, email string) error {
	srv.log(ctx).Info("Deleting account", slog.String("email", email))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("no account for email")
			}

			return errors.Wrap(err, "failed to find account for deletion")
		}

		if account.IsAdmin() {
			return domainerrors.ErrCannotDeleteAdmin.WrapMessage("target is the admin account")
		}

		if err := accountRepo.Delete(ctx, email); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("account vanished before deletion")
			}

			return errors.Wrap(err, "failed to delete account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account deletion failed", slog.String("email", email), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Account deleted", slog.String("email", email))

	return nil
}
