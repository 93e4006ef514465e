package impl

import (
	"context"
	"testing"
	"time"

	"accountd/internal/domain/entity"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/domain/repository"
	mockRepo "accountd/internal/mocks/repository"
	"accountd/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// directoryServiceFixtures holds all test dependencies for directory service tests.
type directoryServiceFixtures struct {
	service   usecase.DirectoryUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestDirectoryService(t *testing.T) directoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewDirectoryService(txManager, newDiscardLogger())

	return directoryServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestDirectoryService_ListAccounts(t *testing.T) {
	fixture := createTestDirectoryService(t)

	ctx := context.Background()
	accounts := []*entity.Account{
		{Username: "admin", Email: "admin@test.com", PasswordHash: "h1", Role: entity.RoleAdmin, JoinedAt: time.Now()},
		{Username: "alice", Email: "alice@test.com", PasswordHash: "h2", Role: entity.RoleStandard, JoinedAt: time.Now()},
	}

	fixture.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().List(ctx).Return(accounts, nil)

			return fn(mockFactory)
		})

	views, err := fixture.service.ListAccounts(ctx)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "admin", views[0].Username)
	assert.Equal(t, "alice@test.com", views[1].Email)
}

func TestDirectoryService_GetAccount_NotFound(t *testing.T) {
	fixture := createTestDirectoryService(t)

	ctx := context.Background()

	fixture.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, "ghost@test.com").
				Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	view, err := fixture.service.GetAccount(ctx, "ghost@test.com")

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestDirectoryService_DeleteAccount_Success(t *testing.T) {
	fixture := createTestDirectoryService(t)

	ctx := context.Background()
	stored := &entity.Account{
		Username: "alice",
		Email:    "alice@test.com",
		Role:     entity.RoleStandard,
	}

	fixture.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
			mockAccountRepo.EXPECT().Delete(ctx, stored.Email).Return(nil)

			return fn(mockFactory)
		})

	err := fixture.service.DeleteAccount(ctx, stored.Email)

	require.NoError(t, err)
}

func TestDirectoryService_DeleteAccount_AdminIsProtected(t *testing.T) {
	fixture := createTestDirectoryService(t)

	ctx := context.Background()
	admin := &entity.Account{
		Username: "admin",
		Email:    "admin@test.com",
		Role:     entity.RoleAdmin,
	}

	fixture.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			// The delete never reaches the repository for the admin account.
			mockAccountRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)

			return fn(mockFactory)
		})

	err := fixture.service.DeleteAccount(ctx, admin.Email)

	assert.True(t, errors.Is(err, domainerrors.ErrCannotDeleteAdmin))
}

func TestDirectoryService_DeleteAccount_NotFound(t *testing.T) {
	fixture := createTestDirectoryService(t)

	ctx := context.Background()

	fixture.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, "ghost@test.com").
				Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	err := fixture.service.DeleteAccount(ctx, "ghost@test.com")

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
