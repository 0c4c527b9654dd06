package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tubeview/tubeview_backend/internal/apperrors"
	"github.com/tubeview/tubeview_backend/internal/core/domain"
	portsrepo "github.com/tubeview/tubeview_backend/internal/core/ports/repositories"
	"github.com/tubeview/tubeview_backend/internal/core/services"
	"github.com/tubeview/tubeview_backend/internal/dto"
	"github.com/tubeview/tubeview_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func TestRegister_HashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewUserService(repo)

	var savedUser domain.User
	repo.On("CreateUser", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			savedUser = args.Get(1).(domain.User)
		}).
		Return(&domain.User{ID: 1, Username: "alice", Email: "alice@example.com"}, nil)

	req := dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "s3cretpw"}
	created, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	// The plaintext must never reach the store.
	assert.NotEqual(t, "s3cretpw", savedUser.PasswordHash)
	assert.NotEmpty(t, savedUser.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("s3cretpw", savedUser.PasswordHash))
	assert.False(t, utils.CheckPasswordHash("s3cretpw2", savedUser.PasswordHash))
	repo.AssertExpectations(t)
}

func TestRegister_DuplicatePassesThrough(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewUserService(repo)

	repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil, apperrors.ErrDuplicate)

	req := dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "s3cretpw"}
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestAuthenticate_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewUserService(repo)

	hash, err := utils.HashPassword("s3cretpw")
	require.NoError(t, err)
	stored := &domain.User{ID: 7, Username: "alice", Email: "alice@example.com", PasswordHash: hash, CreatedAt: time.Now()}
	repo.On("FindUserByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

	user, err := svc.Authenticate(context.Background(), "alice@example.com", "s3cretpw")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewUserService(repo)

	hash, err := utils.HashPassword("s3cretpw")
	require.NoError(t, err)
	stored := &domain.User{ID: 7, Email: "alice@example.com", PasswordHash: hash}
	repo.On("FindUserByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

	_, err = svc.Authenticate(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthenticate_UnknownEmailSameError(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewUserService(repo)

	repo.On("FindUserByEmail", mock.Anything, "nobody@example.com").Return(nil, apperrors.ErrNotFound)

	// A missing account and a bad password are indistinguishable.
	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetUser_Found(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewUserService(repo)

	stored := &domain.User{ID: 7, Username: "alice", Email: "alice@example.com"}
	repo.On("FindUserByID", mock.Anything, int64(7)).Return(stored, nil)

	user, err := svc.GetUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestGetUser_DeletedAccountNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewUserService(repo)

	repo.On("FindUserByID", mock.Anything, int64(7)).Return(nil, apperrors.ErrNotFound)

	_, err := svc.GetUser(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
