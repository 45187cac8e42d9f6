package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/repository"
	mockRepo "abacus/internal/mocks/repository"
	mockSvc "abacus/internal/mocks/service"
	"abacus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	validator *mockSvc.MockPasswordValidator
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	validator := mockSvc.NewMockPasswordValidator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Validator: validator,
		Logger:    logger,
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		validator: validator,
	}
}

func registerInput() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		Email:    "test@example.com",
		Username: "testuser",
		FullName: "Test User",
		Password: "Password1",
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := registerInput()

	fx.validator.EXPECT().Validate(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
					return user.Email == input.Email &&
						user.Username == input.Username &&
						user.PasswordHash == "hashed_password"
				})).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, input.Username, output.User.Username)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_RegisterUser_PolicyViolations(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := registerInput()
	input.Password = "abc12"

	policyErr := &domainerrors.PasswordPolicyError{
		Violations: []*domainerrors.BaseError{
			domainerrors.ErrPasswordTooShort,
			domainerrors.ErrPasswordMissingUppercase,
		},
	}
	fx.validator.EXPECT().Validate(input.Password).Return(policyErr)

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var gotPolicy *domainerrors.PasswordPolicyError
	require.ErrorAs(t, err, &gotPolicy)
	assert.Len(t, gotPolicy.Violations, 2)
	// Sentinels stay reachable through the wrapped error so callers can
	// report each violated rule.
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMissingUppercase)
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := registerInput()

	fx.validator.EXPECT().Validate(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := registerInput()

	fx.validator.EXPECT().Validate(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("entropy source unavailable"))

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Username:     "testuser",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, storedUser.Email).Return(storedUser, nil)
	fx.hasher.EXPECT().Verify("Password1", storedUser.PasswordHash).Return(true, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    storedUser.Email,
		Password: "Password1",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, storedUser.ID, output.User.ID)
	assert.Equal(t, storedUser.Email, output.User.Email)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password1",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// An unknown email and a wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, storedUser.Email).Return(storedUser, nil)
	fx.hasher.EXPECT().Verify("WrongPassword1", storedUser.PasswordHash).Return(false, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    storedUser.Email,
		Password: "WrongPassword1",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_MalformedStoredHash(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "not-a-valid-hash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, storedUser.Email).Return(storedUser, nil)
	fx.hasher.EXPECT().
		Verify("Password1", storedUser.PasswordHash).
		Return(false, errors.Wrap(domainerrors.ErrMalformedHash, "cannot parse stored hash"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    storedUser.Email,
		Password: "Password1",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// A corrupt stored hash is a server fault, never a credentials failure.
	assert.ErrorIs(t, err, domainerrors.ErrMalformedHash)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
