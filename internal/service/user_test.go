package service

import (
	"context"
	"testing"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, u *domain.User) {
		u.ID = 3
	}).Return(nil)

	user, err := svc.Register(context.Background(), domain.CreateUserInput{
		Email:    "  New@Example.COM ",
		FullName: "  New User ",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "New User", user.FullName)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password")))
}

func TestUserService_Register_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input domain.CreateUserInput
		want  string
	}{
		{"missing email", domain.CreateUserInput{Password: "secret-password"}, "email is required"},
		{"bad email", domain.CreateUserInput{Email: "nope", Password: "secret-password"}, "invalid email format"},
		{"short password", domain.CreateUserInput{Email: "a@b.com", Password: "short"}, "at least 8 characters"},
		{"unknown role", domain.CreateUserInput{Email: "a@b.com", Password: "secret-password", Role: "boss"}, "unknown role"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockUserRepo(t)
			svc := NewUserService(repo)

			_, err := svc.Register(context.Background(), tc.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.CreateUserInput{
		Email:    "taken@example.com",
		Password: "secret-password",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Authenticate(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "guest@example.com").Return(&domain.User{
		ID:           3,
		Email:        "guest@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}, nil)

	user, err := svc.Authenticate(context.Background(), " Guest@Example.com ", "secret-password")

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "guest@example.com").Return(&domain.User{
		PasswordHash: string(hash),
	}, nil)

	_, err = svc.Authenticate(context.Background(), "guest@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Authenticate_UnknownEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_ChangeRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().UpdateRole(mock.Anything, int64(3), domain.RoleStaff).Return(nil)

	require.NoError(t, svc.ChangeRole(context.Background(), 3, domain.RoleStaff))
}

func TestUserService_ChangeRole_UnknownRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	err := svc.ChangeRole(context.Background(), 3, "boss")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
