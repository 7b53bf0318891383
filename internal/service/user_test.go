package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockUserRepo) {
	t.Helper()
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)
	svc.cost = bcrypt.MinCost
	return svc, repo
}

func TestUserService_Create_Success(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "  testuser ",
		Email:    "test@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.PasswordHash != "" && u.PasswordHash != "secret-pass"
	})).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "host", Password: "secret-pass"})

	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-pass")))
}

func TestUserService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateUserInput
	}{
		{name: "empty username", input: domain.CreateUserInput{Username: ""}},
		{name: "invalid email", input: domain.CreateUserInput{Username: "u", Email: "not-an-email"}},
		{name: "short password", input: domain.CreateUserInput{Username: "u", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(nil)

			_, err := svc.Create(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "taken"})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserService_Create_RepoError(t *testing.T) {
	svc, repo := newUserService(t)

	repoErr := errors.New("db error")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "testuser"})

	assert.ErrorIs(t, err, repoErr)
}

func TestUserService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: "u1", Username: "alice", PasswordHash: string(hash)}

	tests := []struct {
		name     string
		user     *domain.User
		repoErr  error
		password string
		wantErr  error
	}{
		{name: "valid", user: stored, password: "correct-horse"},
		{name: "wrong password", user: stored, password: "battery-staple", wantErr: domain.ErrInvalidCredentials},
		{name: "unknown user", repoErr: domain.ErrUserNotFound, password: "x", wantErr: domain.ErrInvalidCredentials},
		{name: "no password set", user: &domain.User{ID: "u2", Username: "alice"}, password: "", wantErr: domain.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newUserService(t)
			repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(tt.user, tt.repoErr)

			user, err := svc.Authenticate(context.Background(), "alice", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrUnauthenticated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
		})
	}
}

func TestUserService_List(t *testing.T) {
	svc, repo := newUserService(t)

	users := []*domain.User{{ID: "1", Username: "alice"}, {ID: "2", Username: "bob"}}
	repo.EXPECT().List(mock.Anything).Return(users, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
