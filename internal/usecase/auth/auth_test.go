package authUseCase_test

import (
	"context"
	"testing"

	"github.com/cristiannav/swapstyle-backend/internal/apperror"
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	userRepo "github.com/cristiannav/swapstyle-backend/internal/repository/user"
	"github.com/cristiannav/swapstyle-backend/internal/testutil"
	authUseCase "github.com/cristiannav/swapstyle-backend/internal/usecase/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) authUseCase.IAuthUseCase {
	t.Helper()
	db := testutil.OpenDB(t)
	return authUseCase.New(userRepo.New(db))
}

var signup = entity.CreateUserRequest{
	Name:     "Alice",
	Email:    "alice@example.com",
	Username: "alice",
	Password: "hunter2hunter2",
}

func TestSignupAndSignIn(t *testing.T) {
	uc := setup(t)

	user, err := uc.SignupUser(context.Background(), signup)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	// stored hash, never the plain password
	assert.NotEqual(t, signup.Password, user.Password)

	token, err := uc.SignIn(context.Background(), signup.Email, "", signup.Password)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// username works too
	token, err = uc.SignIn(context.Background(), "", signup.Username, signup.Password)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestSignupDuplicate(t *testing.T) {
	uc := setup(t)

	_, err := uc.SignupUser(context.Background(), signup)
	require.NoError(t, err)

	_, err = uc.SignupUser(context.Background(), signup)
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
}

func TestSignInWrongPassword(t *testing.T) {
	uc := setup(t)

	_, err := uc.SignupUser(context.Background(), signup)
	require.NoError(t, err)

	_, err = uc.SignIn(context.Background(), signup.Email, "", "wrong-password")
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))

	_, err = uc.SignIn(context.Background(), "nobody@example.com", "", signup.Password)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestUserFromToken(t *testing.T) {
	uc := setup(t)

	_, err := uc.SignupUser(context.Background(), signup)
	require.NoError(t, err)

	token, err := uc.SignIn(context.Background(), signup.Email, "", signup.Password)
	require.NoError(t, err)

	user, err := uc.UserFromToken(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, signup.Username, user.Username)

	_, err = uc.UserFromToken(context.Background(), "Bearer not-a-token")
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))

	_, err = uc.UserFromToken(context.Background(), "")
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}
