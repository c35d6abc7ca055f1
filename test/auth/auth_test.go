package auth_test

import (
	"context"
	"log"
	"net/http"
	"os"
	"testing"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/pkg/http_util"
	helper_test "github.com/cristiannav/swapstyle-backend/test/helper"
	"github.com/stretchr/testify/assert"
)

var globalResources *helper_test.TestServerResources

func TestMain(m *testing.M) {
	var err error
	globalResources, err = helper_test.SetupTestServer(context.Background())
	if err != nil {
		log.Fatalf("Failed to set up test server: %v", err)
	}

	code := m.Run()

	globalResources.CleanupTestServer()
	os.Exit(code)
}

func TestSignUpAndSignIn(t *testing.T) {
	baseURL := globalResources.BaseURL()

	signedUp := helper_test.SignUpUser(t, baseURL, "thriftqueen", "secret-password", "thriftqueen@example.com")
	assert.NotZero(t, signedUp.ID)
	assert.Equal(t, "thriftqueen", signedUp.Username)

	byEmail := helper_test.SignInUser(t, baseURL, "thriftqueen@example.com", "", "secret-password")
	assert.NotEmpty(t, byEmail)

	byUsername := helper_test.SignInUser(t, baseURL, "", "thriftqueen", "secret-password")
	assert.NotEmpty(t, byUsername)
}

func TestSignUpDuplicate(t *testing.T) {
	baseURL := globalResources.BaseURL()

	helper_test.SignUpUser(t, baseURL, "dupeuser", "secret-password", "dupeuser@example.com")

	status, response := helper_test.DoJSON[http_util.HTTPErrorResponse](t,
		http.MethodPost, baseURL+"/v1/auth/sign-up", "",
		entity.CreateUserRequest{Name: "testname", Username: "dupeuser", Password: "secret-password", Email: "dupeuser@example.com"})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Email or username already taken", response.Error.Message)
}

func TestSignInWrongPassword(t *testing.T) {
	baseURL := globalResources.BaseURL()

	helper_test.SignUpUser(t, baseURL, "forgetful", "secret-password", "forgetful@example.com")

	status, response := helper_test.DoJSON[http_util.HTTPErrorResponse](t,
		http.MethodPost, baseURL+"/v1/auth/sign-in", "",
		entity.SignInRequest{Username: "forgetful", Password: "not-the-password"})

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", response.Error.Message)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	baseURL := globalResources.BaseURL()

	status, _ := helper_test.DoJSON[http_util.HTTPErrorResponse](t,
		http.MethodGet, baseURL+"/v1/matches", "", nil)

	assert.Equal(t, http.StatusUnauthorized, status)
}
