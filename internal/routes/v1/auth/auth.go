package routesV1Auth

import (
	"net/http"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/routes/respond"
	authUseCase "github.com/cristiannav/swapstyle-backend/internal/usecase/auth"
	"github.com/cristiannav/swapstyle-backend/pkg/http_util"
	"github.com/labstack/echo"
)

func SignUpHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	reqBody, err := http_util.Decode[entity.CreateUserRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "Invalid request body")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return respond.ValidationFailed(c, problems)
	}

	user, err := authCase.SignupUser(c.Request().Context(), reqBody)
	if err != nil {
		return respond.Error(c, err)
	}

	return http_util.Encode(c, http.StatusCreated, http_util.HTTPResponse[entity.SignUpResponse]{
		Message: "Sign-up successful",
		Data: entity.SignUpResponse{
			ID:       int(user.ID),
			Username: user.Username,
			Name:     user.Name,
			Email:    user.Email,
		},
	})
}

func SignInHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	reqBody, err := http_util.Decode[entity.SignInRequest](c)
	if err != nil {
		return http_util.BadRequest(c, "Invalid request body")
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return respond.ValidationFailed(c, problems)
	}

	token, err := authCase.SignIn(c.Request().Context(), reqBody.Email, reqBody.Username, reqBody.Password)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, "Sign-in successful", entity.SignInResponse{Token: token})
}
