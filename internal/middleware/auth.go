package middleware

import (
	"net/http"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	authUseCase "github.com/cristiannav/swapstyle-backend/internal/usecase/auth"
	"github.com/cristiannav/swapstyle-backend/pkg/http_util"
	"github.com/labstack/echo"
)

const userContextKey = "currentUser"

// JWTMiddleware resolves the bearer token to its user and stores it on the
// echo context for handlers to pick up via CurrentUser.
func JWTMiddleware(authUseCase authUseCase.IAuthUseCase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return http_util.EncodeError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token")
			}

			user, err := authUseCase.UserFromToken(c.Request().Context(), authHeader)
			if err != nil {
				return http_util.EncodeError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user set by JWTMiddleware.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(userContextKey).(*entity.User)
	return user, ok
}
