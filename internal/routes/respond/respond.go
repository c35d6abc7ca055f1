// Package respond maps use-case results and errors onto the HTTP envelope.
// Handlers stay free of status-code logic; the error taxonomy decides.
package respond

import (
	"net/http"
	"strconv"

	"github.com/cristiannav/swapstyle-backend/internal/apperror"
	"github.com/cristiannav/swapstyle-backend/internal/logger"
	"github.com/cristiannav/swapstyle-backend/pkg/http_util"
	"github.com/labstack/echo"
)

// Error writes err using the taxonomy's status and caller-safe message.
// Internal errors are logged here and reach the client as an opaque line.
func Error(c echo.Context, err error) error {
	if apperror.KindOf(err) == apperror.KindInternal {
		logger.Error("request failed",
			"method", c.Request().Method, "path", c.Path(), "err", err)
	}
	return http_util.EncodeError(c, apperror.HTTPStatus(err), apperror.KindOf(err).String(), apperror.Message(err))
}

// OK writes the standard success envelope.
func OK[T any](c echo.Context, message string, data T) error {
	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[T]{Message: message, Data: data})
}

// Created writes the success envelope with 201.
func Created[T any](c echo.Context, message string, data T) error {
	return http_util.Encode(c, http.StatusCreated, http_util.HTTPResponse[T]{Message: message, Data: data})
}

// ValidationFailed reports per-field problems from a request's Validate.
func ValidationFailed(c echo.Context, problems map[string][]string) error {
	return http_util.Encode(c, http.StatusBadRequest, map[string]any{
		"message":  "Validation failed",
		"problems": problems,
	})
}

// UintParam parses a numeric path parameter.
func UintParam(c echo.Context, name string) (uint, error) {
	raw, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid " + name + " parameter")
	}
	return uint(raw), nil
}

// PageParams reads ?page= and ?limit= with the given default page size.
func PageParams(c echo.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}
