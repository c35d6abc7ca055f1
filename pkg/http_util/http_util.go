package http_util

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo"
)

type HTTPResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HTTPErrorResponse struct {
	Error ErrorResponse `json:"error"`
}

func Encode[T any](c echo.Context, status int, v T) error {
	return c.JSON(status, v)
}

func Decode[T any](c echo.Context) (T, error) {
	var v T
	if err := c.Bind(&v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

func DecodeBody[T any](body []byte, v T) (T, error) {
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// EncodeError writes the standard error envelope.
func EncodeError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, HTTPErrorResponse{Error: ErrorResponse{Code: code, Message: message}})
}

// BadRequest is the shorthand for malformed request bodies.
func BadRequest(c echo.Context, message string) error {
	return EncodeError(c, http.StatusBadRequest, "BAD_REQUEST", message)
}
