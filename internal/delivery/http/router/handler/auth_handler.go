// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"tasklist/internal/delivery/http/response"
	"tasklist/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	RoleIDs  []uint `json:"roleIds"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// AuthHandler holds dependencies for the registration and login endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request. A taken email answers
// 400, never 409.
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Email and password are required")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    input.Email,
		Password: input.Password,
		RoleIDs:  input.RoleIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// The body carries only the token; identity data is never echoed back.
	return response.Success(c, http.StatusOK, tokenResponse{Token: output.Token}, "Registration successful")
}

// Login handles the login request. Credential failures answer 401 without
// revealing whether the email exists.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Email and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenResponse{Token: output.Token}, "Login successful")
}
