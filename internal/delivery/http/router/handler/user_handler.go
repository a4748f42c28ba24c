package handler

import (
	"log/slog"
	"net/http"

	"tasklist/internal/delivery/http/response"
	"tasklist/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type userResponse struct {
	Email string         `json:"email"`
	Roles []string       `json:"roles"`
	Tasks []taskResponse `json:"tasks"`
}

// UserHandler holds dependencies for the user directory endpoints. Creating
// a user goes through the same registration flow as /auth/register, so the
// handler carries both use cases.
type UserHandler struct {
	userUc usecase.UserUsecase
	authUc usecase.AuthUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUc usecase.UserUsecase, authUc usecase.AuthUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUc: userUc,
		authUc: authUc,
		logger: logger,
	}
}

// List returns every user with role names and owned tasks. The password
// digest never appears in the body.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Get returns a single user by email path parameter.
func (h *UserHandler) Get(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Email path parameter is required")
	}

	user, err := h.userUc.GetUser(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// Register creates an account through the user collection endpoint. Same
// semantics as POST /auth/register, including the role id list.
func (h *UserHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Email and password are required")
	}

	output, err := h.authUc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    input.Email,
		Password: input.Password,
		RoleIDs:  input.RoleIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenResponse{Token: output.Token}, "Registration successful")
}

func toUserResponse(user *usecase.UserOutput) userResponse {
	return userResponse{
		Email: user.Email,
		Roles: user.Roles,
		Tasks: toTaskResponses(user.Tasks),
	}
}
