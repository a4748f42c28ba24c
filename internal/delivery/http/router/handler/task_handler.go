package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tasklist/internal/delivery/http/response"
	"tasklist/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type taskRequest struct {
	UserEmail string `json:"userEmail" validate:"required,email"`
	Title     string `json:"title" validate:"required"`
	Completed bool   `json:"completed"`
}

type taskResponse struct {
	ID        uint   `json:"id"`
	UserEmail string `json:"userEmail"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TaskHandler holds dependencies for the task endpoints.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles listing every task.
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.uc.ListTasks(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponses(tasks), "")
}

// Get handles fetching one task by id.
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Task id must be a positive integer")
	}

	task, err := h.uc.GetTask(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "")
}

// Create handles creating a task for an existing user.
func (h *TaskHandler) Create(c echo.Context) error {
	var input taskRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Owner email and title are required")
	}

	task, err := h.uc.CreateTask(c.Request().Context(), &usecase.CreateTaskInput{
		UserEmail: input.UserEmail,
		Title:     input.Title,
		Completed: input.Completed,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTaskResponse(task), "Task created")
}

// Update overwrites a task's owner, title and completion flag. A successful
// update answers 204 with no body.
func (h *TaskHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Task id must be a positive integer")
	}

	var input taskRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Owner email and title are required")
	}

	err = h.uc.UpdateTask(c.Request().Context(), &usecase.UpdateTaskInput{
		ID:        id,
		UserEmail: input.UserEmail,
		Title:     input.Title,
		Completed: input.Completed,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes a task by id. A successful delete answers 204 with no body.
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Task id must be a positive integer")
	}

	if err := h.uc.DeleteTask(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse id path parameter")
	}

	return uint(id), nil
}

func toTaskResponse(task *usecase.TaskOutput) taskResponse {
	return taskResponse{
		ID:        task.ID,
		UserEmail: task.UserEmail,
		Title:     task.Title,
		Completed: task.Completed,
	}
}

func toTaskResponses(tasks []*usecase.TaskOutput) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toTaskResponse(task))
	}

	return out
}
