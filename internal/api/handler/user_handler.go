package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopmesh/platform/internal/core/domain"
	"github.com/shopmesh/platform/internal/core/ports"
)

// UserHandler handles HTTP requests for the user directory.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        role   query     string  false  "Exact role match"
// @Param        limit  query     int     false  "Truncate to first N records"
// @Success      200    {object}  listUsersResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	filter := ports.ListUsersFilter{Role: c.QueryParam("role")}
	// Non-numeric or absent limit means no limit.
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		filter.Limit = limit
	}

	users, err := h.service.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listUsersResponse{Count: len(users), Users: users})
}

// Get handles GET /users/:id.
//
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  userNotFoundResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, userNotFoundResponse{Error: "User not found", UserID: id})
	}

	user, err := h.service.GetUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, userNotFoundResponse{Error: "User not found", UserID: id})
		}
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Create handles POST /users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User fields"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Email already in use"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// Update handles PUT /users/:id. Only supplied fields are overwritten.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to overwrite"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  userNotFoundResponse
// @Failure      409   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, userNotFoundResponse{Error: "User not found", UserID: id})
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name != nil && *req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name must not be empty")
	}
	if req.Email != nil && *req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email must not be empty")
	}

	user, err := h.service.UpdateUser(c.Request().Context(), id, ports.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, userNotFoundResponse{Error: "User not found", UserID: id})
		}
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Email already in use"})
		}
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:id, returning the removed record.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  userNotFoundResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, userNotFoundResponse{Error: "User not found", UserID: id})
	}

	user, err := h.service.DeleteUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, userNotFoundResponse{Error: "User not found", UserID: id})
		}
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Stats handles GET /stats/users.
//
// @Summary      Directory statistics
// @Tags         users
// @Produce      json
// @Success      200  {object}  userStatsResponse
// @Router       /stats/users [get]
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.service.UserStats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userStatsResponse{
		Total:       stats.Total,
		ByRole:      stats.ByRole,
		RecentUsers: stats.RecentUsers,
	})
}

// pathID parses the :id path parameter. A non-numeric ID can never exist in a
// store, so callers treat a parse failure as not-found.
func pathID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	return id, err == nil
}
