package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mgalihpp/inventory-dashboard/internal/logging"
	"github.com/mgalihpp/inventory-dashboard/internal/service"
	"github.com/mgalihpp/inventory-dashboard/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_users")

	res, err := h.Svc.List(ctx, transport.ParseListQuery(c.QueryParams()))
	if err != nil {
		return fail(l, "get_users_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"data": res.Items, "meta": res.Meta})
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_user")

	user, err := h.Svc.Get(ctx, c.Param("id"))
	if err != nil {
		return fail(l, "get_user_failed", err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "create_user")

	var req transport.CreateUserRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("user_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid body")
	}

	user, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "user_create_error", err)
	}

	l.Info("create_user_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, success(user))
}

func (h *UserHTTP) PatchUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "patch_user")

	var req transport.PatchUserRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("user_patch_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid body")
	}

	user, err := h.Svc.Update(ctx, c.Param("id"), req)
	if err != nil {
		return fail(l, "user_patch_error", err)
	}

	l.Info("patch_user_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, success(user))
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete_user")

	if err := h.Svc.Delete(ctx, c.Param("id")); err != nil {
		return fail(l, "user_delete_error", err)
	}

	l.Info("delete_user_success")
	return c.JSON(http.StatusOK, success(nil))
}
