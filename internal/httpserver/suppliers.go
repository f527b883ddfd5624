package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mgalihpp/inventory-dashboard/internal/logging"
	"github.com/mgalihpp/inventory-dashboard/internal/service"
	"github.com/mgalihpp/inventory-dashboard/internal/transport"
)

type SupplierHTTP struct {
	Svc *service.SupplierService
}

func (h *SupplierHTTP) GetSuppliers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "supplier.get_suppliers")

	res, err := h.Svc.List(ctx, transport.ParseListQuery(c.QueryParams()))
	if err != nil {
		return fail(l, "get_suppliers_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"data": res.Items, "meta": res.Meta})
}

func (h *SupplierHTTP) GetSupplier(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "supplier.get_supplier")

	sup, err := h.Svc.Get(ctx, c.Param("id"))
	if err != nil {
		return fail(l, "get_supplier_failed", err)
	}

	return c.JSON(http.StatusOK, sup)
}

func (h *SupplierHTTP) CreateSupplier(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "create_supplier")

	var req transport.CreateSupplierRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("supplier_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid body")
	}

	sup, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "supplier_create_error", err)
	}

	return c.JSON(http.StatusCreated, success(sup))
}

func (h *SupplierHTTP) PatchSupplier(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "patch_supplier")

	var req transport.PatchSupplierRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("supplier_patch_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid body")
	}

	sup, err := h.Svc.Update(ctx, c.Param("id"), req)
	if err != nil {
		return fail(l, "supplier_patch_error", err)
	}

	return c.JSON(http.StatusOK, success(sup))
}

func (h *SupplierHTTP) DeleteSupplier(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete_supplier")

	if err := h.Svc.Delete(ctx, c.Param("id")); err != nil {
		return fail(l, "supplier_delete_error", err)
	}

	return c.JSON(http.StatusOK, success(nil))
}
