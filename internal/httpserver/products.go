package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mgalihpp/inventory-dashboard/internal/logging"
	"github.com/mgalihpp/inventory-dashboard/internal/service"
	"github.com/mgalihpp/inventory-dashboard/internal/transport"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	res, err := h.Svc.List(ctx, transport.ParseListQuery(c.QueryParams()))
	if err != nil {
		return fail(l, "get_products_error", err)
	}

	l.Info("get_products_success", "total", res.Total)
	return c.JSON(http.StatusOK, echo.Map{"data": res.Items, "meta": res.Meta})
}

func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	q := transport.ParseListQuery(c.QueryParams())
	q.Filter = c.QueryParam("q")

	res, err := h.Svc.Search(ctx, q)
	if err != nil {
		return fail(l, "search_products_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"data": res.Items, "meta": res.Meta})
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	prod, err := h.Svc.Get(ctx, c.Param("id"))
	if err != nil {
		return fail(l, "get_product_failed", err)
	}

	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "create_product")

	var req transport.CreateProductRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid body")
	}

	prod, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "product_create_error", err)
	}

	l.Info("create_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusCreated, success(prod))
}

func (h *ProductHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "patch_product")

	var req transport.PatchProductRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("product_patch_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid body")
	}

	prod, err := h.Svc.Update(ctx, c.Param("id"), req)
	if err != nil {
		return fail(l, "product_patch_error", err)
	}

	l.Info("patch_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, success(prod))
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete_product")

	if err := h.Svc.Delete(ctx, c.Param("id")); err != nil {
		return fail(l, "product_delete_error", err)
	}

	l.Info("delete_product_success")
	return c.JSON(http.StatusOK, success(nil))
}
