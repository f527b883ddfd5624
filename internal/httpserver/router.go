package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	pkgdb "github.com/mgalihpp/inventory-dashboard/internal/db"
	"github.com/mgalihpp/inventory-dashboard/internal/middleware/auth"
	"github.com/mgalihpp/inventory-dashboard/internal/middleware/csrf"
)

type Deps struct {
	DB *gorm.DB

	AuthHandler      *AuthHTTP
	UserHandler      *UserHTTP
	ProductHandler   *ProductHTTP
	SupplierHandler  *SupplierHTTP
	DashboardHandler *DashboardHTTP

	JWTSecret    []byte
	CookieSecure bool
	CSRFEnabled  bool
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if err := pkgdb.Ping(c.Request().Context(), d.DB); err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
		}
		return c.NoContent(http.StatusOK)
	})

	authGroup := e.Group("/auth")
	authGroup.GET("/login", d.AuthHandler.LoginPage)
	authGroup.POST("/login", d.AuthHandler.Login)
	authGroup.POST("/register", d.AuthHandler.Register)
	authGroup.POST("/logout", d.AuthHandler.Logout)

	session := auth.NewSession(d.JWTSecret, d.CookieSecure)

	e.GET("/", d.DashboardHandler.Home, session.RequireSession)
	e.GET("/dashboard", d.DashboardHandler.Dashboard, session.RequireSession)

	api := e.Group("/api", session.RequireSession)
	if d.CSRFEnabled {
		api.Use(csrf.Middleware(csrf.Config{Secure: d.CookieSecure}))
	}

	users := api.Group("/users")
	users.GET("", d.UserHandler.GetUsers)
	users.POST("", d.UserHandler.CreateUser)
	users.GET("/:id", d.UserHandler.GetUser)
	users.PATCH("/:id", d.UserHandler.PatchUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser)

	products := api.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/search", d.ProductHandler.SearchProducts)
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PATCH("/:id", d.ProductHandler.PatchProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	suppliers := api.Group("/suppliers")
	suppliers.GET("", d.SupplierHandler.GetSuppliers)
	suppliers.POST("", d.SupplierHandler.CreateSupplier)
	suppliers.GET("/:id", d.SupplierHandler.GetSupplier)
	suppliers.PATCH("/:id", d.SupplierHandler.PatchSupplier)
	suppliers.DELETE("/:id", d.SupplierHandler.DeleteSupplier)
}
