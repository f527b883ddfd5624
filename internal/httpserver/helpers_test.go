package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mgalihpp/inventory-dashboard/internal/config"
	pkgdb "github.com/mgalihpp/inventory-dashboard/internal/db"
	"github.com/mgalihpp/inventory-dashboard/internal/events"
	jwthelp "github.com/mgalihpp/inventory-dashboard/internal/jwt"
	"github.com/mgalihpp/inventory-dashboard/internal/repo"
	"github.com/mgalihpp/inventory-dashboard/internal/search"
	"github.com/mgalihpp/inventory-dashboard/internal/service"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Events *events.Recorder
	Auth   *service.AuthService
}

func InitTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	gdb, err := pkgdb.Open(ctx, config.Config{DBDriver: "sqlite", DatabaseURL: ":memory:"})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := pkgdb.Migrate(ctx, gdb); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func newTestEnv(t *testing.T, csrfEnabled bool) *testEnv {
	t.Helper()

	db := InitTestDB(t)
	rp := &repo.GormRepo{DB: db}
	rec := &events.Recorder{}
	authSvc := &service.AuthService{Repo: rp, JWTSecret: testSecret, Events: rec}

	e := echo.New()
	Register(e, &Deps{
		DB:               db,
		AuthHandler:      &AuthHTTP{Svc: authSvc},
		UserHandler:      &UserHTTP{Svc: &service.UserService{Repo: rp, Events: rec}},
		ProductHandler:   &ProductHTTP{Svc: &service.ProductService{Repo: rp, Events: rec, Index: search.Nop{}}},
		SupplierHandler:  &SupplierHTTP{Svc: &service.SupplierService{Repo: rp, Events: rec}},
		DashboardHandler: &DashboardHTTP{Svc: &service.DashboardService{Repo: rp}},
		JWTSecret:        testSecret,
		CSRFEnabled:      csrfEnabled,
	})

	return &testEnv{T: t, E: e, DB: db, Events: rec, Auth: authSvc}
}

func (env *testEnv) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doJSON(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return env.do(req, cookies...)
}

func (env *testEnv) doForm(method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return env.do(req, cookies...)
}

func (env *testEnv) doMultipart(method, path string, fields map[string]string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(env.T, w.WriteField(k, v))
	}
	require.NoError(env.T, w.Close())
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return env.do(req, cookies...)
}

// login registers a user and returns the session cookie issued by POST /auth/login.
func (env *testEnv) login(email, password string) *http.Cookie {
	env.T.Helper()

	_, err := env.Auth.Register(context.Background(), email, password)
	require.NoError(env.T, err)

	rec := env.doForm(http.MethodPost, "/auth/login", url.Values{"email": {email}, "password": {password}})
	require.Equal(env.T, http.StatusOK, rec.Code, rec.Body.String())

	ck := sessionCookie(rec)
	require.NotNil(env.T, ck)
	return &http.Cookie{Name: ck.Name, Value: ck.Value}
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == jwthelp.SessionCookie {
			return ck
		}
	}
	return nil
}

func decode[T any](t *testing.T, r io.Reader) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(r).Decode(&v))
	return v
}
