package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devbook/internal/config"
	"github.com/devbook/internal/db"
)

func setupTestRouter(t *testing.T, cfg config.AppConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(fmt.Sprintf("file:router-%s?mode=memory&cache=shared", uuid.NewString()), nil)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	r, err := SetupRouter(gdb, cfg, nil)
	require.NoError(t, err)
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestSetupRouterServesUploads(t *testing.T) {
	uploadDir := t.TempDir()
	fileContent := []byte("hello uploads")
	require.NoError(t, os.WriteFile(filepath.Join(uploadDir, "example.txt"), fileContent, 0o644))

	r := setupTestRouter(t, config.AppConfig{UploadDir: uploadDir, UploadURLPath: "/static/uploads"})

	rec := serve(r, http.MethodGet, "/static/uploads/example.txt")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(fileContent), rec.Body.String())
}

func TestSetupRouterPublicRoutes(t *testing.T) {
	r := setupTestRouter(t, config.AppConfig{})

	rec := serve(r, http.MethodGet, "/ping")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())

	rec = serve(r, http.MethodGet, "/tecnologias?lang=en")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No technologies yet.")
	assert.Contains(t, rec.Body.String(), `<html lang="en-US">`)

	rec = serve(r, http.MethodGet, "/tecnologias/nada/modulos")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "A página que você procura não existe.")

	rec = serve(r, http.MethodGet, "/assets/css/devbook.css")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, http.MethodGet, "/login")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="login-form"`)
}

func TestSetupRouterGuardsAdmin(t *testing.T) {
	r := setupTestRouter(t, config.AppConfig{})

	for _, path := range []string{
		"/admin/api/technologies",
		"/admin/api/technology-categories",
		"/admin/api/editor/draft/paragraph",
	} {
		rec := serve(r, http.MethodGet, path)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := serve(r, http.MethodGet, "/admin/posts/new")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?next=%2Fadmin%2Fposts%2Fnew", rec.Header().Get("Location"))
}
