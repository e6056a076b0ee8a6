package handlers

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zambiatennis/ztaweb/database"
	"github.com/zambiatennis/ztaweb/pkg/flash"
)

const testSecret = "test-secret"

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	render, err := NewRenderer()
	require.NoError(t, err)
	return render
}

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrationsFS)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

// postForm submits an urlencoded form the way a browser would.
func postForm(t *testing.T, handler http.HandlerFunc, target string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

// popFlash decodes the flash cookie a handler set on rec, if any.
func popFlash(t *testing.T, rec *httptest.ResponseRecorder) *flash.Message {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "zta_flash" && c.MaxAge >= 0 {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(c)
			return flash.Pop(httptest.NewRecorder(), req, testSecret)
		}
	}
	return nil
}
