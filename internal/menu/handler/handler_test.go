package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/menu-service/internal/cache"
	"github.com/fekuna/menu-service/internal/menu/usecase"
	"github.com/fekuna/menu-service/internal/testutil"
	"github.com/fekuna/menu-service/pkg/logger"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	store := testutil.NewStore()
	log := logger.NewNop()
	uc := usecase.NewMenuUseCase(
		&testutil.MenuRepo{S: store},
		&testutil.SubMenuRepo{S: store},
		&testutil.DishRepo{S: store},
		cache.NewMemory(time.Minute),
		log,
	)

	mux := http.NewServeMux()
	NewMenuHandler(uc, log).Register(mux)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func TestMenuCRUD(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/v1/menus", `{"title":"My menu","description":"main"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var created map[string]any
	decode(t, rec, &created)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "My menu", created["title"])
	assert.Equal(t, float64(0), created["submenus_count"])

	rec = do(t, mux, http.MethodGet, "/api/v1/menus/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	decode(t, rec, &got)
	assert.Equal(t, id, got["id"])

	rec = do(t, mux, http.MethodPatch, "/api/v1/menus/"+id, `{"title":"Renamed","description":"x"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]any
	decode(t, rec, &updated)
	assert.Equal(t, "Renamed", updated["title"])

	rec = do(t, mux, http.MethodGet, "/api/v1/menus", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	decode(t, rec, &list)
	require.Len(t, list, 1)

	rec = do(t, mux, http.MethodDelete, "/api/v1/menus/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = do(t, mux, http.MethodGet, "/api/v1/menus/"+id, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMenuNotFoundDetail(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/v1/menus/missing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"menu not found"}`, rec.Body.String())
}

func TestPatchMenuNotFound(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPatch, "/api/v1/menus/missing", `{"title":"T"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"menu not found"}`, rec.Body.String())
}

func TestCreateMenuBadBody(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/v1/menus", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"invalid request body"}`, rec.Body.String())
}

func TestListMenusEmptyIsArray(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/v1/menus", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestMenuTreeEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/v1/menus", `{"title":"Food","description":""}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, mux, http.MethodGet, "/api/v1/menus/full", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tree []map[string]any
	decode(t, rec, &tree)
	require.Len(t, tree, 1)
	assert.Equal(t, "Food", tree[0]["title"])
	assert.NotNil(t, tree[0]["submenus"])
}
