package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/menu-service/internal/cache"
	"github.com/fekuna/menu-service/internal/model"
	"github.com/fekuna/menu-service/internal/submenu/usecase"
	"github.com/fekuna/menu-service/internal/testutil"
	"github.com/fekuna/menu-service/pkg/logger"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	store := testutil.NewStore()
	desc := ""
	menus := &testutil.MenuRepo{S: store}
	require.NoError(t, menus.Create(context.Background(), &model.Menu{ID: "m1", Title: "Food", Description: &desc}))

	log := logger.NewNop()
	uc := usecase.NewSubMenuUseCase(
		&testutil.SubMenuRepo{S: store},
		menus,
		cache.NewMemory(time.Minute),
		log,
	)

	mux := http.NewServeMux()
	NewSubMenuHandler(uc, log).Register(mux)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCreateSubMenu(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/v1/menus/m1/submenus", `{"title":"Drinks","description":"cold"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Drinks", created["title"])
	assert.Equal(t, "m1", created["menu_id"])
	assert.Equal(t, float64(0), created["dishes_count"])
}

func TestCreateSubMenuUnderMissingMenu(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/v1/menus/missing/submenus", `{"title":"T"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"menu not found"}`, rec.Body.String())
}

func TestGetSubMenuNotFoundDetail(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/v1/menus/m1/submenus/missing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"submenu not found"}`, rec.Body.String())
}

func TestDeleteSubMenuReturnsEmptyObject(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/v1/menus/m1/submenus", `{"title":"Drinks"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	rec = do(t, mux, http.MethodDelete, "/api/v1/menus/m1/submenus/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestListSubMenusPagination(t *testing.T) {
	mux := newTestMux(t)

	for _, title := range []string{"A", "B", "C"} {
		rec := do(t, mux, http.MethodPost, "/api/v1/menus/m1/submenus", `{"title":"`+title+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := do(t, mux, http.MethodGet, "/api/v1/menus/m1/submenus?skip=1&limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0]["title"])
}
