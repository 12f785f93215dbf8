package cartControllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ReiKama414/mysterious-art-marketplace/catalog"
	"github.com/ReiKama414/mysterious-art-marketplace/models"
	"github.com/ReiKama414/mysterious-art-marketplace/prefs"
	"github.com/ReiKama414/mysterious-art-marketplace/routes"
	"github.com/ReiKama414/mysterious-art-marketplace/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	kv := storage.NewKV(db)
	require.NoError(t, kv.Migrate())

	cat := catalog.New([]models.Artwork{
		{ID: "1", Title: "Alpha", Artist: "Luna Martinez", ArtistID: "a1", Price: 100, Year: 2020},
		{ID: "2", Title: "Beta", Artist: "Kenji Tanaka", ArtistID: "a2", Price: 200, Year: 2021},
	}, []models.Artist{
		{ID: "a1", Name: "Luna Martinez"},
		{ID: "a2", Name: "Kenji Tanaka"},
	})

	r := gin.New()
	routes.SetupRoutes(r, routes.Deps{Catalog: cat, KV: kv, Prefs: prefs.NewStore(kv)})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) models.CartView {
	t.Helper()
	var view models.CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func TestCartAddAggregatesOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/guest/cart?guest_id=g1", `{"artwork_id":"1","quantity":1}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/guest/cart?guest_id=g1", `{"artwork_id":"1","quantity":2}`)
	require.Equal(t, http.StatusCreated, w.Code)

	view := decodeCart(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, 300.0, view.Total)
	assert.Equal(t, 3, view.ItemCount)
}

func TestCartQuantityBoundsEnforcedAtHTTPLayer(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/guest/cart?guest_id=g1", `{"artwork_id":"1","quantity":11}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/guest/cart?guest_id=g1", `{"artwork_id":"1","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartAddUnknownArtwork(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/guest/cart?guest_id=g1", `{"artwork_id":"999","quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "does not exist")
}

func TestCartRequiresGuestID(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/guest/cart", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "guest_id is required")
}

func TestCartUpdateZeroRemovesItem(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/guest/cart?guest_id=g1", `{"artwork_id":"1","quantity":3}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/guest/cart/1?guest_id=g1", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	view := decodeCart(t, w)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.Total)
}

func TestCartDeleteAndClear(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/guest/cart?guest_id=g1", `{"artwork_id":"1","quantity":1}`)
	doJSON(t, r, http.MethodPost, "/guest/cart?guest_id=g1", `{"artwork_id":"2","quantity":2}`)

	w := doJSON(t, r, http.MethodDelete, "/guest/cart/1?guest_id=g1", "")
	require.Equal(t, http.StatusOK, w.Code)
	view := decodeCart(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "2", view.Items[0].Artwork.ID)

	w = doJSON(t, r, http.MethodDelete, "/guest/cart?guest_id=g1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestCartPersistsAcrossRequests(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/guest/cart?guest_id=g1", `{"artwork_id":"2","quantity":2}`)

	w := doJSON(t, r, http.MethodGet, "/guest/cart?guest_id=g1", "")
	require.Equal(t, http.StatusOK, w.Code)
	view := decodeCart(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 400.0, view.Total)

	// Another guest sees an empty cart.
	w = doJSON(t, r, http.MethodGet, "/guest/cart?guest_id=g2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestGuestSession(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/guest/session", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["guest_id"])
}
