package client

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	catalog_cache "github.com/abbu1809/Ecommerce-FL-React-sub003/cache"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/filtering"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/layout"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/routes"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := services.NewCatalogService(nil, catalog_cache.New(time.Minute), nil)
	require.NoError(t, err)
	sections, err := services.NewSectionService(nil, nil, nil)
	require.NoError(t, err)
	banners, err := services.NewBannerService(nil, nil)
	require.NoError(t, err)
	promotions, err := services.NewPromotionService(nil, nil)
	require.NoError(t, err)

	srv := httptest.NewServer(routes.NewRouter(routes.Deps{
		Catalog:    catalog,
		Sections:   sections,
		Banners:    banners,
		Promotions: promotions,
		Home:       services.NewHomeService(sections, banners, promotions),
	}))
	t.Cleanup(srv.Close)
	return srv
}

// deadURL points at a server that has already gone away.
func deadURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url + "/api/v1"
}

func TestProductsAgainstAPI(t *testing.T) {
	c := New(newAPI(t).URL + "/api/v1")

	state := filtering.NewState()
	state.ToggleBrand("Acme")
	res, err := c.Products(context.Background(), state, filtering.Query{SortBy: filtering.SortPriceLow}, 1, 10)
	require.NoError(t, err)

	assert.False(t, res.Fallback)
	require.Len(t, res.Data, 3)
	assert.Equal(t, "Acme Fast Charger 65W", res.Data[0].Name)
	require.NotNil(t, res.Meta)
	assert.Equal(t, 3, res.Meta.Total)
}

func TestProductsFallBackToDemoData(t *testing.T) {
	c := New(deadURL(t))

	state := filtering.NewState()
	state.ToggleBrand("Acme")
	res, err := c.Products(context.Background(), state, filtering.Query{SortBy: filtering.SortPriceLow}, 1, 10)
	require.NoError(t, err)

	assert.True(t, res.Fallback)
	require.Len(t, res.Data, 3)
	assert.Equal(t, "Acme Fast Charger 65W", res.Data[0].Name)
	assert.Equal(t, 3, res.Meta.Total)
}

func TestFallbackCanBeDisabled(t *testing.T) {
	c := New(deadURL(t), WithoutFallback())
	_, err := c.Facets(context.Background(), "mobiles")
	assert.Error(t, err)
}

func TestCancelledReadsDoNotFallBack(t *testing.T) {
	c := New(deadURL(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Sections(ctx)
	assert.Error(t, err)
}

func TestFacetsMatchBetweenAPIAndFallback(t *testing.T) {
	live, err := New(newAPI(t).URL+"/api/v1").Facets(context.Background(), "mobiles")
	require.NoError(t, err)
	offline, err := New(deadURL(t)).Facets(context.Background(), "mobiles")
	require.NoError(t, err)

	assert.False(t, live.Fallback)
	assert.True(t, offline.Fallback)
	assert.Equal(t, live.Data, offline.Data)
}

func TestClientErrorsAreNotMaskedByFallback(t *testing.T) {
	c := New(newAPI(t).URL + "/api/v1")
	_, err := c.Product(context.Background(), uuid.Must(uuid.NewV7()))
	assert.True(t, IsNotFound(err))

	rejecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid minPrice","error":true,"meta":null}`))
	}))
	t.Cleanup(rejecting.Close)

	res, err := New(rejecting.URL).Products(context.Background(), filtering.NewState(), filtering.Query{}, 1, 10)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "invalid minPrice", apiErr.Message)
	assert.False(t, res.Fallback)
}

func TestServerErrorsFallBack(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(failing.Close)

	res, err := New(failing.URL).Facets(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, 7, res.Data.Total)
}

func TestSectionWritesRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := New(newAPI(t).URL + "/api/v1")

	res, err := c.Sections(ctx)
	require.NoError(t, err)
	require.Len(t, res.Data, 5)

	moved, err := layout.MoveSection(res.Data, 2, 0)
	require.NoError(t, err)
	saved, err := c.ReorderSections(ctx, layout.OrderOf(moved))
	require.NoError(t, err)
	assert.Equal(t, res.Data[2].ID, saved[0].ID)

	toggled, err := c.ToggleSection(ctx, saved[0].ID)
	require.NoError(t, err)
	assert.Equal(t, !res.Data[2].Enabled, toggled.Enabled)

	err = c.DeleteSection(ctx, uuid.Must(uuid.NewV7()))
	assert.True(t, IsNotFound(err))
}

func TestWritesNeverFallBack(t *testing.T) {
	c := New(deadURL(t))
	_, err := c.ReorderSections(context.Background(), nil)
	assert.Error(t, err)
}

func TestHomeFallback(t *testing.T) {
	res, err := New(deadURL(t)).Home(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Len(t, res.Data.Sections, 4)
	assert.Len(t, res.Data.Banners, 2)
}

func TestPageOfHandlesHugePages(t *testing.T) {
	products := make([]models.Product, 5)

	assert.Len(t, pageOf(products, 1, 2), 2)
	assert.Len(t, pageOf(products, 3, 2), 1)
	assert.Empty(t, pageOf(products, 4, 2))
	assert.Empty(t, pageOf(products, math.MaxInt, 12))
	assert.Empty(t, pageOf(nil, 1, 12))
}
