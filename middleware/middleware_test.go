package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterWithoutRedisPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(nil, 1, time.Minute, nil))
	r.GET("/ping", func(c *gin.Context) {
		_, limited := c.Get(models.ContextKeyRateLimiter)
		assert.False(t, limited)
		c.Status(http.StatusNoContent)
	})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, perform(r, http.MethodGet, "/ping").Code)
	}
}

func TestRateLimiterFailsOpenWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	core, logs := observer.New(zapcore.WarnLevel)
	r := gin.New()
	r.Use(RateLimiter(client, 1, time.Minute, zap.New(core)))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, perform(r, http.MethodGet, "/ping").Code)
	assert.Equal(t, 1, logs.Len())
}

func TestDataSourceTagsResponses(t *testing.T) {
	r := gin.New()
	r.Use(DataSource("memory"))
	r.GET("/things", func(c *gin.Context) {
		resp := models.SuccessResponse(c, "ok", nil)
		assert.Equal(t, "memory", resp.Source)
		assert.Equal(t, "GET /things", resp.RequestedEntity)
		c.JSON(http.StatusOK, resp)
	})

	w := perform(r, http.MethodGet, "/things")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"memory"`)
}

func TestRequestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	perform(r, http.MethodGet, "/ok")
	perform(r, http.MethodGet, "/boom")
	perform(r, http.MethodGet, "/missing")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, int64(500), entries[1].ContextMap()["status"])
}

func TestAdminActivityLoggerRecordsWritesOnly(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(AdminActivityLogger(zap.New(core)))
	r.GET("/api/v1/admin/banners", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.DELETE("/api/v1/admin/banners/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.PUT("/api/v1/admin/homepage-sections/reorder", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	perform(r, http.MethodGet, "/api/v1/admin/banners")
	perform(r, http.MethodDelete, "/api/v1/admin/banners/0190a5c2-0003-7000-8000-000000000001")
	perform(r, http.MethodPut, "/api/v1/admin/homepage-sections/reorder")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, "[activity] success", entries[0].Message)
	assert.Equal(t, "deleted_banner", entries[0].ContextMap()["action"])
	assert.Equal(t, "0190a5c2-0003-7000-8000-000000000001", entries[0].ContextMap()["resource_id"])

	assert.Equal(t, "[activity] failed", entries[1].Message)
	assert.Equal(t, "updated_homepage_section", entries[1].ContextMap()["action"])
}

func TestExtractResourceType(t *testing.T) {
	cases := map[string]string{
		"/api/v1/admin/promotions": "promotion",
		"/api/v1/admin/homepage-sections/0190a5c2-0002-7000-8000-000000000001/toggle": "homepage_section",
		"/api/v1/admin/homepage-sections/reorder":                                     "homepage_section",
		"/api/v1/store/products":                                                      "",
	}
	for path, want := range cases {
		assert.Equal(t, want, extractResourceType(path), path)
	}
}
