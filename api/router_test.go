package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/amazeing/api/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingController struct{}

func (pingController) RegisterPublic(r *gin.RouterGroup) {
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func (pingController) RegisterProtected(r *gin.RouterGroup) {
	r.DELETE("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func TestRouterHandler(t *testing.T) {
	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("amazeing_generated_total 1\n"))
	})

	h := NewRouter(Config{
		BaseURL:                 "/api",
		Mode:                    gin.TestMode,
		Controllers:             []i.Controller{pingController{}},
		AuthorizationMiddleware: deny,
		MetricsHandler:          metrics,
	}).Handler()

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/api/v1/ping", http.StatusOK},
		{http.MethodDelete, "/api/v1/ping", http.StatusUnauthorized},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/v2/ping", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.want, rec.Code, "%s %s", tt.method, tt.path)
	}
}
