package identity

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubTokenizer struct {
	valid map[string]map[string]interface{}
}

func (s *stubTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return "", errors.New("not supported")
}

func (s *stubTokenizer) Decode(token string) (map[string]interface{}, error) {
	claims, ok := s.valid[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func newEngine(ts *stubTokenizer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", Authoriz(ts), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/managed", Authoriz(ts), RequireScope("mazes:manage"), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestAuthoriz(t *testing.T) {
	ts := &stubTokenizer{valid: map[string]map[string]interface{}{
		"reader":  {"sub": "r"},
		"manager": {"sub": "m", "scope": "mazes:read mazes:manage"},
	}}
	r := newEngine(ts)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no header", "/open", "", http.StatusUnauthorized},
		{"not bearer", "/open", "Basic abc", http.StatusUnauthorized},
		{"bad token", "/open", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "/open", "Bearer reader", http.StatusOK},
		{"case insensitive scheme", "/open", "bearer reader", http.StatusOK},
		{"missing scope", "/managed", "Bearer reader", http.StatusForbidden},
		{"granted scope", "/managed", "Bearer manager", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
