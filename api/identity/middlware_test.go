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
	claims map[string]interface{}
}

func (s stubTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return "good", nil
}

func (s stubTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != "good" {
		return nil, errors.New("invalid token")
	}
	return s.claims, nil
}

func newEngine(claims map[string]interface{}) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authoriz(stubTokenizer{claims: claims}), RequireScope(ScopeMazeWrite))
	r.POST("/mazes", func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r
}

func TestAuthoriz(t *testing.T) {
	writer := map[string]interface{}{ScopeClaim: "maze:read maze:write"}
	reader := map[string]interface{}{ScopeClaim: "maze:read"}

	tests := []struct {
		name   string
		claims map[string]interface{}
		header string
		want   int
	}{
		{"missing header", writer, "", http.StatusUnauthorized},
		{"wrong scheme", writer, "Basic good", http.StatusUnauthorized},
		{"no token", writer, "Bearer", http.StatusUnauthorized},
		{"invalid token", writer, "Bearer bad", http.StatusUnauthorized},
		{"missing scope", reader, "Bearer good", http.StatusForbidden},
		{"no scope claim", map[string]interface{}{}, "Bearer good", http.StatusForbidden},
		{"granted", writer, "bearer good", http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/mazes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			newEngine(tt.claims).ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
