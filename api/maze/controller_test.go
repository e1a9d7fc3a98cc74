package mazeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze/api"
	"github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mazes   map[uuid.UUID]*domain.Maze
	saveErr error
}

func (r *memRepo) Save(_ context.Context, m *domain.Maze) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mazes[m.ID] = m
	return nil
}

func (r *memRepo) ByID(_ context.Context, id uuid.UUID) (*domain.Maze, error) {
	m, ok := r.mazes[id]
	if !ok {
		return nil, domain.ErrMazeNotFound
	}
	return m, nil
}

func (r *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.mazes[id]; !ok {
		return domain.ErrMazeNotFound
	}
	delete(r.mazes, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(t *testing.T, auth gin.HandlerFunc) (http.Handler, *memRepo) {
	t.Helper()
	repo := &memRepo{mazes: map[uuid.UUID]*domain.Maze{}}
	svc, err := service.NewMazeService(repo, nil, nopLogger{}, &service.MazeOptions{
		MaxDimension: 30,
		Seeder:       func() int64 { return 1 },
	})
	require.NoError(t, err)

	controller, err := NewMazeController(svc, nil)
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Controllers:             []i.Controller{controller},
		AuthorizationMiddleware: auth,
	})
	return router.Handler(), repo
}

func do(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGenerateAndFetch(t *testing.T) {
	h, repo := newServer(t, nil)

	rec := do(h, http.MethodPost, "/api/v1/mazes?lang=da", map[string]any{
		"cols": 6, "rows": 4, "seed": 9, "theme": "space", "density": 0.5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created MazeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 6, created.Cols)
	assert.Equal(t, 4, created.Rows)
	assert.Equal(t, int64(9), created.Seed)
	assert.Equal(t, "space", created.Theme)
	assert.Equal(t, "🌟 Rummet", created.ThemeLabel)
	require.Len(t, created.Cells, 4)
	for y, row := range created.Cells {
		require.Len(t, row, 6)
		assert.True(t, row[0].Walls.West)
		assert.True(t, row[5].Walls.East)
		for x, c := range row {
			assert.Equal(t, x, c.X)
			assert.Equal(t, y, c.Y)
		}
	}
	assert.Len(t, repo.mazes, 1)

	rec = do(h, http.MethodGet, "/api/v1/mazes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched MazeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.Cells, fetched.Cells)
	assert.Equal(t, "🌟 Space", fetched.ThemeLabel)

	rec = do(h, http.MethodGet, "/api/v1/mazes/"+created.ID+"/ascii", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	assert.Len(t, lines, 2*4+1)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))

	rec = do(h, http.MethodDelete, "/api/v1/mazes/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.mazes)

	rec = do(h, http.MethodGet, "/api/v1/mazes/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorStatuses(t *testing.T) {
	h, repo := newServer(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"malformed id", http.MethodGet, "/api/v1/mazes/not-a-uuid", nil, http.StatusBadRequest},
		{"unknown maze", http.MethodGet, "/api/v1/mazes/" + uuid.NewString(), nil, http.StatusNotFound},
		{"unknown maze ascii", http.MethodGet, "/api/v1/mazes/" + uuid.NewString() + "/ascii", nil, http.StatusNotFound},
		{"delete unknown maze", http.MethodDelete, "/api/v1/mazes/" + uuid.NewString(), nil, http.StatusNotFound},
		{"negative dimension", http.MethodPost, "/api/v1/mazes", map[string]any{"cols": -2, "rows": 2}, http.StatusBadRequest},
		{"too large", http.MethodPost, "/api/v1/mazes", map[string]any{"cols": 31, "rows": 2}, http.StatusBadRequest},
		{"unknown policy", http.MethodPost, "/api/v1/mazes", map[string]any{"cols": 2, "rows": 2, "policy": "prim"}, http.StatusBadRequest},
		{"bad density", http.MethodPost, "/api/v1/mazes", map[string]any{"cols": 2, "rows": 2, "density": 1.5}, http.StatusBadRequest},
		{"unsupported language", http.MethodGet, "/api/v1/themes?lang=xx", nil, http.StatusBadRequest},
		{"unsupported language on create", http.MethodPost, "/api/v1/mazes?lang=fr", map[string]any{"cols": 2, "rows": 2}, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/v1/mazes", "nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}

	t.Run("storage failure", func(t *testing.T) {
		repo.saveErr = errors.New("mongo down")
		defer func() { repo.saveErr = nil }()

		rec := do(h, http.MethodPost, "/api/v1/mazes", map[string]any{"cols": 2, "rows": 2})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestThemes(t *testing.T) {
	h, _ := newServer(t, nil)

	rec := do(h, http.MethodGet, "/api/v1/themes?lang=da", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var themes []ThemeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &themes))
	require.Len(t, themes, 6)
	assert.Equal(t, "treasure", themes[0].Name)
	assert.Equal(t, "💎 Skat", themes[0].Label)
	assert.NotEmpty(t, themes[0].Emojis)
}

func TestProtectedRoutes(t *testing.T) {
	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	h, repo := newServer(t, deny)

	rec := do(h, http.MethodPost, "/api/v1/mazes", map[string]any{"cols": 2, "rows": 2})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, repo.mazes)

	rec = do(h, http.MethodDelete, "/api/v1/mazes/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/themes", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
