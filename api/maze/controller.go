package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/decor"
	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves maze generation and retrieval.
type MazeController struct {
	mazeService i.MazeService
	writeGuard  gin.HandlerFunc
}

// NewMazeController initializes a MazeController. writeGuard runs before mutating routes
// in addition to the router's authorization middleware; it may be nil.
func NewMazeController(ms i.MazeService, writeGuard gin.HandlerFunc) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze service is required")
	}
	return &MazeController{
		mazeService: ms,
		writeGuard:  writeGuard,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/themes", mc.themes)

	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", mc.mazeByID)
		mazes.GET("/:ID/ascii", mc.mazeASCII)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	if mc.writeGuard != nil {
		mazes.Use(mc.writeGuard)
	}
	{
		mazes.POST("", mc.generate)
		mazes.DELETE("/:ID", mc.delete)
	}
}

// themes lists the decoration themes with labels in the requested language.
func (mc *MazeController) themes(ctx *gin.Context) {
	lang, ok := language(ctx)
	if !ok {
		return
	}

	response := make([]ThemeResponse, 0, len(decor.ThemeNames))
	for _, name := range decor.ThemeNames {
		response = append(response, ThemeResponse{
			Name:   name,
			Label:  decor.Label(name, lang),
			Emojis: decor.Themes[name],
		})
	}
	ctx.JSON(http.StatusOK, response)
}

// generate handles maze creation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	lang, ok := language(ctx)
	if !ok {
		return
	}

	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeService.Generate(ctx.Request.Context(), request.params())
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	grid, err := record.Grid()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record, grid, lang))
}

// mazeByID returns a stored maze as JSON.
func (mc *MazeController) mazeByID(ctx *gin.Context) {
	lang, ok := language(ctx)
	if !ok {
		return
	}
	record, grid, ok := mc.load(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(record, grid, lang))
}

// mazeASCII returns a stored maze drawn as text.
func (mc *MazeController) mazeASCII(ctx *gin.Context) {
	_, grid, ok := mc.load(ctx)
	if !ok {
		return
	}
	ctx.String(http.StatusOK, "%s", grid.String())
}

// delete removes a stored maze.
func (mc *MazeController) delete(ctx *gin.Context) {
	ID, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := mc.mazeService.Delete(ctx.Request.Context(), ID); err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// load fetches the maze named by the ID path parameter, writing the error response on failure.
func (mc *MazeController) load(ctx *gin.Context) (*domain.Maze, *maze.Grid, bool) {
	ID, ok := parseID(ctx)
	if !ok {
		return nil, nil, false
	}

	record, err := mc.mazeService.ByID(ctx.Request.Context(), ID)
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return nil, nil, false
	}

	grid, err := record.Grid()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	return record, grid, true
}

// language reads the lang query parameter, writing a 400 response for unsupported codes.
func language(ctx *gin.Context) (string, bool) {
	lang := ctx.DefaultQuery("lang", decor.DefaultLanguage)
	if !decor.SupportedLanguage(lang) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":     "unsupported language",
			"languages": decor.Languages(),
		})
		return "", false
	}
	return lang, true
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return ID, true
}

// errStatus maps service errors to HTTP status codes.
func errStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrMazeNotFound):
		return http.StatusNotFound
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, domain.ErrDimensionTooLarge),
		errors.Is(err, domain.ErrUnknownPolicy),
		errors.Is(err, decor.ErrInvalidDensity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
