// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves generated mazes.
type MazeController struct {
	mazeService i.MazeService
	protect     []gin.HandlerFunc
}

// NewMazeController initializes a MazeController. protect runs before the
// protected handlers, after the router's authorization middleware.
func NewMazeController(ms i.MazeService, protect ...gin.HandlerFunc) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze controller: nil maze service")
	}
	return &MazeController{
		mazeService: ms,
		protect:     protect,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/file", mc.file)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes", mc.protect...)
	{
		mazes.DELETE("/:ID", mc.delete)
	}
}

// generate handles maze creation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := mc.mazeService.Generate(ctx.Request.Context(), request.Options())
	if err != nil {
		if fields := fieldErrors(err); len(fields) > 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze options", "fields": fields})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, rec)
}

// byID returns a stored maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	ID, ok := mazeID(ctx)
	if !ok {
		return
	}
	rec, err := mc.mazeService.ByID(ctx.Request.Context(), ID)
	if err != nil {
		writeLookupError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rec)
}

// file returns a stored maze in the maze file format.
func (mc *MazeController) file(ctx *gin.Context) {
	ID, ok := mazeID(ctx)
	if !ok {
		return
	}
	rec, err := mc.mazeService.ByID(ctx.Request.Context(), ID)
	if err != nil {
		writeLookupError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+rec.ID.String()+`.txt"`)
	ctx.String(http.StatusOK, rec.File)
}

// delete removes a stored maze.
func (mc *MazeController) delete(ctx *gin.Context) {
	ID, ok := mazeID(ctx)
	if !ok {
		return
	}
	if err := mc.mazeService.Delete(ctx.Request.Context(), ID); err != nil {
		writeLookupError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return ID, true
}

func writeLookupError(ctx *gin.Context, err error) {
	if errors.Is(err, i.ErrMazeNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
}

// fieldErrors flattens the validation failures carried by err.
func fieldErrors(err error) []FieldErrorResponse {
	var out []FieldErrorResponse
	var joined interface{ Unwrap() []error }
	errs := []error{err}
	if errors.As(err, &joined) {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		var fe *maze.FieldError
		if errors.As(e, &fe) {
			out = append(out, FieldErrorResponse{Field: fe.Field, Reason: strings.TrimSpace(fe.Reason)})
		}
	}
	return out
}
