package routes

import (
	"errors"
	"io"
	"log"
	"net/http"

	"stickynotes/notes/models"
	"stickynotes/notes/services"

	"github.com/gin-gonic/gin"
)

func RegisterNoteRoutes(router gin.IRouter, noteService services.NoteServiceInterface) {
	// Collection endpoints
	router.GET("/notes", func(c *gin.Context) { GetNotes(c, noteService) })
	router.POST("/notes", func(c *gin.Context) { CreateNote(c, noteService) })

	// Resource-specific endpoints
	router.GET("/notes/:id", func(c *gin.Context) { GetNoteById(c, noteService) })
	router.PATCH("/notes/:id", func(c *gin.Context) { UpdateNote(c, noteService) })
	router.DELETE("/notes/:id", func(c *gin.Context) { DeleteNote(c, noteService) })
}

func CreateNote(c *gin.Context, noteService services.NoteServiceInterface) {
	var input models.NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	note, err := noteService.CreateNote(c.Request.Context(), input)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func GetNotes(c *gin.Context, noteService services.NoteServiceInterface) {
	notes, err := noteService.GetNotes(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func GetNoteById(c *gin.Context, noteService services.NoteServiceInterface) {
	note, err := noteService.GetNoteById(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func UpdateNote(c *gin.Context, noteService services.NoteServiceInterface) {
	var update models.NoteUpdate
	// An empty body is an update with no fields.
	if hasBody(c.Request) {
		if err := c.ShouldBindJSON(&update); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	note, err := noteService.UpdateNote(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func DeleteNote(c *gin.Context, noteService services.NoteServiceInterface) {
	if err := noteService.DeleteNote(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}

func respondWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
