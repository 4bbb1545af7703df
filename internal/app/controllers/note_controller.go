package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozgur/notesphere/internal/app/models/dto"
	"github.com/ozgur/notesphere/internal/app/services"
	"github.com/ozgur/notesphere/internal/middleware"
	"github.com/ozgur/notesphere/internal/pkg/apperrors"
	"github.com/ozgur/notesphere/internal/pkg/logger"
)

// NoteController handles the staff note upload and delete endpoints
type NoteController struct {
	noteService services.NoteService
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService services.NoteService) *NoteController {
	return &NoteController{
		noteService: noteService,
	}
}

// CreateNote godoc
// @Summary Upload a note
// @Description Upload a note file into a subject and chapter of an academic year. Staff only.
// @Tags notes
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Note title"
// @Param subject formData string true "Subject name"
// @Param year formData int true "Academic year"
// @Param chapter formData string true "Chapter name"
// @Param file formData file true "Note file"
// @Param subject_image formData file false "Subject cover image"
// @Param chapter_image formData file false "Chapter cover image"
// @Success 201 {object} dto.APIResponse{data=dto.NoteResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Security BearerAuth
// @Router /notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	c.createNote(ctx, false)
}

// CreateQuantumNote godoc
// @Summary Upload a quantum note
// @Description Upload a quantum note file. The subject is created in the quantum pool of its year. Staff only.
// @Tags notes
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Note title"
// @Param subject formData string true "Subject name"
// @Param year formData int true "Academic year"
// @Param chapter formData string true "Chapter name"
// @Param file formData file true "Note file"
// @Param subject_image formData file false "Subject cover image"
// @Param chapter_image formData file false "Chapter cover image"
// @Success 201 {object} dto.APIResponse{data=dto.NoteResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Security BearerAuth
// @Router /quantum-notes [post]
func (c *NoteController) CreateQuantumNote(ctx *gin.Context) {
	c.createNote(ctx, true)
}

func (c *NoteController) createNote(ctx *gin.Context, isQuantum bool) {
	var req dto.CreateNoteRequest
	if err := ctx.ShouldBind(&req); err != nil {
		logger.Debug().Err(err).Msg("Invalid note upload form")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid upload form: "+err.Error()),
		})
		return
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	upload := &services.NoteUpload{Request: &req}
	if file, err := ctx.FormFile("file"); err == nil {
		upload.File = file
	}
	if img, err := ctx.FormFile("subject_image"); err == nil {
		upload.SubjectImage = img
	}
	if img, err := ctx.FormFile("chapter_image"); err == nil {
		upload.ChapterImage = img
	}

	note, err := c.noteService.CreateNote(ctx.Request.Context(), upload, isQuantum, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: note})
}

// DeleteNote godoc
// @Summary Delete a note
// @Description Delete a note and its stored file. Staff only.
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteNoteResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid note ID"),
		})
		return
	}

	result, err := c.noteService.DeleteNote(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: result})
}
