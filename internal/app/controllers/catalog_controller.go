// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ozgur/notesphere/internal/app/models/dto"
	"github.com/ozgur/notesphere/internal/app/services"
	"github.com/ozgur/notesphere/internal/middleware"
)

// parseIDParam parses an ID parameter from the request path
func parseIDParam(ctx *gin.Context, paramName string) (int64, error) {
	idStr := ctx.Param(paramName)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id parameter")
	}
	return id, nil
}

// CatalogController handles the public browse endpoints
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// Home godoc
// @Summary Home listing
// @Description Get the 5 most recently uploaded notes system-wide
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HomeResponse}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /home [get]
func (c *CatalogController) Home(ctx *gin.Context) {
	home, err := c.catalogService.Home(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: home})
}

// YearListing godoc
// @Summary Notes of one academic year
// @Description Get the non-quantum subjects of a year, each with its notes newest first
// @Tags catalog
// @Produce json
// @Param year path int true "Academic year (1-4)"
// @Success 200 {object} dto.APIResponse{data=dto.YearListingResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /years/{year} [get]
func (c *CatalogController) YearListing(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil || year < 1 {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid year"),
		})
		return
	}

	listing, err := c.catalogService.YearListing(ctx.Request.Context(), year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: listing})
}

// QuantumListing godoc
// @Summary Quantum notes grouped by year
// @Description Get quantum notes pooled per year, years ascending, notes newest first
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.QuantumListingResponse}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /quantum [get]
func (c *CatalogController) QuantumListing(ctx *gin.Context) {
	listing, err := c.catalogService.QuantumListing(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: listing})
}

// SubjectNotes godoc
// @Summary One subject and its notes
// @Description Get a subject by ID with its notes newest first
// @Tags catalog
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectNotesResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /subjects/{id} [get]
func (c *CatalogController) SubjectNotes(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid subject ID"),
		})
		return
	}

	subject, err := c.catalogService.SubjectNotes(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: subject})
}
