package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/services"
	"github.com/archiva/campusconnect/internal/middleware"
)

// MarksController handles the internal marks entry screen.
type MarksController struct {
	marksService *services.MarksService
}

// NewMarksController creates a new MarksController
func NewMarksController(marksService *services.MarksService) *MarksController {
	return &MarksController{marksService: marksService}
}

// GetRoster returns the class roster joined with saved marks.
func (c *MarksController) GetRoster(ctx *gin.Context) {
	students, err := c.marksService.Roster(ctx,
		ctx.Param("department"), ctx.Param("year"), ctx.Param("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MarksRosterResponse{Envelope: dto.OK(""), Students: students})
}

// Save upserts the class's marks batch.
func (c *MarksController) Save(ctx *gin.Context) {
	var req dto.MarksSaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid marks data"))
		return
	}

	if err := c.marksService.SaveBatch(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Marks saved successfully"))
}
