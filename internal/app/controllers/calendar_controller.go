package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/services"
	"github.com/archiva/campusconnect/internal/middleware"
)

// CalendarController handles the academic calendar endpoints.
type CalendarController struct {
	calendarService *services.CalendarService
}

// NewCalendarController creates a new CalendarController
func NewCalendarController(calendarService *services.CalendarService) *CalendarController {
	return &CalendarController{calendarService: calendarService}
}

// GetMonth returns a month's calendar entries.
func (c *CalendarController) GetMonth(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("year and month are required"))
		return
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil || month < 1 || month > 12 {
		ctx.JSON(http.StatusBadRequest, dto.Fail("year and month are required"))
		return
	}

	days, err := c.calendarService.Month(ctx, year, month)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CalendarMonthResponse{Envelope: dto.OK(""), Data: days})
}

// GetDay returns one date's entry, defaulting to a working day when the
// calendar has no row for it.
func (c *CalendarController) GetDay(ctx *gin.Context) {
	day, err := c.calendarService.Day(ctx, ctx.Param("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CalendarDayResponse{Envelope: dto.OK(""), Data: day})
}

// Update upserts one calendar entry.
func (c *CalendarController) Update(ctx *gin.Context) {
	var req dto.CalendarUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid calendar data"))
		return
	}

	if err := c.calendarService.Upsert(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Calendar updated successfully"))
}

// BulkImport upserts a batch of calendar entries, skipping malformed ones.
func (c *CalendarController) BulkImport(ctx *gin.Context) {
	var entries []dto.CalendarImportEntry
	if err := ctx.ShouldBindJSON(&entries); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Expected an array of calendar entries"))
		return
	}

	count, err := c.calendarService.BulkImport(ctx, entries)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(fmt.Sprintf("%d calendar entries imported successfully", count)))
}
