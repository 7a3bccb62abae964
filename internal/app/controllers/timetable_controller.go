package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/services"
	"github.com/archiva/campusconnect/internal/middleware"
)

// TimetableController handles timetable views and admin timetable management.
type TimetableController struct {
	timetableService *services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService *services.TimetableService) *TimetableController {
	return &TimetableController{timetableService: timetableService}
}

// GetToday returns the staff member's periods for today with live statuses.
// Non-working days resolve to an empty timetable, not an error.
func (c *TimetableController) GetToday(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Email is required"))
		return
	}

	entries, err := c.timetableService.TodayForStaff(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TodayTimetableResponse{Envelope: dto.OK(""), TodayTimetable: entries})
}

// GetByStaffID returns a staff member's full weekly timetable by staff id.
func (c *TimetableController) GetByStaffID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("staffId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid staff ID"))
		return
	}

	entries, err := c.timetableService.ListByStaffID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TimetableResponse{Envelope: dto.OK(""), Timetable: entries})
}

// GetByStaffEmail returns a staff member's full weekly timetable by email.
func (c *TimetableController) GetByStaffEmail(ctx *gin.Context) {
	entries, err := c.timetableService.ListByStaff(ctx, ctx.Param("staff_email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TimetableResponse{Envelope: dto.OK(""), Timetable: entries})
}

// Create adds one timetable period.
func (c *TimetableController) Create(ctx *gin.Context) {
	var req dto.TimetableEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid timetable data"))
		return
	}

	entry, err := c.timetableService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "message": "Timetable entry added successfully", "entry": entry})
}

// Update rewrites one timetable period.
func (c *TimetableController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid timetable entry ID"))
		return
	}

	var req dto.TimetableEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid timetable data"))
		return
	}

	if err := c.timetableService.Update(ctx, id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Timetable entry updated successfully"))
}

// Delete removes one timetable period.
func (c *TimetableController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid timetable entry ID"))
		return
	}

	if err := c.timetableService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Timetable entry deleted successfully"))
}

// GetDepartmentClasses returns the distinct classes of a department for the
// department head's pickers.
func (c *TimetableController) GetDepartmentClasses(ctx *gin.Context) {
	classes, err := c.timetableService.ClassesByDepartment(ctx, ctx.Param("department"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ClassesResponse{Envelope: dto.OK(""), Classes: classes})
}

// GetMyClasses returns the distinct classes a staff member teaches.
func (c *TimetableController) GetMyClasses(ctx *gin.Context) {
	classes, err := c.timetableService.ClassesByStaff(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ClassesResponse{Envelope: dto.OK(""), Classes: classes})
}

// GetMyCourses returns the distinct class/course pairings a staff member
// teaches.
func (c *TimetableController) GetMyCourses(ctx *gin.Context) {
	courses, err := c.timetableService.CoursesByStaff(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CoursesResponse{Envelope: dto.OK(""), Courses: courses})
}
