package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/services"
	"github.com/archiva/campusconnect/internal/middleware"
)

// AttendanceController handles attendance capture and the department head's
// review and report views.
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// Save stores one period's attendance batch.
func (c *AttendanceController) Save(ctx *gin.Context) {
	var req dto.AttendanceSaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid attendance data"))
		return
	}

	if err := c.attendanceService.SaveBatch(ctx, req.AttendanceData); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Attendance saved successfully"))
}

// GetRecent returns the class roster plus the last days of attendance.
func (c *AttendanceController) GetRecent(ctx *gin.Context) {
	roster, records, err := c.attendanceService.RecentForClass(ctx,
		ctx.Param("department"), ctx.Param("year"), ctx.Param("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.HODAttendanceResponse{
		Envelope:   dto.OK(""),
		Students:   roster,
		Attendance: records,
	})
}

// GetReport aggregates attendance over an inclusive date range.
func (c *AttendanceController) GetReport(ctx *gin.Context) {
	fromDate := ctx.Query("fromDate")
	toDate := ctx.Query("toDate")
	if fromDate == "" || toDate == "" {
		ctx.JSON(http.StatusBadRequest, dto.Fail("fromDate and toDate are required"))
		return
	}

	report, holidays, err := c.attendanceService.Report(ctx,
		ctx.Param("department"), ctx.Param("year"), ctx.Param("section"), fromDate, toDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AttendanceReportResponse{
		Envelope: dto.OK(""),
		Report:   report,
		Holidays: holidays,
	})
}
