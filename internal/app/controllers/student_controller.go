package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/services"
	"github.com/archiva/campusconnect/internal/middleware"
)

// StudentController handles student roster and admin student management
// endpoints.
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetRoster returns the slim class roster used by attendance and marks entry.
func (c *StudentController) GetRoster(ctx *gin.Context) {
	students, err := c.studentService.GetRoster(ctx, ctx.Param("department"), ctx.Param("year"), ctx.Param("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.RosterResponse{Envelope: dto.OK(""), Students: students})
}

// List returns every student record.
func (c *StudentController) List(ctx *gin.Context) {
	students, err := c.studentService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StudentsResponse{Envelope: dto.OK(""), Students: students})
}

// ListByClass returns the student records of one year/section.
func (c *StudentController) ListByClass(ctx *gin.Context) {
	students, err := c.studentService.ListByClass(ctx, ctx.Param("year"), ctx.Param("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StudentsResponse{Envelope: dto.OK(""), Students: students})
}

// GetByID returns one student record.
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid student ID"))
		return
	}

	student, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StudentResponse{Envelope: dto.OK(""), Student: *student})
}

// Create adds a student record.
func (c *StudentController) Create(ctx *gin.Context) {
	var req dto.SaveStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid student data"))
		return
	}

	student, err := c.studentService.Create(ctx, req.StudentData)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StudentResponse{
		Envelope: dto.OK("Student added successfully"),
		Student:  *student,
	})
}

// Update rewrites a student record.
func (c *StudentController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid student ID"))
		return
	}

	var req dto.SaveStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid student data"))
		return
	}

	if err := c.studentService.Update(ctx, id, req.StudentData); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Student updated successfully"))
}

// Delete removes a student record.
func (c *StudentController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid student ID"))
		return
	}

	if err := c.studentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Student deleted successfully"))
}
