package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/services"
	"github.com/archiva/campusconnect/internal/middleware"
)

// maxLessonPlanFiles caps how many files one upload may carry.
const maxLessonPlanFiles = 10

// LessonPlanController handles lesson plan file endpoints.
type LessonPlanController struct {
	lessonPlanService *services.LessonPlanService
}

// NewLessonPlanController creates a new LessonPlanController
func NewLessonPlanController(lessonPlanService *services.LessonPlanService) *LessonPlanController {
	return &LessonPlanController{lessonPlanService: lessonPlanService}
}

// Upload stores up to ten files for one staff member and course.
func (c *LessonPlanController) Upload(ctx *gin.Context) {
	staffID, err := strconv.ParseInt(ctx.PostForm("staff_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("staff_id is required"))
		return
	}
	courseCode := ctx.PostForm("course_code")
	if courseCode == "" {
		ctx.JSON(http.StatusBadRequest, dto.Fail("course_code is required"))
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("No files uploaded"))
		return
	}
	files := form.File["lesson_plans"]
	if len(files) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.Fail("No files uploaded"))
		return
	}
	if len(files) > maxLessonPlanFiles {
		ctx.JSON(http.StatusBadRequest, dto.Fail("A maximum of 10 files can be uploaded at once"))
		return
	}

	plans, err := c.lessonPlanService.Upload(ctx, staffID, courseCode, files)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.LessonPlanFilesResponse{
		Envelope: dto.OK("Files uploaded successfully"),
		Files:    plans,
	})
}

// List returns one staff member's files for a course, newest first.
func (c *LessonPlanController) List(ctx *gin.Context) {
	staffID, err := strconv.ParseInt(ctx.Query("staff_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("staff_id is required"))
		return
	}

	files, err := c.lessonPlanService.List(ctx, staffID, ctx.Param("course_code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.LessonPlanFilesResponse{Envelope: dto.OK(""), Files: files})
}

// Delete removes one file record and its file on disk.
func (c *LessonPlanController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("file_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid file ID"))
		return
	}

	if err := c.lessonPlanService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("File deleted successfully"))
}
