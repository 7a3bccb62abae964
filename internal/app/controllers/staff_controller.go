package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/services"
	"github.com/archiva/campusconnect/internal/middleware"
)

// StaffController handles staff roster and admin staff management endpoints.
type StaffController struct {
	staffService *services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService *services.StaffService) *StaffController {
	return &StaffController{staffService: staffService}
}

// GetByDepartment returns the staff roster of one department.
func (c *StaffController) GetByDepartment(ctx *gin.Context) {
	staff, err := c.staffService.ListByDepartment(ctx, ctx.Param("department"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "staff": staff})
}

// GetDetails returns one staff profile by id.
func (c *StaffController) GetDetails(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("staffId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid staff ID"))
		return
	}

	staff, err := c.staffService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StaffResponse{Envelope: dto.OK(""), Staff: *staff})
}

// List returns every staff profile for the admin table.
func (c *StaffController) List(ctx *gin.Context) {
	staff, err := c.staffService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StaffCollectionResponse{Envelope: dto.OK(""), Staff: staff})
}

// ListBasic returns id/name/email for admin pickers.
func (c *StaffController) ListBasic(ctx *gin.Context) {
	items, err := c.staffService.ListBasic(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StaffListResponse{Envelope: dto.OK(""), StaffList: items})
}

// GetByID returns one staff profile for the admin edit form.
func (c *StaffController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid staff ID"))
		return
	}

	staff, err := c.staffService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StaffResponse{Envelope: dto.OK(""), Staff: *staff})
}

// Create adds a staff member with their user account.
func (c *StaffController) Create(ctx *gin.Context) {
	var req dto.SaveStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid staff data"))
		return
	}

	staff, err := c.staffService.Create(ctx, req.StaffData)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StaffResponse{
		Envelope: dto.OK("Staff member added successfully"),
		Staff:    *staff,
	})
}

// Update rewrites a staff profile and its account.
func (c *StaffController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid staff ID"))
		return
	}

	var req dto.SaveStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid staff data"))
		return
	}

	if err := c.staffService.Update(ctx, id, req.StaffData); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Staff member updated successfully"))
}

// Delete removes a staff member and their account.
func (c *StaffController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid staff ID"))
		return
	}

	if err := c.staffService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK("Staff member deleted successfully"))
}
