package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/services"
	"github.com/archiva/campusconnect/internal/middleware"
	"github.com/archiva/campusconnect/internal/pkg/apperrors"
)

// AuthController handles login, profile, and credential endpoints.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login verifies credentials and returns the session profile.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Email and password are required"))
		return
	}

	user, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password both refuse with 401 but keep
		// their distinct messages.
		if errors.Is(err, apperrors.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.Fail("User not found"))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Envelope: dto.OK("Login successful"),
		User:     *user,
	})
}

// GetProfile returns the staff profile for the email, falling back to the
// bare user fields for accounts without a staff row.
func (c *AuthController) GetProfile(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Email is required"))
		return
	}

	staff, err := c.authService.GetStaffProfile(ctx, email)
	if err == nil {
		ctx.JSON(http.StatusOK, gin.H{"success": true, "profile": staff})
		return
	}
	if !errors.Is(err, apperrors.ErrProfileNotFound) {
		middleware.HandleAPIError(ctx, err)
		return
	}

	basic, err := c.authService.GetBasicProfile(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "profile": basic})
}

// UpdateProfilePicture stores the uploaded picture for the email.
func (c *AuthController) UpdateProfilePicture(ctx *gin.Context) {
	email := ctx.PostForm("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Email is required"))
		return
	}

	file, err := ctx.FormFile("profile_picture")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("No file uploaded"))
		return
	}

	path, err := c.authService.UpdateProfilePicture(ctx, email, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfilePictureResponse{
		Envelope: dto.OK("Profile picture updated successfully"),
		FilePath: path,
	})
}

// UpdatePassword replaces the account password.
func (c *AuthController) UpdatePassword(ctx *gin.Context) {
	var req dto.PasswordUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Email and password are required"))
		return
	}

	if err := c.authService.UpdatePassword(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK("Password updated successfully"))
}
