package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/services"
	"github.com/archiva/campusconnect/internal/middleware"
)

// PushController handles browser push subscription and broadcast endpoints.
type PushController struct {
	pushService *services.PushService
}

// NewPushController creates a new PushController
func NewPushController(pushService *services.PushService) *PushController {
	return &PushController{pushService: pushService}
}

// SaveSubscription stores the browser's push subscription.
func (c *PushController) SaveSubscription(ctx *gin.Context) {
	raw, err := io.ReadAll(ctx.Request.Body)
	if err != nil || len(raw) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid push subscription"))
		return
	}

	if err := c.pushService.Subscribe(ctx, json.RawMessage(raw)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.OK("Subscription saved"))
}

// SendNotification broadcasts an announcement to every subscription.
func (c *PushController) SendNotification(ctx *gin.Context) {
	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	// The body is optional; an empty request sends the default announcement.
	_ = ctx.ShouldBindJSON(&req)
	if req.Title == "" {
		req.Title = "CampusConnect"
	}
	if req.Body == "" {
		req.Body = "You have a new notification"
	}

	sent, err := c.pushService.NotifyAll(ctx, req.Title, req.Body)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Notifications sent", "sent": sent})
}
