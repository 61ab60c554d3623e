package controllers

import (
	"net/http"

	"crop-procurement-api/services"

	"github.com/gin-gonic/gin"
)

// NotificationController is the read surface for notifications raised by
// the submission workflow.
type NotificationController struct {
	svc *services.NotificationService
}

func NewNotificationController(svc *services.NotificationService) *NotificationController {
	return &NotificationController{svc: svc}
}

func (ctl *NotificationController) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		unauthorized(c)
		return
	}

	items, unread, err := ctl.svc.List(c.Request.Context(), actor,
		queryBool(c, "unreadOnly"),
		queryInt(c, "limit", 20),
		queryInt(c, "offset", 0),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "unread": unread})
}

func (ctl *NotificationController) MarkRead(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		unauthorized(c)
		return
	}

	if err := ctl.svc.MarkRead(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
