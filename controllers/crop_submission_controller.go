package controllers

import (
	"net/http"
	"strings"

	"crop-procurement-api/services"

	"github.com/gin-gonic/gin"
)

type CropSubmissionController struct {
	svc *services.CropSubmissionService
}

func NewCropSubmissionController(svc *services.CropSubmissionService) *CropSubmissionController {
	return &CropSubmissionController{svc: svc}
}

// List returns the caller's submissions (farmers) or all submissions (officers).
func (ctl *CropSubmissionController) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		unauthorized(c)
		return
	}

	items, total, err := ctl.svc.List(c.Request.Context(), actor, services.ListSubmissionsInput{
		Status:       strings.TrimSpace(c.Query("status")),
		AssignedToMe: strings.EqualFold(strings.TrimSpace(c.Query("assigned")), "me"),
		Limit:        queryInt(c, "limit", 20),
		Offset:       queryInt(c, "offset", 0),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

func (ctl *CropSubmissionController) Get(c *gin.Context) {
	sub, err := ctl.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"submission": sub})
}

func (ctl *CropSubmissionController) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req services.CreateSubmissionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error(), "kind": services.KindInvalidInput})
		return
	}

	sub, err := ctl.svc.Create(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Crop submission created successfully",
		"submission": sub,
	})
}

func (ctl *CropSubmissionController) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req services.SubmissionChanges
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error(), "kind": services.KindInvalidInput})
		return
	}

	sub, err := ctl.svc.Update(c.Request.Context(), c.Param("id"), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Crop submission updated successfully",
		"submission": sub,
	})
}

func (ctl *CropSubmissionController) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		unauthorized(c)
		return
	}

	if err := ctl.svc.Delete(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Crop submission deleted successfully"})
}
