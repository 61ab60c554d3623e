package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"crop-procurement-api/middleware"
	"crop-procurement-api/services"

	"github.com/gin-gonic/gin"
)

func currentActor(c *gin.Context) (services.Actor, bool) {
	actor := services.Actor{
		UserID:   c.GetString(middleware.ContextUserID),
		UserType: c.GetString(middleware.ContextUserType),
	}
	return actor, actor.UserID != ""
}

var statusByKind = map[services.ErrorKind]int{
	services.KindNotFound:     http.StatusNotFound,
	services.KindForbidden:    http.StatusForbidden,
	services.KindInvalidState: http.StatusBadRequest,
	services.KindInvalidInput: http.StatusBadRequest,
}

// respondError maps service errors to HTTP. Unclassified errors are logged
// and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	kind := services.KindOf(err)
	if status, ok := statusByKind[kind]; ok {
		c.JSON(status, gin.H{"error": err.Error(), "kind": kind})
		return
	}

	log.Printf("[http] %s %s failed (request=%s): %v",
		c.Request.Method, c.FullPath(), c.GetString(middleware.ContextRequestID), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "kind": services.KindInternal})
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "kind": "unauthorized"})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func queryBool(c *gin.Context, key string) bool {
	raw := strings.TrimSpace(c.Query(key))
	return raw == "1" || strings.EqualFold(raw, "true")
}
