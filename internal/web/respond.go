// Package web holds the JSON error shapes shared by every controller.
// The API uses two: a flat {"error": "..."} for auth and policy failures and
// a nested {"error": {"message": "..."}} for request-body validation and
// missing resources.
package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Error answers with the flat error shape.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// FieldError answers with the nested error shape.
func FieldError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": gin.H{"message": message}})
}

// MissingField answers the 400 contract for an absent request-body field.
func MissingField(c *gin.Context, field string) {
	FieldError(c, http.StatusBadRequest, fmt.Sprintf("Missing '%s' in request body", field))
}

// NotFound answers the 404 contract for an absent resource.
func NotFound(c *gin.Context, message string) {
	FieldError(c, http.StatusNotFound, message)
}

// ServerError logs err and answers 500. The detail is echoed only in debug
// mode; release builds suppress it.
func ServerError(c *gin.Context, err error) {
	logrus.WithError(err).Error("Unexpected server error")

	if gin.Mode() == gin.ReleaseMode {
		FieldError(c, http.StatusInternalServerError, "server error")
		return
	}
	FieldError(c, http.StatusInternalServerError, err.Error())
}
