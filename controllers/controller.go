package controllers

import (
	"net/http"

	"learnhub/apperr"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

// RespondAppError renders err with the status of its kind. Internal errors
// are logged and never shown to the client.
func RespondAppError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		LoggerInstance(c).Error("request failed", "path", c.FullPath(), "error", err)
		RespondError(c, internalErrorMessage, status)
		return
	}
	RespondError(c, err.Error(), status)
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
