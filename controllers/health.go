package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	RespondSuccess(c, gin.H{"status": "ok", "message": "Learning platform API is running"})
}

func RouteNotFound(c *gin.Context) {
	RespondError(c, "Route not found", http.StatusNotFound)
}
