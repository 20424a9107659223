package router

import (
	"net/http"

	"learnhub/controllers"

	"github.com/gin-gonic/gin"
)

// Authorizer blocks access when no user was identified for the request.
func Authorizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := controllers.GetUserLogged(c); !ok {
			controllers.RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}
