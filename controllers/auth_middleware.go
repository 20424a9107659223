package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"learnhub/apperr"
	dbpkg "learnhub/db"
	"learnhub/services"

	"github.com/gin-gonic/gin"
)

const userIDHeader = "X-User-ID"

// IdentifyUser loads the acting user named by the X-User-ID header, with the
// role their phone grants. Requests without the header pass through
// anonymous; a header naming nobody is rejected.
func IdentifyUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(userIDHeader))
		if raw == "" {
			c.Next()
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}

		users := services.NewUserService(dbpkg.DBInstance(c), ConfigurationInstance(c).AdminPhone)
		user, err := users.Resolve(id)
		if apperr.Is(err, apperr.KindNotFound) {
			RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		if err != nil {
			RespondAppError(c, err)
			c.Abort()
			return
		}

		SetUserLogged(c, *user)
		c.Next()
	}
}
