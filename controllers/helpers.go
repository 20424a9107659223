package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"learnhub/services"

	"github.com/gin-gonic/gin"
)

func ParamID(c *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, "Invalid "+label+" id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// QueryID reads an optional positive id from the query string. A nil id
// with ok set means the parameter was absent.
func QueryID(c *gin.Context, name, label string) (*int64, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, "Invalid "+label+" id", http.StatusBadRequest)
		return nil, false
	}
	return &id, true
}

// ParsePagination reads page and limit. Unparseable values fall back to the
// defaults instead of failing the request.
func ParsePagination(c *gin.Context, defaultLimit, maxLimit int) services.Page {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return services.NewPage(page, limit, defaultLimit, maxLimit)
}

// BindJSON decodes the request body, answering 400 when it is malformed.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
