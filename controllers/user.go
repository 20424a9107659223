package controllers

import (
	"errors"
	"net/http"

	dbpkg "learnhub/db"
	"learnhub/services"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func userService(c *gin.Context) *services.UserService {
	return services.NewUserService(dbpkg.DBInstance(c), ConfigurationInstance(c).AdminPhone)
}

func CreateUser(c *gin.Context) {
	var req credentialsRequest
	if !BindJSON(c, &req) {
		return
	}

	user, err := userService(c).Register(req.Name, req.Phone)
	if errors.Is(err, services.ErrUserExists) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "user_exists": true})
		return
	}
	if err != nil {
		RespondAppError(c, err)
		return
	}
	LoggerInstance(c).Info("user registered", "user_id", user.ID, "role", user.Role)
	RespondCreated(c, user)
}

func Login(c *gin.Context) {
	var req credentialsRequest
	if !BindJSON(c, &req) {
		return
	}

	user, err := userService(c).Login(req.Name, req.Phone)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, user)
}

func GetUsers(c *gin.Context) {
	page := ParsePagination(c, 10, 100)
	users, err := userService(c).List(c.Query("q"), page)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, users)
}

func GetUserByID(c *gin.Context) {
	id, ok := ParamID(c, "id", "user")
	if !ok {
		return
	}
	user, err := userService(c).Get(id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, user)
}

func UpdateUser(c *gin.Context) {
	id, ok := ParamID(c, "id", "user")
	if !ok {
		return
	}
	var req services.UpdateUserInput
	if !BindJSON(c, &req) {
		return
	}

	user, err := userService(c).Update(id, req)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, user)
}

func DeleteUser(c *gin.Context) {
	id, ok := ParamID(c, "id", "user")
	if !ok {
		return
	}
	if err := userService(c).Delete(id); err != nil {
		RespondAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
