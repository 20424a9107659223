package controllers

import (
	"net/http"

	dbpkg "learnhub/db"
	"learnhub/services"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name string `json:"name"`
}

func GetCategories(c *gin.Context) {
	categories, err := services.NewCategoryService(dbpkg.DBInstance(c)).List()
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, categories)
}

func GetCategoryByID(c *gin.Context) {
	id, ok := ParamID(c, "id", "category")
	if !ok {
		return
	}
	category, err := services.NewCategoryService(dbpkg.DBInstance(c)).Get(id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, category)
}

func CreateCategory(c *gin.Context) {
	var req categoryRequest
	if !BindJSON(c, &req) {
		return
	}
	category, err := services.NewCategoryService(dbpkg.DBInstance(c)).Create(req.Name)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, category)
}

func UpdateCategory(c *gin.Context) {
	id, ok := ParamID(c, "id", "category")
	if !ok {
		return
	}
	var req categoryRequest
	if !BindJSON(c, &req) {
		return
	}
	category, err := services.NewCategoryService(dbpkg.DBInstance(c)).Rename(id, req.Name)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, category)
}

func DeleteCategory(c *gin.Context) {
	id, ok := ParamID(c, "id", "category")
	if !ok {
		return
	}
	if err := services.NewCategoryService(dbpkg.DBInstance(c)).Delete(id); err != nil {
		RespondAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCategorySubCategories lists the sub-categories of an existing category.
func GetCategorySubCategories(c *gin.Context) {
	id, ok := ParamID(c, "id", "category")
	if !ok {
		return
	}
	database := dbpkg.DBInstance(c)
	if _, err := services.NewCategoryService(database).Get(id); err != nil {
		RespondAppError(c, err)
		return
	}
	subs, err := services.NewSubCategoryService(database).List(&id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, subs)
}
