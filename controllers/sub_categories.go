package controllers

import (
	"net/http"

	dbpkg "learnhub/db"
	"learnhub/services"

	"github.com/gin-gonic/gin"
)

type subCategoryRequest struct {
	Name       string `json:"name"`
	CategoryID int64  `json:"category_id"`
}

func GetSubCategories(c *gin.Context) {
	categoryID, ok := QueryID(c, "categoryId", "category")
	if !ok {
		return
	}
	subs, err := services.NewSubCategoryService(dbpkg.DBInstance(c)).List(categoryID)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, subs)
}

func GetSubCategoryByID(c *gin.Context) {
	id, ok := ParamID(c, "id", "sub-category")
	if !ok {
		return
	}
	sub, err := services.NewSubCategoryService(dbpkg.DBInstance(c)).Get(id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, sub)
}

func CreateSubCategory(c *gin.Context) {
	var req subCategoryRequest
	if !BindJSON(c, &req) {
		return
	}
	sub, err := services.NewSubCategoryService(dbpkg.DBInstance(c)).Create(req.Name, req.CategoryID)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, sub)
}

func UpdateSubCategory(c *gin.Context) {
	id, ok := ParamID(c, "id", "sub-category")
	if !ok {
		return
	}
	var req services.UpdateSubCategoryInput
	if !BindJSON(c, &req) {
		return
	}
	sub, err := services.NewSubCategoryService(dbpkg.DBInstance(c)).Update(id, req)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, sub)
}

func DeleteSubCategory(c *gin.Context) {
	id, ok := ParamID(c, "id", "sub-category")
	if !ok {
		return
	}
	if err := services.NewSubCategoryService(dbpkg.DBInstance(c)).Delete(id); err != nil {
		RespondAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
