package services_test

import (
	"testing"

	"learnhub/apperr"
	"learnhub/models"
	"learnhub/services"
	"learnhub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := services.NewCategoryService(database)

	science, err := svc.Create("  Science ")
	require.NoError(t, err)
	assert.Equal(t, "Science", science.Name)
	_, err = svc.Create("Art")
	require.NoError(t, err)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Art", list[0].Name)

	renamed, err := svc.Rename(science.ID, "Sciences")
	require.NoError(t, err)
	assert.Equal(t, "Sciences", renamed.Name)

	require.NoError(t, svc.Delete(science.ID))
	_, err = svc.Get(science.ID)
	assert.EqualError(t, err, "Category not found")
	assert.True(t, apperr.Is(svc.Delete(science.ID), apperr.KindNotFound))
}

func TestCategoryNameConflict(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := services.NewCategoryService(database)

	_, err := svc.Create("Science")
	require.NoError(t, err)
	art, err := svc.Create("Art")
	require.NoError(t, err)

	_, err = svc.Create("Science")
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.EqualError(t, err, "Category name already exists")

	_, err = svc.Rename(art.ID, "Science")
	assert.EqualError(t, err, "Category name already exists")

	_, err = svc.Create(" ")
	assert.EqualError(t, err, "Category name is required")
}

func TestSubCategoryLifecycle(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := services.NewSubCategoryService(database)
	science := createCategory(t, database, "Science")
	maths := createCategory(t, database, "Mathematics")

	physics, err := svc.Create(" Physics ", science.ID)
	require.NoError(t, err)
	assert.Equal(t, "Physics", physics.Name)
	_, err = svc.Create("Biology", science.ID)
	require.NoError(t, err)
	_, err = svc.Create("Algebra", maths.ID)
	require.NoError(t, err)

	scienceSubs, err := svc.List(&science.ID)
	require.NoError(t, err)
	require.Len(t, scienceSubs, 2)
	assert.Equal(t, "Biology", scienceSubs[0].Name)

	all, err := svc.List(nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	moved, err := svc.Update(physics.ID, services.UpdateSubCategoryInput{CategoryID: &maths.ID})
	require.NoError(t, err)
	assert.Equal(t, maths.ID, moved.CategoryID)
	assert.Equal(t, "Physics", moved.Name)

	require.NoError(t, svc.Delete(physics.ID))
	_, err = svc.Get(physics.ID)
	assert.EqualError(t, err, "Sub-category not found")
}

func TestSubCategoryConflictsIgnoreCase(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := services.NewSubCategoryService(database)
	english := createCategory(t, database, "English")

	_, err := svc.Create("Grammar", english.ID)
	require.NoError(t, err)

	for _, name := range []string{"Grammar", "GRAMMAR"} {
		_, err = svc.Create(name, english.ID)
		assert.True(t, apperr.Is(err, apperr.KindConflict), name)
		assert.EqualError(t, err, "Sub-category name already exists for this category")
	}
}

func TestSubCategoryMissingCategory(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := services.NewSubCategoryService(database)

	_, err := svc.Create("Physics", 999)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.EqualError(t, err, "category not found")

	var count int
	require.NoError(t, database.Model(&models.SubCategory{}).Count(&count).Error)
	assert.Equal(t, 0, count)
}

func TestCategoryDeleteCascadesSubCategories(t *testing.T) {
	database := testutil.NewTestDB(t)
	categories := services.NewCategoryService(database)
	subs := services.NewSubCategoryService(database)
	science := createCategory(t, database, "Science")
	createSubCategory(t, database, "Physics", science.ID)

	require.NoError(t, categories.Delete(science.ID))

	left, err := subs.List(nil)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestNewPage(t *testing.T) {
	assert.Equal(t, services.Page{Limit: 10, Offset: 0}, services.NewPage(0, 0, 10, 100))
	assert.Equal(t, services.Page{Limit: 100, Offset: 200}, services.NewPage(3, 500, 10, 100))
	assert.Equal(t, services.Page{Limit: 20, Offset: 20}, services.NewPage(2, -1, 20, 50))
}
