package db_test

import (
	"testing"

	"learnhub/apperr"
	"learnhub/db"
	"learnhub/models"
	"learnhub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	database := testutil.NewTestDB(t)
	require.NoError(t, db.EnsureSchema(database, db.DialectSQLite))
}

func TestUserDeleteCascadesPrompts(t *testing.T) {
	database := testutil.NewTestDB(t)

	user := models.User{Name: "Dana", Phone: "0501234567"}
	require.NoError(t, database.Create(&user).Error)
	require.NoError(t, database.Create(&models.Prompt{UserID: user.ID, Prompt: "q", Response: "a"}).Error)

	require.NoError(t, database.Delete(&user).Error)

	var count int
	require.NoError(t, database.Model(&models.Prompt{}).Count(&count).Error)
	assert.Equal(t, 0, count)
}

func TestCategoryDeleteKeepsPromptsUnclassified(t *testing.T) {
	database := testutil.NewTestDB(t)

	user := models.User{Name: "Dana", Phone: "0501234567"}
	require.NoError(t, database.Create(&user).Error)
	category := models.Category{Name: "Science"}
	require.NoError(t, database.Create(&category).Error)
	sub := models.SubCategory{Name: "Physics", CategoryID: category.ID}
	require.NoError(t, database.Create(&sub).Error)
	prompt := models.Prompt{UserID: user.ID, CategoryID: &category.ID, SubCategoryID: &sub.ID, Prompt: "q", Response: "a"}
	require.NoError(t, database.Create(&prompt).Error)

	require.NoError(t, database.Delete(&category).Error)

	var got models.Prompt
	require.NoError(t, database.First(&got, prompt.ID).Error)
	assert.Nil(t, got.CategoryID)
	assert.Nil(t, got.SubCategoryID, "sub-category cascades away with its category")
}

func TestSubCategoryNameUniqueIgnoringCase(t *testing.T) {
	database := testutil.NewTestDB(t)

	category := models.Category{Name: "English"}
	require.NoError(t, database.Create(&category).Error)
	other := models.Category{Name: "Literature"}
	require.NoError(t, database.Create(&other).Error)

	require.NoError(t, database.Create(&models.SubCategory{Name: "Grammar", CategoryID: category.ID}).Error)

	err := database.Create(&models.SubCategory{Name: "grammar", CategoryID: category.ID}).Error
	require.Error(t, err)
	translated := db.TranslateError(err)
	assert.True(t, apperr.Is(translated, apperr.KindConflict))
	assert.Equal(t, "Sub-category name already exists for this category", translated.Error())

	assert.NoError(t, database.Create(&models.SubCategory{Name: "grammar", CategoryID: other.ID}).Error)
}

func TestMissingUserIsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)

	err := database.Create(&models.Prompt{UserID: 999, Prompt: "q", Response: "a"}).Error
	require.Error(t, err)
	assert.True(t, apperr.Is(db.TranslateError(err), apperr.KindNotFound))
}

func TestSeed(t *testing.T) {
	database := testutil.NewTestDB(t)

	require.NoError(t, db.Seed(database))
	// a second run starts from a clean slate
	require.NoError(t, db.Seed(database))

	var users, categories, prompts int
	database.Model(&models.User{}).Count(&users)
	database.Model(&models.Category{}).Count(&categories)
	database.Model(&models.Prompt{}).Count(&prompts)
	assert.Equal(t, 1, users)
	assert.Equal(t, 8, categories)
	assert.Equal(t, 1, prompts)
}
