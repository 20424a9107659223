package services

import (
	"learnhub/apperr"
	"learnhub/db"
	"learnhub/models"
	"learnhub/tools"

	"github.com/jinzhu/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(database *gorm.DB) *CategoryService {
	return &CategoryService{db: database}
}

func (s *CategoryService) List() ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, db.TranslateError(err)
	}
	return categories, nil
}

func (s *CategoryService) Get(id int64) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ?", id).First(&category).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, apperr.NotFound("Category not found")
		}
		return nil, db.TranslateError(err)
	}
	return &category, nil
}

func (s *CategoryService) Create(name string) (*models.Category, error) {
	name, err := tools.RequiredString(name, "Category name")
	if err != nil {
		return nil, err
	}

	category := models.Category{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, db.TranslateError(err)
	}
	return &category, nil
}

func (s *CategoryService) Rename(id int64, name string) (*models.Category, error) {
	name, err := tools.RequiredString(name, "Category name")
	if err != nil {
		return nil, err
	}

	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(category).Update("name", name).Error; err != nil {
		return nil, db.TranslateError(err)
	}
	return category, nil
}

// Delete removes the category with its sub-categories. Prompts filed under
// it keep existing without a category.
func (s *CategoryService) Delete(id int64) error {
	res := s.db.Where("id = ?", id).Delete(&models.Category{})
	if res.Error != nil {
		return db.TranslateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Category not found")
	}
	return nil
}
