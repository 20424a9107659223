package services

import (
	"learnhub/apperr"
	"learnhub/db"
	"learnhub/models"
	"learnhub/tools"

	"github.com/jinzhu/gorm"
)

type SubCategoryService struct {
	db *gorm.DB
}

func NewSubCategoryService(database *gorm.DB) *SubCategoryService {
	return &SubCategoryService{db: database}
}

type UpdateSubCategoryInput struct {
	Name       *string `json:"name"`
	CategoryID *int64  `json:"category_id"`
}

// List returns sub-categories by name, all of them or those of one category.
func (s *SubCategoryService) List(categoryID *int64) ([]models.SubCategory, error) {
	subs := []models.SubCategory{}
	q := s.db.Order("name ASC")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if err := q.Find(&subs).Error; err != nil {
		return nil, db.TranslateError(err)
	}
	return subs, nil
}

func (s *SubCategoryService) Get(id int64) (*models.SubCategory, error) {
	var sub models.SubCategory
	if err := s.db.Where("id = ?", id).First(&sub).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, apperr.NotFound("Sub-category not found")
		}
		return nil, db.TranslateError(err)
	}
	return &sub, nil
}

// Create stores a sub-category. A missing parent is reported by the insert.
func (s *SubCategoryService) Create(name string, categoryID int64) (*models.SubCategory, error) {
	name, err := tools.RequiredString(name, "Sub-category name")
	if err != nil {
		return nil, err
	}
	if err := tools.PositiveID(categoryID, "category_id"); err != nil {
		return nil, err
	}

	sub := models.SubCategory{Name: name, CategoryID: categoryID}
	if err := s.db.Create(&sub).Error; err != nil {
		return nil, subCategoryError(err)
	}
	return &sub, nil
}

func (s *SubCategoryService) Update(id int64, in UpdateSubCategoryInput) (*models.SubCategory, error) {
	fields := map[string]interface{}{}

	name, err := tools.OptionalString(in.Name, "Sub-category name")
	if err != nil {
		return nil, err
	}
	if name != nil {
		fields["name"] = *name
	}
	if err := tools.OptionalPositiveID(in.CategoryID, "category_id"); err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if len(fields) == 0 {
		return nil, apperr.Validation("No fields to update")
	}

	sub, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(sub).Updates(fields).Error; err != nil {
		return nil, subCategoryError(err)
	}
	return sub, nil
}

func (s *SubCategoryService) Delete(id int64) error {
	res := s.db.Where("id = ?", id).Delete(&models.SubCategory{})
	if res.Error != nil {
		return db.TranslateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Sub-category not found")
	}
	return nil
}

// the only foreign key on sub_categories points at categories, which sqlite
// does not name in its error
func subCategoryError(err error) error {
	translated := db.TranslateError(err)
	if apperr.Is(translated, apperr.KindNotFound) {
		return apperr.New(apperr.KindNotFound, "category not found", err)
	}
	return translated
}
