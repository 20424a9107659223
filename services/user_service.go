package services

import (
	"errors"
	"strings"

	"learnhub/apperr"
	"learnhub/db"
	"learnhub/models"
	"learnhub/tools"

	"github.com/jinzhu/gorm"
)

// ErrUserExists is wrapped by the conflict returned from Register.
var ErrUserExists = errors.New("user exists")

const invalidPhoneMessage = "Invalid Israeli phone number format. Example: 050-1234567"

type UserService struct {
	db         *gorm.DB
	adminPhone string
}

func NewUserService(database *gorm.DB, adminPhone string) *UserService {
	return &UserService{db: database, adminPhone: adminPhone}
}

type UserPage struct {
	Data  []models.User `json:"data"`
	Total int64         `json:"total"`
}

type UpdateUserInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// Register creates a user unless one with the same name and phone exists.
func (s *UserService) Register(name, phone string) (*models.UserWithRole, error) {
	name, phone, err := credentials(name, phone, "Name is required")
	if err != nil {
		return nil, err
	}

	existing, err := s.findByNameAndPhone(name, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "A user with this name and phone already exists", ErrUserExists)
	}

	user := models.User{Name: name, Phone: phone}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, db.TranslateError(err)
	}
	withRole := user.WithRole(s.adminPhone)
	return &withRole, nil
}

// Login looks a user up by the exact name and phone pair.
func (s *UserService) Login(name, phone string) (*models.UserWithRole, error) {
	name, phone, err := credentials(name, phone, "Full name is required")
	if err != nil {
		return nil, err
	}

	user, err := s.findByNameAndPhone(name, phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized("Full name or phone number not found in system")
	}
	withRole := user.WithRole(s.adminPhone)
	return &withRole, nil
}

func credentials(name, phone, nameMessage string) (string, string, error) {
	user := models.User{Name: strings.TrimSpace(name), Phone: strings.TrimSpace(phone)}
	switch user.MissingFields() {
	case "name":
		return "", "", apperr.New(apperr.KindValidation, nameMessage, nil)
	case "phone":
		return "", "", apperr.Validation("Phone number is required")
	}
	name, phone = user.Name, user.Phone
	if !tools.IsValidIsraeliPhone(phone) {
		return "", "", apperr.Validation(invalidPhoneMessage)
	}
	return name, phone, nil
}

func (s *UserService) findByNameAndPhone(name, phone string) (*models.User, error) {
	var user models.User
	err := s.db.Where("name = ? AND phone = ?", name, phone).First(&user).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, db.TranslateError(err)
	}
	return &user, nil
}

// List pages through users by id, matching search against name or phone
// without regard to case.
func (s *UserService) List(search string, page Page) (*UserPage, error) {
	q := s.db.Model(&models.User{})
	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(phone) LIKE ?", pattern, pattern)
	}

	result := UserPage{Data: []models.User{}}
	if err := q.Count(&result.Total).Error; err != nil {
		return nil, db.TranslateError(err)
	}
	if err := q.Order("id ASC").Limit(page.Limit).Offset(page.Offset).Find(&result.Data).Error; err != nil {
		return nil, db.TranslateError(err)
	}
	return &result, nil
}

func (s *UserService) Get(id int64) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, db.TranslateError(err)
	}
	return &user, nil
}

// Resolve returns the user together with the role their phone grants.
func (s *UserService) Resolve(id int64) (*models.UserWithRole, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	withRole := user.WithRole(s.adminPhone)
	return &withRole, nil
}

// Update changes the fields present in in; at least one is required.
func (s *UserService) Update(id int64, in UpdateUserInput) (*models.User, error) {
	fields := map[string]interface{}{}

	name, err := tools.OptionalString(in.Name, "Name")
	if err != nil {
		return nil, err
	}
	if name != nil {
		fields["name"] = *name
	}
	phone, err := tools.OptionalString(in.Phone, "Phone")
	if err != nil {
		return nil, err
	}
	if phone != nil {
		if !tools.IsValidIsraeliPhone(*phone) {
			return nil, apperr.Validation(invalidPhoneMessage)
		}
		fields["phone"] = *phone
	}
	if len(fields) == 0 {
		return nil, apperr.Validation("No fields to update")
	}

	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(user).Updates(fields).Error; err != nil {
		return nil, db.TranslateError(err)
	}
	return user, nil
}

// Delete removes the user and, through the schema, their prompts.
func (s *UserService) Delete(id int64) error {
	res := s.db.Where("id = ?", id).Delete(&models.User{})
	if res.Error != nil {
		return db.TranslateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}
