package services

import (
	"context"
	"strings"

	"learnhub/apperr"
	"learnhub/db"
	"learnhub/logger"
	"learnhub/models"
	"learnhub/tools"

	"github.com/jinzhu/gorm"
)

// MockResponsePrefix marks answers stored when generation itself failed. It
// never appears in the generator's own fallback lesson.
const MockResponsePrefix = "(Mock response)"

const mockResponse = MockResponsePrefix + " The AI service could not be reached right now. This is a placeholder answer generated for demo purposes."

// Generator produces lesson text for a prompt.
type Generator interface {
	Generate(ctx context.Context, req tools.LessonRequest) (string, error)
}

type CreatePromptInput struct {
	UserID        int64
	CategoryID    *int64
	SubCategoryID *int64
	Prompt        string
	Topic         string
}

type PromptService struct {
	db  *gorm.DB
	gen Generator
	log *logger.Logger
}

func NewPromptService(database *gorm.DB, gen Generator, log *logger.Logger) *PromptService {
	return &PromptService{db: database, gen: gen, log: log}
}

// Create validates in, generates the answer and stores both. Once input is
// valid a generation failure never fails the call; the stored response is
// then the mock answer. Missing users or taxonomy rows are reported by the
// insert as not-found.
func (s *PromptService) Create(ctx context.Context, in CreatePromptInput) (*models.Prompt, error) {
	text := strings.TrimSpace(in.Prompt)
	if text == "" {
		return nil, apperr.Validation("Prompt text is required")
	}
	if err := tools.PositiveID(in.UserID, "user_id"); err != nil {
		return nil, err
	}
	if err := tools.OptionalPositiveID(in.CategoryID, "category_id"); err != nil {
		return nil, err
	}
	if err := tools.OptionalPositiveID(in.SubCategoryID, "sub_category_id"); err != nil {
		return nil, err
	}

	req := s.lessonRequest(in, text)
	prompt := models.Prompt{
		UserID:        in.UserID,
		CategoryID:    in.CategoryID,
		SubCategoryID: in.SubCategoryID,
		Prompt:        text,
		Response:      s.generate(ctx, req),
	}
	if err := s.db.Create(&prompt).Error; err != nil {
		return nil, s.insertError(in, err)
	}
	return &prompt, nil
}

// insertError names the missing row when the driver could not.
func (s *PromptService) insertError(in CreatePromptInput, err error) error {
	translated := db.TranslateError(err)
	if !apperr.Is(translated, apperr.KindNotFound) || translated.Error() != db.MissingReferenceMessage {
		return translated
	}
	switch {
	case !s.exists(&models.User{}, in.UserID):
		return apperr.New(apperr.KindNotFound, "user not found", err)
	case in.CategoryID != nil && !s.exists(&models.Category{}, *in.CategoryID):
		return apperr.New(apperr.KindNotFound, "category not found", err)
	case in.SubCategoryID != nil && !s.exists(&models.SubCategory{}, *in.SubCategoryID):
		return apperr.New(apperr.KindNotFound, "sub-category not found", err)
	}
	return translated
}

func (s *PromptService) exists(model interface{}, id int64) bool {
	var count int
	s.db.Model(model).Where("id = ?", id).Count(&count)
	return count > 0
}

// lessonRequest adds whatever names can be read for the referenced rows.
// A failed lookup only means less context for the generator.
func (s *PromptService) lessonRequest(in CreatePromptInput, text string) tools.LessonRequest {
	req := tools.LessonRequest{Prompt: text, Topic: strings.TrimSpace(in.Topic)}

	var user models.User
	if err := s.db.Select("name").Where("id = ?", in.UserID).First(&user).Error; err == nil {
		req.UserName = user.Name
	}
	if in.CategoryID != nil {
		var category models.Category
		if err := s.db.Select("name").Where("id = ?", *in.CategoryID).First(&category).Error; err == nil {
			req.CategoryName = category.Name
		}
	}
	if in.SubCategoryID != nil {
		var sub models.SubCategory
		if err := s.db.Select("name").Where("id = ?", *in.SubCategoryID).First(&sub).Error; err == nil {
			req.SubCategoryName = sub.Name
		}
	}
	return req
}

func (s *PromptService) generate(ctx context.Context, req tools.LessonRequest) (text string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("lesson generation panicked", "panic", r)
			text = mockResponse
		}
	}()

	text, err := s.gen.Generate(ctx, req)
	if err != nil {
		s.log.Warn("lesson generation failed, storing mock response", "error", err)
		return mockResponse
	}
	if strings.TrimSpace(text) == "" {
		return mockResponse
	}
	return text
}

// List returns prompts newest first, optionally only those of one user.
func (s *PromptService) List(userID *int64, page Page) ([]models.Prompt, error) {
	prompts := []models.Prompt{}
	q := s.db.Model(&models.Prompt{})
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	err := q.Order("created_at DESC").Order("id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&prompts).Error
	if err != nil {
		return nil, db.TranslateError(err)
	}
	return prompts, nil
}

// ListWithDetails joins every prompt with its owner and taxonomy names.
func (s *PromptService) ListWithDetails(page Page) ([]models.PromptDetail, error) {
	details := []models.PromptDetail{}
	err := s.db.Table("prompts p").
		Select(`p.id, p.user_id, p.category_id, p.sub_category_id, p.prompt, p.response, p.created_at,
			u.name AS user_name, u.phone AS user_phone,
			c.name AS category_name, sc.name AS sub_category_name`).
		Joins("LEFT JOIN users u ON p.user_id = u.id").
		Joins("LEFT JOIN categories c ON p.category_id = c.id").
		Joins("LEFT JOIN sub_categories sc ON p.sub_category_id = sc.id").
		Order("p.created_at DESC").Order("p.id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Scan(&details).Error
	if err != nil {
		return nil, db.TranslateError(err)
	}
	return details, nil
}

func (s *PromptService) Get(id int64) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := s.db.Where("id = ?", id).First(&prompt).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, apperr.NotFound("Prompt not found")
		}
		return nil, db.TranslateError(err)
	}
	return &prompt, nil
}
