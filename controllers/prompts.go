package controllers

import (
	dbpkg "learnhub/db"
	"learnhub/services"

	"github.com/gin-gonic/gin"
)

const (
	promptPageLimit    = 20
	promptPageMaxLimit = 50
)

type createPromptRequest struct {
	UserID        int64  `json:"user_id"`
	CategoryID    *int64 `json:"category_id"`
	SubCategoryID *int64 `json:"sub_category_id"`
	Prompt        string `json:"prompt"`
	Topic         string `json:"topic"`
}

func promptService(c *gin.Context) *services.PromptService {
	return services.NewPromptService(dbpkg.DBInstance(c), GeneratorInstance(c), LoggerInstance(c))
}

// CreatePrompt answers with 201 whenever the input is valid, even if the AI
// service is down.
func CreatePrompt(c *gin.Context) {
	var req createPromptRequest
	if !BindJSON(c, &req) {
		return
	}

	prompt, err := promptService(c).Create(c.Request.Context(), services.CreatePromptInput{
		UserID:        req.UserID,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		Prompt:        req.Prompt,
		Topic:         req.Topic,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	LoggerInstance(c).Info("prompt created", "prompt_id", prompt.ID, "user_id", prompt.UserID)
	RespondCreated(c, prompt)
}

func GetPrompts(c *gin.Context) {
	userID, ok := QueryID(c, "userId", "user")
	if !ok {
		return
	}
	listPrompts(c, userID)
}

func GetPromptsByUser(c *gin.Context) {
	userID, ok := ParamID(c, "userId", "user")
	if !ok {
		return
	}
	listPrompts(c, &userID)
}

func listPrompts(c *gin.Context, userID *int64) {
	page := ParsePagination(c, promptPageLimit, promptPageMaxLimit)
	prompts, err := promptService(c).List(userID, page)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, prompts)
}

// GetPromptsWithDetails is the admin dashboard feed.
func GetPromptsWithDetails(c *gin.Context) {
	page := ParsePagination(c, promptPageLimit, promptPageMaxLimit)
	details, err := promptService(c).ListWithDetails(page)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, details)
}

func GetPromptByID(c *gin.Context) {
	id, ok := ParamID(c, "id", "prompt")
	if !ok {
		return
	}
	prompt, err := promptService(c).Get(id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, prompt)
}
