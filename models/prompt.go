package models

import "time"

// Prompt is a submitted question together with the answer generated for it.
// Rows are never updated once written.
type Prompt struct {
	ID            int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID        int64     `gorm:"not null;index" json:"user_id"`
	CategoryID    *int64    `json:"category_id"`
	SubCategoryID *int64    `json:"sub_category_id"`
	Prompt        string    `gorm:"type:text;not null" json:"prompt"`
	Response      string    `gorm:"type:text;not null" json:"response"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Prompt) TableName() string {
	return "prompts"
}

// PromptDetail is the admin view of a prompt joined with its owner and taxonomy names.
type PromptDetail struct {
	Prompt
	UserName        string  `json:"user_name"`
	UserPhone       string  `json:"user_phone"`
	CategoryName    *string `json:"category_name"`
	SubCategoryName *string `json:"sub_category_name"`
}
