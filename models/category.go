package models

import "time"

// Category is the top level of the prompt taxonomy. Names are unique.
type Category struct {
	ID        int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string    `gorm:"not null;unique" json:"name" form:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubCategory belongs to exactly one Category. Its name is unique within the
// category, and also unique ignoring letter case.
type SubCategory struct {
	ID         int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name       string    `gorm:"not null" json:"name" form:"name"`
	CategoryID int64     `gorm:"not null;index" json:"category_id" form:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
