package models

import (
	"strings"
	"time"

	"learnhub/tools"
)

/************************************************
/**** MARK: USER ROLES ****/
/************************************************/
type Role string

const ROLE_ADMIN Role = "admin"
const ROLE_STUDENT Role = "student"

// User is a learner registered by name and phone.
type User struct {
	ID        int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string    `gorm:"not null" json:"name" form:"name"`
	Phone     string    `gorm:"not null" json:"phone" form:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserWithRole is what registration and login hand back to the client.
type UserWithRole struct {
	User
	Role Role `json:"role"`
}

func (user User) MissingFields() string {
	if strings.TrimSpace(user.Name) == "" {
		return "name"
	} else if strings.TrimSpace(user.Phone) == "" {
		return "phone"
	}
	return ""
}

// ResolveRole returns admin when the user's phone matches adminPhone once
// spaces and dashes are stripped from both.
func ResolveRole(user User, adminPhone string) Role {
	if adminPhone != "" && tools.NormalizePhone(user.Phone) == tools.NormalizePhone(adminPhone) {
		return ROLE_ADMIN
	}
	return ROLE_STUDENT
}

func (user User) WithRole(adminPhone string) UserWithRole {
	return UserWithRole{User: user, Role: ResolveRole(user, adminPhone)}
}
