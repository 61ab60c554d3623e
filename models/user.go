package models

import (
	"time"
)

const (
	UserTypeFarmer  = "farmer"
	UserTypeOfficer = "officer"
)

type User struct {
	ID        string     `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	Name      string     `gorm:"column:name" json:"name"`
	Email     string     `gorm:"column:email;type:varchar(255);unique" json:"email"`
	Phone     *string    `gorm:"column:phone" json:"phone,omitempty"`
	UserType  string     `gorm:"column:user_type;type:varchar(20);index" json:"userType"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updatedAt"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deletedAt,omitempty"`
}

// UserSummary is the identity projection attached to crop submissions.
type UserSummary struct {
	ID    string  `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	Name  string  `gorm:"column:name" json:"name"`
	Email string  `gorm:"column:email;type:varchar(255)" json:"email"`
	Phone *string `gorm:"column:phone" json:"phone,omitempty"`
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

func (UserSummary) TableName() string {
	return "users"
}

func IsKnownUserType(userType string) bool {
	return userType == UserTypeFarmer || userType == UserTypeOfficer
}
