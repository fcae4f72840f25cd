package dbmodels

import (
	"connect-skills-backend/models"
)

type User struct {
	BaseModel
	Email           string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash    string          `gorm:"type:varchar(255)"`
	Role            models.UserRole `gorm:"type:varchar(50)"`
	IsEmailVerified bool
}
