package dbmodels

import "time"

type EmailVerify struct {
	UserID        string `gorm:"type:varchar(36);index"`
	Email         string `gorm:"type:varchar(255)"`
	Code          string `gorm:"type:varchar(24)"`
	DateGenerated time.Time
	DateExpires   time.Time
	DateUsed      time.Time
}
