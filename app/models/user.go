package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Username     string `gorm:"uniqueIndex;size:30;not null"`
	Image        string `gorm:"size:255"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
}
