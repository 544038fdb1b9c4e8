package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleApplicant = "applicant"
	RoleAdmin     = "admin"
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Name         string         `json:"name"`
	NameInitial  string         `json:"name_initial"`
	Role         string         `json:"role" gorm:"not null;default:applicant"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
