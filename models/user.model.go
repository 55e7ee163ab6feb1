package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage string `gorm:"default:''"`
	Name         string `gorm:"default:''"`
	Email        string `gorm:"unique;not null"`
	Mobile       string `gorm:"default:''"`
	Grade        string `gorm:"default:''"` // e.g. "Grade 12 Science"
	Role         string `gorm:"default:'USER'"`
	Password     string `gorm:"not null"`
	LastLogin    time.Time
	IsDeleted    bool `gorm:"default:false"`
}
