package models

import "gorm.io/gorm"

// Course represents a learning course in the catalog
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Instructor   string `json:"instructor"`
	Subject      string `json:"subject" gorm:"index"`
	Level        string `json:"level" gorm:"default:'Beginner'"` // Beginner, Intermediate, Advanced
	Duration     int    `json:"duration" gorm:"default:0"`       // duration in minutes
	ThumbnailURL string `json:"thumbnail_url"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
