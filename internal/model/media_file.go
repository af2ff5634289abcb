package model

import (
	"time"
)

type MediaFile struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	PostID           uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	Filename         string    `gorm:"type:varchar(255);not null" json:"filename"`
	OriginalFilename string    `gorm:"type:varchar(255)" json:"original_filename"`
	ContentType      string    `gorm:"type:varchar(100)" json:"content_type"`
	Size             int64     `gorm:"not null;default:0" json:"size"`
	FilePath         string    `gorm:"type:varchar(512);not null" json:"file_path"`
	CreatedAt        time.Time `json:"created_at"`
}

func (MediaFile) TableName() string {
	return "media_files"
}
