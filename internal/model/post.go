package model

import (
	"time"
)

type PostType string

const (
	PostTypeText  PostType = "TEXT"
	PostTypeImage PostType = "IMAGE"
	PostTypeVideo PostType = "VIDEO"
)

// ParsePostType validates a raw type string against the known post types.
func ParsePostType(s string) (PostType, bool) {
	switch PostType(s) {
	case PostTypeText, PostTypeImage, PostTypeVideo:
		return PostType(s), true
	}
	return "", false
}

type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Content   string    `gorm:"not null" json:"content"`
	Type      PostType  `gorm:"type:varchar(20);not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	User  User        `gorm:"foreignKey:UserID;references:ID" json:"user"`
	Media []MediaFile `gorm:"foreignKey:PostID;references:ID" json:"media"`
}

func (Post) TableName() string {
	return "posts"
}
