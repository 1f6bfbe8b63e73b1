package model

import (
	"time"
)

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index:idx_comment_user"`
	VideoID   uint64 `gorm:"not null;index:idx_comment_video"`
	Content   string `gorm:"type:varchar(1000);not null"`
	CreatedAt time.Time
}

func (Comment) TableName() string {
	return "comments"
}
