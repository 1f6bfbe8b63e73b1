package model

import (
	"time"
)

type Video struct {
	ID          uint64  `gorm:"primaryKey"`
	Title       string  `gorm:"type:varchar(255);not null;index:idx_video_title"`
	Year        int     `gorm:"not null"`
	OnlinePrice int64   `gorm:"not null;default:0"` // 在线观看价格（分）
	DiscPrice   int64   `gorm:"not null;default:0"` // 实体碟片价格（分）
	VoteCount   int64   `gorm:"not null;default:0"`
	Rating      float64 `gorm:"not null;default:0"` // 评分均值，由定时任务回写
	Episode     *int
	Season      *int
	PosterURL   *string `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Video) TableName() string {
	return "videos"
}
