package model

import (
	"time"
)

// LikeRecord 同时承载点赞和收藏夹，历史原因两者共用一张表
type LikeRecord struct {
	UserID  uint64    `gorm:"primaryKey" json:"userId"`
	VideoID uint64    `gorm:"primaryKey;index:idx_like_video_id" json:"videoId"`
	LikedAt time.Time `json:"likedAt"`
}

func (LikeRecord) TableName() string {
	return "likes"
}
