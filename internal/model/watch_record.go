package model

import (
	"time"
)

type WatchRecord struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	VideoID   uint64    `gorm:"primaryKey;index:idx_watch_video_id" json:"videoId"`
	WatchedAt time.Time `json:"watchedAt"`
}

func (WatchRecord) TableName() string {
	return "watch_records"
}
