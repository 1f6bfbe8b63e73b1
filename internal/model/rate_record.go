package model

import (
	"time"
)

type RateRecord struct {
	UserID  uint64    `gorm:"primaryKey" json:"userId"`
	VideoID uint64    `gorm:"primaryKey;index:idx_rate_video_id" json:"videoId"`
	Rating  int       `gorm:"not null;check:rating >= 1 AND rating <= 10" json:"rating"`
	RatedAt time.Time `json:"ratedAt"`
}

func (RateRecord) TableName() string {
	return "rates"
}
