package model

import (
	"time"
)

type Order struct {
	ID           uint64 `gorm:"primaryKey"`
	UserID       uint64 `gorm:"not null;index:idx_order_user"`
	VideoID      uint64 `gorm:"not null;index:idx_order_video"`
	PurchaseType uint8  `gorm:"not null"` // 1:在线观看 2:实体碟片
	Price        int64  `gorm:"not null"`
	CreatedAt    time.Time

	Video Video `gorm:"foreignKey:VideoID;references:ID"`
}

func (Order) TableName() string {
	return "orders"
}
