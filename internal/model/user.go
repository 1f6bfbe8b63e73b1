package model

import (
	"time"
)

type User struct {
	ID        uint64  `gorm:"primaryKey"`
	Username  *string `gorm:"type:varchar(50);uniqueIndex:idx_username"`
	Password  *string `gorm:"type:varchar(255)"`
	Balance   int64   `gorm:"not null;default:0"` // 余额只能通过钱包操作变动
	CreatedAt time.Time
	UpdatedAt time.Time

	UserRoles []UserRole `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
