package model

// Permission 各类动态的可见性开关，注册时默认全部 public
type Permission struct {
	UserID    uint64 `gorm:"primaryKey" json:"userId"`
	Favorites string `gorm:"type:varchar(10);not null;default:public" json:"favorites"`
	Ranks     string `gorm:"type:varchar(10);not null;default:public" json:"ranks"`
	Watched   string `gorm:"type:varchar(10);not null;default:public" json:"watched"`
	Playlist  string `gorm:"type:varchar(10);not null;default:public" json:"playlist"`
}

func (Permission) TableName() string {
	return "permissions"
}
