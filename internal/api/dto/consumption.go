package dto

import "time"

// RateDTO 评分
type RateDTO struct {
	Rating int `json:"rating" binding:"required"`
}

// CommentCreateDTO 发表评论
type CommentCreateDTO struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=1000"`
}

// FavoriteDTO 按片名加入收藏
type FavoriteDTO struct {
	Title string `json:"title" binding:"required"`
}

// FavoriteResultDTO 收藏结果，重复收藏不是错误
type FavoriteResultDTO struct {
	AlreadyFavorited bool `json:"already_favorited"`
}

// FavoriteItemDTO 收藏列表条目
type FavoriteItemDTO struct {
	VideoID uint64    `json:"video_id"`
	Title   string    `json:"title"`
	LikedAt time.Time `json:"liked_at"`
}
