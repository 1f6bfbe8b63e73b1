package repository

import (
	"Marquee/internal/model"
	"Marquee/internal/pkg/consts"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteEntry 收藏列表投影，关联影片标题
type FavoriteEntry struct {
	VideoID uint64    `json:"videoId"`
	Title   string    `json:"title"`
	LikedAt time.Time `json:"likedAt"`
}

type ConsumptionRepo interface {
	ConsumeOrderAndUpsertWatch(ctx context.Context, record *model.WatchRecord) error
	CheckWatchExists(ctx context.Context, userID, videoID uint64) (bool, error)
	UpsertLike(ctx context.Context, record *model.LikeRecord) error
	CreateLike(ctx context.Context, record *model.LikeRecord) error
	GetRecentFavorites(ctx context.Context, userID uint64, limit int) ([]*FavoriteEntry, error)
	UpsertRate(ctx context.Context, record *model.RateRecord) error
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetRateStats(ctx context.Context, videoID uint64) (int64, float64, error)
}

type ConsumptionRepoImpl struct {
	db *gorm.DB
}

func NewConsumptionRepo(db *gorm.DB) ConsumptionRepo {
	return &ConsumptionRepoImpl{db: db}
}

// ConsumeOrderAndUpsertWatch 核销在线订单并写入观看记录，两步同一事务
// 观看记录唯一，重复观看只刷新时间
func (s *ConsumptionRepoImpl) ConsumeOrderAndUpsertWatch(ctx context.Context, record *model.WatchRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("user_id = ? AND video_id = ? AND purchase_type = ?",
				record.UserID, record.VideoID, consts.PurchaseTypeOnline).
			Order("id").
			Limit(1).
			Delete(&model.Order{})
		if result.Error != nil {
			return result.Error
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"watched_at"}),
		}).Create(record).Error
	})
}

func (s *ConsumptionRepoImpl) CheckWatchExists(ctx context.Context, userID, videoID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.WatchRecord{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Count(&count).Error
	return count > 0, err
}

// UpsertLike 点赞唯一，重复点赞只刷新时间
func (s *ConsumptionRepoImpl) UpsertLike(ctx context.Context, record *model.LikeRecord) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"liked_at"}),
		}).
		Create(record).Error
}

// CreateLike 普通插入，重复键错误由调用方判定
func (s *ConsumptionRepoImpl) CreateLike(ctx context.Context, record *model.LikeRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}

// GetRecentFavorites 取最近的收藏，按收藏时间倒序
func (s *ConsumptionRepoImpl) GetRecentFavorites(ctx context.Context, userID uint64, limit int) ([]*FavoriteEntry, error) {
	var entries []*FavoriteEntry
	err := s.db.WithContext(ctx).
		Table("likes AS l").
		Select("l.video_id AS video_id, videos.title AS title, l.liked_at AS liked_at").
		Joins("JOIN videos ON videos.id = l.video_id").
		Where("l.user_id = ?", userID).
		Order("l.liked_at DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpsertRate 评分唯一，重复评分覆盖旧值
func (s *ConsumptionRepoImpl) UpsertRate(ctx context.Context, record *model.RateRecord) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "rated_at"}),
		}).
		Create(record).Error
}

func (s *ConsumptionRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

// GetRateStats 获取影片的评分数和均值
func (s *ConsumptionRepoImpl) GetRateStats(ctx context.Context, videoID uint64) (int64, float64, error) {
	var stats struct {
		VoteCount int64
		AvgRating float64
	}
	err := s.db.WithContext(ctx).Model(&model.RateRecord{}).
		Select("COUNT(*) AS vote_count, COALESCE(AVG(rating), 0) AS avg_rating").
		Where("video_id = ?", videoID).
		Scan(&stats).Error
	if err != nil {
		return 0, 0, err
	}
	return stats.VoteCount, stats.AvgRating, nil
}
