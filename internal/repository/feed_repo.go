package repository

import (
	"Marquee/internal/pkg/consts"
	"context"
	"time"

	"gorm.io/gorm"
)

// FeedEvent 动态事件投影，来自观看/点赞/评分三张表的联查
type FeedEvent struct {
	Username   string    `json:"username"`
	VideoTitle string    `json:"videoTitle"`
	Rating     *int      `json:"rating,omitempty"`
	EventTime  time.Time `json:"eventTime"`
	Action     string    `json:"action"`
}

type FeedRepo interface {
	GetFollowedWatches(ctx context.Context, viewerID uint64, limit int) ([]*FeedEvent, error)
	GetFollowedLikes(ctx context.Context, viewerID uint64, limit int) ([]*FeedEvent, error)
	GetFollowedRates(ctx context.Context, viewerID uint64, limit int) ([]*FeedEvent, error)
}

type FeedRepoImpl struct {
	db *gorm.DB
}

func NewFeedRepo(db *gorm.DB) FeedRepo {
	return &FeedRepoImpl{db: db}
}

// GetFollowedWatches 关注用户的观看动态，权限在查询时实时判定
func (s *FeedRepoImpl) GetFollowedWatches(ctx context.Context, viewerID uint64, limit int) ([]*FeedEvent, error) {
	var events []*FeedEvent
	err := s.db.WithContext(ctx).
		Table("watch_records AS w").
		Select("users.username AS username, videos.title AS video_title, w.watched_at AS event_time").
		Joins("JOIN user_follows uf ON uf.following_id = w.user_id AND uf.follower_id = ?", viewerID).
		Joins("JOIN users ON users.id = w.user_id").
		Joins("JOIN videos ON videos.id = w.video_id").
		Joins("JOIN permissions p ON p.user_id = w.user_id AND p.watched = ?", consts.VisibilityPublic).
		Order("w.watched_at DESC").
		Limit(limit).
		Scan(&events).Error
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		e.Action = consts.FeedActionWatch
	}
	return events, nil
}

// GetFollowedLikes 关注用户的点赞/收藏动态
func (s *FeedRepoImpl) GetFollowedLikes(ctx context.Context, viewerID uint64, limit int) ([]*FeedEvent, error) {
	var events []*FeedEvent
	err := s.db.WithContext(ctx).
		Table("likes AS l").
		Select("users.username AS username, videos.title AS video_title, l.liked_at AS event_time").
		Joins("JOIN user_follows uf ON uf.following_id = l.user_id AND uf.follower_id = ?", viewerID).
		Joins("JOIN users ON users.id = l.user_id").
		Joins("JOIN videos ON videos.id = l.video_id").
		Joins("JOIN permissions p ON p.user_id = l.user_id AND p.favorites = ?", consts.VisibilityPublic).
		Order("l.liked_at DESC").
		Limit(limit).
		Scan(&events).Error
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		e.Action = consts.FeedActionLike
	}
	return events, nil
}

// GetFollowedRates 关注用户的评分动态，附带评分值
func (s *FeedRepoImpl) GetFollowedRates(ctx context.Context, viewerID uint64, limit int) ([]*FeedEvent, error) {
	var events []*FeedEvent
	err := s.db.WithContext(ctx).
		Table("rates AS r").
		Select("users.username AS username, videos.title AS video_title, r.rating AS rating, r.rated_at AS event_time").
		Joins("JOIN user_follows uf ON uf.following_id = r.user_id AND uf.follower_id = ?", viewerID).
		Joins("JOIN users ON users.id = r.user_id").
		Joins("JOIN videos ON videos.id = r.video_id").
		Joins("JOIN permissions p ON p.user_id = r.user_id AND p.ranks = ?", consts.VisibilityPublic).
		Order("r.rated_at DESC").
		Limit(limit).
		Scan(&events).Error
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		e.Action = consts.FeedActionRate
	}
	return events, nil
}
