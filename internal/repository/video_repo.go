package repository

import (
	"Marquee/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type VideoRepo interface {
	GetVideoByID(ctx context.Context, id uint64) (*model.Video, error)
	GetVideoByTitle(ctx context.Context, title string) (*model.Video, error)
	SearchVideosByTitle(ctx context.Context, keyword string, limit, offset int) ([]*model.Video, error)
	CreateVideo(ctx context.Context, video *model.Video) error
	DeleteVideo(ctx context.Context, id uint64) (int64, error)
	UpdateVideoStats(ctx context.Context, id uint64, voteCount int64, rating float64) error
	UpdatePosterURL(ctx context.Context, id uint64, posterURL string) error
}

type VideoRepoImpl struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) VideoRepo {
	return &VideoRepoImpl{db: db}
}

func (s *VideoRepoImpl) GetVideoByID(ctx context.Context, id uint64) (*model.Video, error) {
	video := &model.Video{}
	result := s.db.WithContext(ctx).First(video, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return video, nil
}

// GetVideoByTitle 精确标题查找，同名取最早入库的一条
func (s *VideoRepoImpl) GetVideoByTitle(ctx context.Context, title string) (*model.Video, error) {
	video := &model.Video{}
	result := s.db.WithContext(ctx).
		Where("title = ?", title).
		Order("id").
		First(video)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return video, nil
}

func (s *VideoRepoImpl) SearchVideosByTitle(ctx context.Context, keyword string, limit, offset int) ([]*model.Video, error) {
	var videos []*model.Video
	result := s.db.WithContext(ctx).
		Where("title LIKE ?", "%"+keyword+"%").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&videos)
	if result.Error != nil {
		return nil, result.Error
	}
	return videos, nil
}

func (s *VideoRepoImpl) CreateVideo(ctx context.Context, video *model.Video) error {
	return s.db.WithContext(ctx).Create(video).Error
}

func (s *VideoRepoImpl) DeleteVideo(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&model.Video{}, id)
	return result.RowsAffected, result.Error
}

// UpdateVideoStats 回写评分数和均值，由定时任务调用
func (s *VideoRepoImpl) UpdateVideoStats(ctx context.Context, id uint64, voteCount int64, rating float64) error {
	return s.db.WithContext(ctx).Model(&model.Video{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"vote_count": voteCount,
			"rating":     rating,
		}).Error
}

func (s *VideoRepoImpl) UpdatePosterURL(ctx context.Context, id uint64, posterURL string) error {
	return s.db.WithContext(ctx).Model(&model.Video{}).
		Where("id = ?", id).
		Update("poster_url", posterURL).Error
}
