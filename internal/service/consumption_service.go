package service

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/model"
	"Marquee/internal/pkg/consts"
	"Marquee/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
)

type ConsumptionService interface {
	RecordWatch(ctx context.Context, userID, videoID uint64) error
	RecordLike(ctx context.Context, userID, videoID uint64) error
	RecordRate(ctx context.Context, userID, videoID uint64, rating int) error
	RecordComment(ctx context.Context, userID, videoID uint64, content string) error
	AddFavorite(ctx context.Context, userID uint64, title string) (bool, error)
	ListFavorites(ctx context.Context, userID uint64) ([]*dto.FavoriteItemDTO, error)
}

type ConsumptionServiceImpl struct {
	consumptionRepo repository.ConsumptionRepo
	orderRepo       repository.OrderRepo
	videoRepo       repository.VideoRepo
}

func NewConsumptionService(
	consumptionRepo repository.ConsumptionRepo,
	orderRepo repository.OrderRepo,
	videoRepo repository.VideoRepo,
) ConsumptionService {
	return &ConsumptionServiceImpl{
		consumptionRepo: consumptionRepo,
		orderRepo:       orderRepo,
		videoRepo:       videoRepo,
	}
}

// RecordWatch 有待观看订单或此前看过才允许播放
// 核销订单与写观看记录由仓储层保证原子
func (s *ConsumptionServiceImpl) RecordWatch(ctx context.Context, userID, videoID uint64) error {
	video, err := s.videoRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return ErrVideoNotFound
	}

	pending, err := s.orderRepo.GetPendingVideoOrderCount(ctx, userID, videoID)
	if err != nil {
		return err
	}
	if pending == 0 {
		watched, err := s.consumptionRepo.CheckWatchExists(ctx, userID, videoID)
		if err != nil {
			return err
		}
		if !watched {
			return ErrVideoNotOrdered
		}
	}

	return s.consumptionRepo.ConsumeOrderAndUpsertWatch(ctx, &model.WatchRecord{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now(),
	})
}

func (s *ConsumptionServiceImpl) RecordLike(ctx context.Context, userID, videoID uint64) error {
	video, err := s.videoRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return ErrVideoNotFound
	}

	return s.consumptionRepo.UpsertLike(ctx, &model.LikeRecord{
		UserID:  userID,
		VideoID: videoID,
		LikedAt: time.Now(),
	})
}

func (s *ConsumptionServiceImpl) RecordRate(ctx context.Context, userID, videoID uint64, rating int) error {
	if rating < 1 || rating > 10 {
		return ErrRatingInvalid
	}

	video, err := s.videoRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return ErrVideoNotFound
	}

	return s.consumptionRepo.UpsertRate(ctx, &model.RateRecord{
		UserID:  userID,
		VideoID: videoID,
		Rating:  rating,
		RatedAt: time.Now(),
	})
}

func (s *ConsumptionServiceImpl) RecordComment(ctx context.Context, userID, videoID uint64, content string) error {
	if content == "" {
		return ErrParamInvalid
	}

	video, err := s.videoRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return ErrVideoNotFound
	}

	return s.consumptionRepo.CreateComment(ctx, &model.Comment{
		UserID:    userID,
		VideoID:   videoID,
		Content:   content,
		CreatedAt: time.Now(),
	})
}

// AddFavorite 按片名收藏，已收藏返回 (true, nil) 而不是错误
func (s *ConsumptionServiceImpl) AddFavorite(ctx context.Context, userID uint64, title string) (bool, error) {
	video, err := s.videoRepo.GetVideoByTitle(ctx, title)
	if err != nil {
		return false, err
	}
	if video == nil {
		return false, ErrVideoNotFound
	}

	err = s.consumptionRepo.CreateLike(ctx, &model.LikeRecord{
		UserID:  userID,
		VideoID: video.ID,
		LikedAt: time.Now(),
	})
	if err != nil {
		if isDuplicateError(err) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// ListFavorites 最近收藏列表，按收藏时间倒序，最多 10 条
func (s *ConsumptionServiceImpl) ListFavorites(ctx context.Context, userID uint64) ([]*dto.FavoriteItemDTO, error) {
	entries, err := s.consumptionRepo.GetRecentFavorites(ctx, userID, consts.FavoritesWindowSize)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.FavoriteItemDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, &dto.FavoriteItemDTO{
			VideoID: entry.VideoID,
			Title:   entry.Title,
			LikedAt: entry.LikedAt,
		})
	}
	return items, nil
}

// isDuplicateError 判断 MySQL 唯一键冲突
func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
