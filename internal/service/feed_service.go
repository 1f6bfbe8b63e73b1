package service

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/pkg/consts"
	"Marquee/internal/repository"
	"context"
	"sort"
)

type FeedService interface {
	GetFeed(ctx context.Context, viewerID uint64) ([]*dto.FeedEntryDTO, error)
}

type FeedServiceImpl struct {
	feedRepo repository.FeedRepo
}

func NewFeedService(feedRepo repository.FeedRepo) FeedService {
	return &FeedServiceImpl{feedRepo: feedRepo}
}

// GetFeed 合并关注用户的观看/点赞/评分动态
// 三类动态各取窗口大小，内存归并后按时间倒序截断
func (s *FeedServiceImpl) GetFeed(ctx context.Context, viewerID uint64) ([]*dto.FeedEntryDTO, error) {
	watches, err := s.feedRepo.GetFollowedWatches(ctx, viewerID, consts.FeedWindowSize)
	if err != nil {
		return nil, err
	}
	likes, err := s.feedRepo.GetFollowedLikes(ctx, viewerID, consts.FeedWindowSize)
	if err != nil {
		return nil, err
	}
	rates, err := s.feedRepo.GetFollowedRates(ctx, viewerID, consts.FeedWindowSize)
	if err != nil {
		return nil, err
	}

	merged := make([]*repository.FeedEvent, 0, len(watches)+len(likes)+len(rates))
	merged = append(merged, watches...)
	merged = append(merged, likes...)
	merged = append(merged, rates...)

	// 稳定排序，时间相同的按并入顺序保持稳定
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].EventTime.After(merged[j].EventTime)
	})

	if len(merged) > consts.FeedWindowSize {
		merged = merged[:consts.FeedWindowSize]
	}

	entries := make([]*dto.FeedEntryDTO, 0, len(merged))
	for _, event := range merged {
		entries = append(entries, &dto.FeedEntryDTO{
			Username:   event.Username,
			VideoTitle: event.VideoTitle,
			Action:     event.Action,
			Rating:     event.Rating,
			EventTime:  event.EventTime,
		})
	}
	return entries, nil
}
