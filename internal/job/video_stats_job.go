package job

import (
	"Marquee/internal/pkg/consts"
	"Marquee/internal/pkg/logger"
	"Marquee/internal/pkg/redis"
	"Marquee/internal/pkg/util"
	"Marquee/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// VideoStatsJob 把消费端标脏的影片评分统计回写到库
type VideoStatsJob struct {
	videoSvc service.VideoService
}

func NewVideoStatsJob(videoSvc service.VideoService) *VideoStatsJob {
	return &VideoStatsJob{
		videoSvc: videoSvc,
	}
}

func (s *VideoStatsJob) Run() {
	traceID := "job-video-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// Rename 抢占脏集合，避免和下一轮消费互相覆盖
	processingKey := consts.VideoDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.VideoDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get video dirty set error", "err", err)
		return
	}

	videoIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert video set to int slice error", "err", err)
		return
	}

	synced := 0
	for _, vid := range videoIDs {
		if err = s.videoSvc.SyncVideoStats(ctx, vid); err != nil {
			log.ErrorContext(ctx, "sync video stats error", "videoID", vid, "err", err)
			continue
		}
		synced++
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete processing set error", "err", err)
	}

	log.InfoContext(ctx, "video stats job finished", "dirty", len(videoIDs), "synced", synced)
}
