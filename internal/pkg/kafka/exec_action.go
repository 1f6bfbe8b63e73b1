package kafka

import (
	"Marquee/internal/pkg/consts"
	"Marquee/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"
)

// ActionParams 计数动作参数
type ActionParams struct {
	TargetID       uint64
	CountKeyPrefix string
	DirtyKey       string
	IsIncrement    bool
}

// ExecAction 维护 redis 里的计数器，并把目标标脏等待定时任务回写
func ExecAction(ctx context.Context, params ActionParams) {
	if params.TargetID == 0 {
		return
	}
	rdb := redis.GetRdbClient()
	idStr := strconv.FormatUint(params.TargetID, 10)
	countKey := params.CountKeyPrefix + idStr

	var err error
	if params.IsIncrement {
		err = rdb.Incr(ctx, countKey).Err()
	} else {
		err = rdb.Decr(ctx, countKey).Err()
	}
	if err != nil {
		log.ErrorContext(ctx, "update counter error", "key", countKey, "err", err)
	}

	if err = rdb.SAdd(ctx, params.DirtyKey, idStr).Err(); err != nil {
		log.ErrorContext(ctx, "mark dirty error", "key", params.DirtyKey, "err", err)
	}
}

// redisMarkDirty 只标脏不动计数
func redisMarkDirty(ctx context.Context, videoID uint64) error {
	rdb := redis.GetRdbClient()
	return rdb.SAdd(ctx, consts.VideoDirtyKey, strconv.FormatUint(videoID, 10)).Err()
}
