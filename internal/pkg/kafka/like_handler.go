package kafka

import (
	"Marquee/internal/pkg/consts"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

type LikesHandler struct{}

func NewLikesHandler() *LikesHandler {
	return &LikesHandler{}
}

func (s *LikesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("video like consumer setup")
	return nil
}

func (s *LikesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("video like consumer cleanup")
	return nil
}

func (s *LikesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-like consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-like process batch error", "err", err)
		return err
	}
	return nil
}

func (s *LikesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "likes")
	if err != nil {
		return err
	}

	// 点赞是 upsert，重复点赞走 UPDATE 只刷时间戳，计数不动
	switch canalMsg.Type {
	case INSERT:
		return s.handleInsert(ctx, canalMsg)
	case DELETE:
		return s.handleDelete(ctx, canalMsg)
	default:
		return nil
	}
}

// handleInsert 处理新增点赞：INCR + DIRTY
func (s *LikesHandler) handleInsert(ctx context.Context, msg *CanalMessage) error {
	videoID := StrToUint64(msg.Data[0]["video_id"])

	ExecAction(ctx, ActionParams{
		TargetID:       videoID,
		CountKeyPrefix: consts.VideoLikeKey,
		DirtyKey:       consts.VideoDirtyKey,
		IsIncrement:    true,
	})

	log.InfoContext(ctx, "video like inserted", "videoID", videoID)
	return nil
}

// handleDelete 处理删除点赞：DECR + DIRTY
func (s *LikesHandler) handleDelete(ctx context.Context, msg *CanalMessage) error {
	videoID := StrToUint64(msg.Data[0]["video_id"])

	ExecAction(ctx, ActionParams{
		TargetID:       videoID,
		CountKeyPrefix: consts.VideoLikeKey,
		DirtyKey:       consts.VideoDirtyKey,
		IsIncrement:    false,
	})

	log.InfoContext(ctx, "video unlike processed", "videoID", videoID)
	return nil
}
