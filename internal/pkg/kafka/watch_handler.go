package kafka

import (
	"Marquee/internal/pkg/consts"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

type WatchesHandler struct{}

func NewWatchesHandler() *WatchesHandler {
	return &WatchesHandler{}
}

func (s *WatchesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("video watch consumer setup")
	return nil
}

func (s *WatchesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("video watch consumer cleanup")
	return nil
}

func (s *WatchesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-watch consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-watch process batch error", "err", err)
		return err
	}
	return nil
}

func (s *WatchesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "watch_records")
	if err != nil {
		return err
	}

	// 复看走 UPDATE 只刷时间戳，观看人数不变
	if canalMsg.Type != INSERT {
		return nil
	}

	videoID := StrToUint64(canalMsg.Data[0]["video_id"])

	ExecAction(ctx, ActionParams{
		TargetID:       videoID,
		CountKeyPrefix: consts.VideoWatchKey,
		DirtyKey:       consts.VideoDirtyKey,
		IsIncrement:    true,
	})

	log.InfoContext(ctx, "video watch inserted", "videoID", videoID)
	return nil
}
