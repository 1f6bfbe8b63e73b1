package kafka

import (
	"Marquee/internal/pkg/consts"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

type RatesHandler struct{}

func NewRatesHandler() *RatesHandler {
	return &RatesHandler{}
}

func (s *RatesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("video rate consumer setup")
	return nil
}

func (s *RatesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("video rate consumer cleanup")
	return nil
}

func (s *RatesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-rate consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-rate process batch error", "err", err)
		return err
	}
	return nil
}

func (s *RatesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "rates")
	if err != nil {
		return err
	}

	videoID := StrToUint64(canalMsg.Data[0]["video_id"])

	switch canalMsg.Type {
	case INSERT:
		ExecAction(ctx, ActionParams{
			TargetID:       videoID,
			CountKeyPrefix: consts.VideoRateKey,
			DirtyKey:       consts.VideoDirtyKey,
			IsIncrement:    true,
		})
		log.InfoContext(ctx, "video rate inserted", "videoID", videoID)
	case UPDATE:
		// 改分不改计数，但均分变了要标脏
		if videoID != 0 {
			if err = redisMarkDirty(ctx, videoID); err != nil {
				return err
			}
		}
		log.InfoContext(ctx, "video rate updated", "videoID", videoID)
	case DELETE:
		ExecAction(ctx, ActionParams{
			TargetID:       videoID,
			CountKeyPrefix: consts.VideoRateKey,
			DirtyKey:       consts.VideoDirtyKey,
			IsIncrement:    false,
		})
		log.InfoContext(ctx, "video rate deleted", "videoID", videoID)
	}
	return nil
}
