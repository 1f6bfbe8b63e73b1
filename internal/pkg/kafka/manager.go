package kafka

import (
	"Marquee/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	likesConsumer sarama.ConsumerGroup
	likesHandler  sarama.ConsumerGroupHandler

	ratesConsumer sarama.ConsumerGroup
	ratesHandler  sarama.ConsumerGroupHandler

	watchesConsumer sarama.ConsumerGroup
	watchesHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	likesConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaLikeConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	likesHandler := NewLikesHandler()

	ratesConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaRateConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	ratesHandler := NewRatesHandler()

	watchesConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaWatchConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	watchesHandler := NewWatchesHandler()

	return &ConsumerManager{
		likesConsumer:   likesConsumer,
		likesHandler:    likesHandler,
		ratesConsumer:   ratesConsumer,
		ratesHandler:    ratesHandler,
		watchesConsumer: watchesConsumer,
		watchesHandler:  watchesHandler,
	}, nil
}

// Start 启动所有消费者
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	// 启动 Like Consumer
	go func() {
		topic := cfg.KafkaLikeConsumer.Topic
		log.Info("Like consumer started", "topic", topic)
		for {
			if err := m.likesConsumer.Consume(ctx, []string{topic}, m.likesHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	// 启动 Rate Consumer
	go func() {
		topic := cfg.KafkaRateConsumer.Topic
		log.Info("Rate consumer started", "topic", topic)
		for {
			if err := m.ratesConsumer.Consume(ctx, []string{topic}, m.ratesHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	// 启动 Watch Consumer
	go func() {
		topic := cfg.KafkaWatchConsumer.Topic
		log.Info("Watch consumer started", "topic", topic)
		for {
			if err := m.watchesConsumer.Consume(ctx, []string{topic}, m.watchesHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.likesConsumer.Close(); err != nil {
		log.Error("Failed to close like consumer", "err", err)
	}
	if err := m.ratesConsumer.Close(); err != nil {
		log.Error("Failed to close rate consumer", "err", err)
	}
	if err := m.watchesConsumer.Close(); err != nil {
		log.Error("Failed to close watch consumer", "err", err)
	}

	return nil
}
