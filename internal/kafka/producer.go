package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

// KafkaProducer writes through a shared kafka-go writer; the topic is set
// per message so one producer serves every outbox topic.
type KafkaProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewKafkaProducer(brokers []string, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaProducer{writer: writer, logger: logger}
}

func (p *KafkaProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	p.logger.Info("closing kafka producer")
	return p.writer.Close()
}

// ConsolePrinter stands in for Kafka in local development: messages are
// printed instead of published.
type ConsolePrinter struct {
	logger *zap.Logger
}

func NewConsolePrinter(logger *zap.Logger) *ConsolePrinter {
	logger.Info("initialized console notification producer")
	return &ConsolePrinter{logger: logger}
}

func (p *ConsolePrinter) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	select {
	case <-time.After(50 * time.Millisecond):
		p.logger.Info("notification (console)",
			zap.String("topic", topic),
			zap.ByteString("key", key),
			zap.ByteString("value", value))
		return nil
	case <-ctx.Done():
		p.logger.Warn("notification cancelled", zap.String("topic", topic), zap.ByteString("key", key))
		return ctx.Err()
	}
}

func (p *ConsolePrinter) Close() error {
	return nil
}
