package chat

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaClient wraps the underlying writer and reader. Pure transport, no
// chat logic.
type KafkaClient struct {
	Producer *kafka.Writer
	Consumer *kafka.Reader
}

// NewKafkaClient builds a writer/reader pair on one topic. No consumer
// group id is set: every instance must see every frame, so each process
// reads the topic independently.
func NewKafkaClient(hostPort, topic string, writeTimeoutSec int) *KafkaClient {
	if writeTimeoutSec <= 0 {
		writeTimeoutSec = 10
	}
	return &KafkaClient{
		Producer: &kafka.Writer{
			Addr:                   kafka.TCP(hostPort),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           time.Duration(writeTimeoutSec) * time.Second,
			RequiredAcks:           kafka.RequireNone,
			AllowAutoTopicCreation: true,
		},
		Consumer: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        []string{hostPort},
			Topic:          topic,
			CommitInterval: time.Second,
			StartOffset:    kafka.LastOffset,
		}),
	}
}

// Close releases the writer and reader.
func (k *KafkaClient) Close() {
	if err := k.Producer.Close(); err != nil {
		zap.L().Error("close kafka producer failed", zap.Error(err))
	}
	if err := k.Consumer.Close(); err != nil {
		zap.L().Error("close kafka consumer failed", zap.Error(err))
	}
}

// KafkaBroker routes frames through a Kafka topic so multiple server
// instances share one chat.
type KafkaBroker struct {
	dispatcher *dispatcher
	client     *KafkaClient
	partition  int
	cancel     context.CancelFunc
}

// NewKafkaBroker builds the Kafka-backed broker.
func NewKafkaBroker(client *KafkaClient, d *dispatcher, partition int) *KafkaBroker {
	return &KafkaBroker{
		dispatcher: d,
		client:     client,
		partition:  partition,
	}
}

// Publish writes one frame to the topic.
func (b *KafkaBroker) Publish(ctx context.Context, msg []byte) error {
	return b.client.Producer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(b.partition)),
		Value: msg,
	})
}

func (b *KafkaBroker) RegisterClient(client *UserConn)   { b.dispatcher.register(client) }
func (b *KafkaBroker) UnregisterClient(client *UserConn) { b.dispatcher.unregister(client) }
func (b *KafkaBroker) GetClient(userId string) *UserConn { return b.dispatcher.getClient(userId) }

// Start consumes the topic until Close cancels the context.
func (b *KafkaBroker) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	zap.L().Info("kafka broker started")
	for {
		m, err := b.client.Consumer.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return
			}
			zap.L().Error("kafka read failed", zap.Error(err))
			continue
		}
		b.dispatcher.handle(m.Value)
	}
}

func (b *KafkaBroker) Close() {
	if b.cancel != nil {
		b.cancel()
	}
}
