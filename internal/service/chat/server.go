// Package chat implements the event chat fan-out: WebSocket connections,
// participant-gated delivery, and a message broker with a single-process
// channel implementation and a Kafka implementation for multi-instance
// deployments.
package chat

import (
	"context"

	"gather_server/internal/dao/postgres/repository"
)

// Frame is the broker-internal envelope. The connection layer stamps the
// authenticated sender before publishing, clients never supply SenderId.
type Frame struct {
	EventId  string `json:"eventId"`
	SenderId string `json:"senderId"`
	Content  string `json:"content"`
}

// MessageBroker routes chat frames between connections.
// ChannelBroker keeps everything in process; KafkaBroker round-trips frames
// through a topic so several server instances share one chat.
type MessageBroker interface {
	// Publish hands one serialized Frame to the broker
	Publish(ctx context.Context, msg []byte) error
	// RegisterClient adds a connection to the online registry
	RegisterClient(client *UserConn)
	// UnregisterClient removes a connection from the online registry
	UnregisterClient(client *UserConn)
	// GetClient returns the online connection of a user, nil when offline
	GetClient(userId string) *UserConn
	// Start runs the consume loop until Close
	Start()
	// Close releases broker resources
	Close()
}

// ChatServer bundles the broker and its transport so main only manages one
// lifecycle.
type ChatServer struct {
	Broker      MessageBroker
	kafkaClient *KafkaClient
}

// ChatServerConfig selects the broker implementation.
type ChatServerConfig struct {
	Mode          string // "channel" or "kafka"
	Repos         *repository.Repositories
	KafkaHostPort string
	KafkaTopic    string
	Partition     int
	WriteTimeout  int // seconds, 0 means the client default
}

// NewChatServer builds the broker selected by cfg.Mode; anything but
// "kafka" gets the in-process channel broker.
func NewChatServer(cfg ChatServerConfig) *ChatServer {
	d := newDispatcher(cfg.Repos)
	if cfg.Mode == "kafka" {
		kc := NewKafkaClient(cfg.KafkaHostPort, cfg.KafkaTopic, cfg.WriteTimeout)
		return &ChatServer{
			Broker:      NewKafkaBroker(kc, d, cfg.Partition),
			kafkaClient: kc,
		}
	}
	return &ChatServer{Broker: NewChannelBroker(d)}
}

// Start runs the broker consume loop; call in a goroutine.
func (cs *ChatServer) Start() {
	cs.Broker.Start()
}

// Close shuts down the broker and any Kafka resources.
func (cs *ChatServer) Close() {
	cs.Broker.Close()
	if cs.kafkaClient != nil {
		cs.kafkaClient.Close()
	}
}
