package chat

import (
	"context"

	"gather_server/pkg/constants"
	"gather_server/pkg/errorx"

	"go.uber.org/zap"
)

// ChannelBroker routes frames through an in-process channel. Suitable for a
// single server instance; multi-instance deployments need the Kafka broker
// so all instances observe every frame.
type ChannelBroker struct {
	dispatcher *dispatcher
	transmit   chan []byte
	done       chan struct{}
}

// NewChannelBroker builds the in-process broker.
func NewChannelBroker(d *dispatcher) *ChannelBroker {
	return &ChannelBroker{
		dispatcher: d,
		transmit:   make(chan []byte, constants.CHANNEL_SIZE),
		done:       make(chan struct{}),
	}
}

// Publish enqueues one frame. A full channel rejects the frame immediately
// instead of blocking the caller's read loop, so the context is never
// waited on here.
func (b *ChannelBroker) Publish(_ context.Context, msg []byte) error {
	select {
	case b.transmit <- msg:
		return nil
	default:
		zap.L().Warn("chat transmit channel full, frame dropped")
		return errorx.ErrServerBusy
	}
}

func (b *ChannelBroker) RegisterClient(client *UserConn)   { b.dispatcher.register(client) }
func (b *ChannelBroker) UnregisterClient(client *UserConn) { b.dispatcher.unregister(client) }
func (b *ChannelBroker) GetClient(userId string) *UserConn { return b.dispatcher.getClient(userId) }

// Start consumes the transmit channel until Close.
func (b *ChannelBroker) Start() {
	zap.L().Info("channel broker started")
	for {
		select {
		case data := <-b.transmit:
			b.dispatcher.handle(data)
		case <-b.done:
			return
		}
	}
}

func (b *ChannelBroker) Close() {
	close(b.done)
}
