package chat

import (
	"encoding/json"
	"sync"

	"gather_server/internal/dao/postgres/repository"
	"gather_server/internal/dto/respond"
	"gather_server/internal/model"
	"gather_server/pkg/errorx"

	"go.uber.org/zap"
)

// dispatcher holds the online registry and the persist-then-fan-out logic
// shared by both broker implementations.
type dispatcher struct {
	clients sync.Map // userId -> *UserConn
	repos   *repository.Repositories
}

func newDispatcher(repos *repository.Repositories) *dispatcher {
	return &dispatcher{repos: repos}
}

func (d *dispatcher) register(client *UserConn) {
	d.clients.Store(client.Uuid, client)
	zap.L().Info("chat client online", zap.String("user", client.Uuid))
}

// unregister removes exactly this connection; a reconnect that already
// replaced the registry entry is left alone.
func (d *dispatcher) unregister(client *UserConn) {
	if d.clients.CompareAndDelete(client.Uuid, client) {
		zap.L().Info("chat client offline", zap.String("user", client.Uuid))
	}
}

func (d *dispatcher) getClient(userId string) *UserConn {
	if value, ok := d.clients.Load(userId); ok {
		return value.(*UserConn)
	}
	return nil
}

// handle consumes one serialized Frame: authorize the sender, persist the
// message, then push it to every online participant of the event, sender
// included so their view echoes the send.
func (d *dispatcher) handle(data []byte) {
	var frame Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		zap.L().Error("drop malformed chat frame", zap.Error(err))
		return
	}
	if frame.EventId == "" || frame.SenderId == "" || frame.Content == "" {
		zap.L().Warn("drop incomplete chat frame")
		return
	}

	if _, err := d.repos.Participant.FindByEventAndUser(frame.EventId, frame.SenderId); err != nil {
		if errorx.IsNotFound(err) {
			zap.L().Warn("drop chat frame from non-participant",
				zap.String("event", frame.EventId), zap.String("sender", frame.SenderId))
		} else {
			zap.L().Error("authorize chat frame failed", zap.Error(err))
		}
		return
	}

	msg := &model.Message{
		EventUuid:  frame.EventId,
		SenderUuid: frame.SenderId,
		Content:    frame.Content,
	}
	if err := d.repos.Message.Create(msg); err != nil {
		zap.L().Error("persist chat message failed", zap.Error(err))
		return
	}

	sender, err := d.repos.User.FindByUuid(frame.SenderId)
	if err != nil {
		zap.L().Error("find chat sender failed", zap.Error(err))
		return
	}
	rsp := respond.ChatMessageRespond{
		EventId:    frame.EventId,
		SenderId:   frame.SenderId,
		SenderName: sender.Nickname,
		Content:    frame.Content,
		CreatedAt:  msg.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	payload, err := json.Marshal(rsp)
	if err != nil {
		zap.L().Error("marshal chat respond failed", zap.Error(err))
		return
	}

	members, err := d.repos.Participant.FindByEvent(frame.EventId)
	if err != nil {
		zap.L().Error("find event participants failed", zap.Error(err))
		return
	}
	for _, m := range members {
		if client := d.getClient(m.UserUuid); client != nil {
			client.push(payload)
		}
	}
}
