// Package message implements event chat history reads.
package message

import (
	"gather_server/internal/dao/postgres/repository"
	"gather_server/internal/dto/respond"
	"gather_server/internal/service/participant"
	"gather_server/pkg/errorx"

	"go.uber.org/zap"
)

type messageService struct {
	repos *repository.Repositories
}

// NewMessageService wires the service onto the repository aggregate.
func NewMessageService(repos *repository.Repositories) *messageService {
	return &messageService{repos: repos}
}

// History returns an event's chat messages in creation order. The caller
// must be a participant.
func (s *messageService) History(callerId, eventId string) ([]respond.ChatMessageRespond, error) {
	if _, _, err := participant.Resolve(s.repos, eventId, callerId, "you are not a participant of this event"); err != nil {
		return nil, err
	}

	messages, err := s.repos.Message.FindByEvent(eventId)
	if err != nil {
		zap.L().Error("find event messages failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(messages) == 0 {
		return []respond.ChatMessageRespond{}, nil
	}

	senderIds := make([]string, 0, len(messages))
	for _, m := range messages {
		senderIds = append(senderIds, m.SenderUuid)
	}
	senders, err := s.repos.User.FindByUuids(senderIds)
	if err != nil {
		zap.L().Error("batch find senders failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	names := make(map[string]string, len(senders))
	for _, u := range senders {
		names[u.Uuid] = u.Nickname
	}

	rsp := make([]respond.ChatMessageRespond, 0, len(messages))
	for _, m := range messages {
		rsp = append(rsp, respond.ChatMessageRespond{
			EventId:    m.EventUuid,
			SenderId:   m.SenderUuid,
			SenderName: names[m.SenderUuid],
			Content:    m.Content,
			CreatedAt:  m.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return rsp, nil
}
