package repository

import (
	"gather_server/internal/model"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a MessageRepository backed by gorm.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(msg *model.Message) error {
	if err := r.db.Create(msg).Error; err != nil {
		return wrapDBError(err, "create message")
	}
	return nil
}

func (r *messageRepository) FindByEvent(eventUuid string) ([]model.Message, error) {
	var msgs []model.Message
	err := r.db.Where("event_uuid = ?", eventUuid).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find messages event=%s", eventUuid)
	}
	return msgs, nil
}
