package repository

import (
	"gather_server/internal/model"

	"gorm.io/gorm"
)

type listEventRepository struct {
	db *gorm.DB
}

// NewListEventRepository creates a ListEventRepository backed by gorm.
func NewListEventRepository(db *gorm.DB) ListEventRepository {
	return &listEventRepository{db: db}
}

func (r *listEventRepository) FindById(id uint) (*model.ListEvent, error) {
	var le model.ListEvent
	if err := r.db.First(&le, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "find list link id=%d", id)
	}
	return &le, nil
}

func (r *listEventRepository) FindByParticipantAndEvent(participantId uint, eventUuid string) (*model.ListEvent, error) {
	var le model.ListEvent
	err := r.db.Where("participant_id = ? AND event_uuid = ?", participantId, eventUuid).First(&le).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find list link participant=%d event=%s", participantId, eventUuid)
	}
	return &le, nil
}

func (r *listEventRepository) FindByEvent(eventUuid string) ([]model.ListEvent, error) {
	var links []model.ListEvent
	if err := r.db.Where("event_uuid = ?", eventUuid).Find(&links).Error; err != nil {
		return nil, wrapDBErrorf(err, "find list links event=%s", eventUuid)
	}
	return links, nil
}

func (r *listEventRepository) Create(le *model.ListEvent) error {
	if err := r.db.Create(le).Error; err != nil {
		return wrapDBError(err, "create list link")
	}
	return nil
}

func (r *listEventRepository) Delete(id uint) error {
	if err := r.db.Unscoped().Delete(&model.ListEvent{}, id).Error; err != nil {
		return wrapDBErrorf(err, "delete list link id=%d", id)
	}
	return nil
}
