package repository

import (
	"gather_server/internal/model"

	"gorm.io/gorm"
)

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates an EventRepository backed by gorm.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) FindByUuid(uuid string) (*model.Event, error) {
	var event model.Event
	if err := r.db.Where("uuid = ?", uuid).First(&event).Error; err != nil {
		return nil, wrapDBErrorf(err, "find event uuid=%s", uuid)
	}
	return &event, nil
}

func (r *eventRepository) FindByUuids(uuids []string) ([]model.Event, error) {
	if len(uuids) == 0 {
		return nil, nil
	}
	var events []model.Event
	if err := r.db.Where("uuid IN ?", uuids).Find(&events).Error; err != nil {
		return nil, wrapDBError(err, "batch find events")
	}
	return events, nil
}

func (r *eventRepository) Create(event *model.Event) error {
	if err := r.db.Create(event).Error; err != nil {
		return wrapDBError(err, "create event")
	}
	return nil
}

func (r *eventRepository) Update(event *model.Event) error {
	if err := r.db.Save(event).Error; err != nil {
		return wrapDBError(err, "update event")
	}
	return nil
}
