package repository

import (
	"gather_server/internal/model"

	"gorm.io/gorm"
)

type eventInvitationRepository struct {
	db *gorm.DB
}

// NewEventInvitationRepository creates an EventInvitationRepository backed by gorm.
func NewEventInvitationRepository(db *gorm.DB) EventInvitationRepository {
	return &eventInvitationRepository{db: db}
}

func (r *eventInvitationRepository) FindByEventAndUser(eventUuid, userUuid string) (*model.EventInvitation, error) {
	var inv model.EventInvitation
	err := r.db.Where("event_uuid = ? AND user_uuid = ?", eventUuid, userUuid).First(&inv).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find event invitation event=%s user=%s", eventUuid, userUuid)
	}
	return &inv, nil
}

func (r *eventInvitationRepository) FindByUser(userUuid string) ([]model.EventInvitation, error) {
	var invs []model.EventInvitation
	if err := r.db.Where("user_uuid = ?", userUuid).Find(&invs).Error; err != nil {
		return nil, wrapDBErrorf(err, "find event invitations user=%s", userUuid)
	}
	return invs, nil
}

func (r *eventInvitationRepository) FindUsersInvited(eventUuid string, userUuids []string) ([]string, error) {
	if len(userUuids) == 0 {
		return nil, nil
	}
	var invited []string
	err := r.db.Model(&model.EventInvitation{}).
		Where("event_uuid = ? AND user_uuid IN ?", eventUuid, userUuids).
		Pluck("user_uuid", &invited).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find invited users event=%s", eventUuid)
	}
	return invited, nil
}

func (r *eventInvitationRepository) CountByUser(userUuid string) (int64, error) {
	var count int64
	err := r.db.Model(&model.EventInvitation{}).
		Where("user_uuid = ?", userUuid).
		Count(&count).Error
	if err != nil {
		return 0, wrapDBErrorf(err, "count event invitations user=%s", userUuid)
	}
	return count, nil
}

// CreateBatch inserts all rows in one statement so a unique violation on any
// invitee aborts the whole batch.
func (r *eventInvitationRepository) CreateBatch(invitations []model.EventInvitation) error {
	if len(invitations) == 0 {
		return nil
	}
	if err := r.db.Create(&invitations).Error; err != nil {
		return wrapDBError(err, "batch create event invitations")
	}
	return nil
}

func (r *eventInvitationRepository) Delete(id uint) error {
	if err := r.db.Unscoped().Delete(&model.EventInvitation{}, id).Error; err != nil {
		return wrapDBErrorf(err, "delete event invitation id=%d", id)
	}
	return nil
}
