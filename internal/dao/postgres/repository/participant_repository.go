package repository

import (
	"gather_server/internal/model"

	"gorm.io/gorm"
)

type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a ParticipantRepository backed by gorm.
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) FindByEventAndUser(eventUuid, userUuid string) (*model.Participant, error) {
	var p model.Participant
	err := r.db.Preload("Role").
		Where("event_uuid = ? AND user_uuid = ?", eventUuid, userUuid).
		First(&p).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find participant event=%s user=%s", eventUuid, userUuid)
	}
	return &p, nil
}

func (r *participantRepository) FindByEvent(eventUuid string) ([]model.Participant, error) {
	var participants []model.Participant
	err := r.db.Preload("Role").
		Where("event_uuid = ?", eventUuid).
		Find(&participants).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find participants event=%s", eventUuid)
	}
	return participants, nil
}

func (r *participantRepository) FindByUser(userUuid string) ([]model.Participant, error) {
	var participants []model.Participant
	if err := r.db.Where("user_uuid = ?", userUuid).Find(&participants).Error; err != nil {
		return nil, wrapDBErrorf(err, "find participants user=%s", userUuid)
	}
	return participants, nil
}

func (r *participantRepository) Create(p *model.Participant) error {
	if err := r.db.Create(p).Error; err != nil {
		return wrapDBError(err, "create participant")
	}
	return nil
}

func (r *participantRepository) UpdateRole(id uint, roleId uint) error {
	err := r.db.Model(&model.Participant{}).
		Where("id = ?", id).
		Update("role_id", roleId).Error
	if err != nil {
		return wrapDBErrorf(err, "update participant role id=%d", id)
	}
	return nil
}
