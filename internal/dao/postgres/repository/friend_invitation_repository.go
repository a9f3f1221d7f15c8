package repository

import (
	"gather_server/internal/model"

	"gorm.io/gorm"
)

type friendInvitationRepository struct {
	db *gorm.DB
}

// NewFriendInvitationRepository creates a FriendInvitationRepository backed by gorm.
func NewFriendInvitationRepository(db *gorm.DB) FriendInvitationRepository {
	return &friendInvitationRepository{db: db}
}

func (r *friendInvitationRepository) FindById(id uint) (*model.FriendInvitation, error) {
	var inv model.FriendInvitation
	if err := r.db.First(&inv, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "find friend invitation id=%d", id)
	}
	return &inv, nil
}

func (r *friendInvitationRepository) FindBySenderAndTarget(sender, target string) (*model.FriendInvitation, error) {
	var inv model.FriendInvitation
	err := r.db.Where("user_uuid = ? AND request_uuid = ?", sender, target).First(&inv).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find friend invitation %s->%s", sender, target)
	}
	return &inv, nil
}

func (r *friendInvitationRepository) FindByTarget(target string) ([]model.FriendInvitation, error) {
	var invs []model.FriendInvitation
	if err := r.db.Where("request_uuid = ?", target).Find(&invs).Error; err != nil {
		return nil, wrapDBErrorf(err, "find friend invitations target=%s", target)
	}
	return invs, nil
}

func (r *friendInvitationRepository) CountByTarget(target string) (int64, error) {
	var count int64
	err := r.db.Model(&model.FriendInvitation{}).
		Where("request_uuid = ?", target).
		Count(&count).Error
	if err != nil {
		return 0, wrapDBErrorf(err, "count friend invitations target=%s", target)
	}
	return count, nil
}

func (r *friendInvitationRepository) Create(inv *model.FriendInvitation) error {
	if err := r.db.Create(inv).Error; err != nil {
		return wrapDBError(err, "create friend invitation")
	}
	return nil
}

// Delete removes the row for good; a terminated request must free the
// (sender, target) unique slot for future requests.
func (r *friendInvitationRepository) Delete(id uint) error {
	if err := r.db.Unscoped().Delete(&model.FriendInvitation{}, id).Error; err != nil {
		return wrapDBErrorf(err, "delete friend invitation id=%d", id)
	}
	return nil
}

func (r *friendInvitationRepository) DeleteByTarget(target string) error {
	err := r.db.Unscoped().
		Where("request_uuid = ?", target).
		Delete(&model.FriendInvitation{}).Error
	if err != nil {
		return wrapDBErrorf(err, "delete friend invitations target=%s", target)
	}
	return nil
}
