package repository

import (
	"gather_server/internal/model"

	"gorm.io/gorm"
)

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a FriendRepository backed by gorm.
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) FindByPair(a, b string) (*model.Friend, error) {
	lo, hi := model.OrderPair(a, b)
	var friend model.Friend
	err := r.db.Where("user1_uuid = ? AND user2_uuid = ?", lo, hi).First(&friend).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find friend pair %s/%s", lo, hi)
	}
	return &friend, nil
}

func (r *friendRepository) ExistsPair(a, b string) (bool, error) {
	lo, hi := model.OrderPair(a, b)
	var count int64
	err := r.db.Model(&model.Friend{}).
		Where("user1_uuid = ? AND user2_uuid = ?", lo, hi).
		Count(&count).Error
	if err != nil {
		return false, wrapDBErrorf(err, "check friend pair %s/%s", lo, hi)
	}
	return count > 0, nil
}

func (r *friendRepository) FindByUser(userUuid string) ([]model.Friend, error) {
	var friends []model.Friend
	err := r.db.Where("user1_uuid = ? OR user2_uuid = ?", userUuid, userUuid).
		Find(&friends).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find friends user=%s", userUuid)
	}
	return friends, nil
}

func (r *friendRepository) Create(a, b string) error {
	lo, hi := model.OrderPair(a, b)
	friend := model.Friend{User1Uuid: lo, User2Uuid: hi}
	if err := r.db.Create(&friend).Error; err != nil {
		return wrapDBErrorf(err, "create friend pair %s/%s", lo, hi)
	}
	return nil
}

func (r *friendRepository) DeletePair(a, b string) error {
	lo, hi := model.OrderPair(a, b)
	err := r.db.Unscoped().
		Where("user1_uuid = ? AND user2_uuid = ?", lo, hi).
		Delete(&model.Friend{}).Error
	if err != nil {
		return wrapDBErrorf(err, "delete friend pair %s/%s", lo, hi)
	}
	return nil
}
