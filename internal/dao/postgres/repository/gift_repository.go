package repository

import (
	"gather_server/internal/model"

	"gorm.io/gorm"
)

type giftRepository struct {
	db *gorm.DB
}

// NewGiftRepository creates a GiftRepository backed by gorm.
func NewGiftRepository(db *gorm.DB) GiftRepository {
	return &giftRepository{db: db}
}

func (r *giftRepository) FindListById(id uint) (*model.ListGift, error) {
	var list model.ListGift
	if err := r.db.Preload("Gifts").First(&list, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "find gift list id=%d", id)
	}
	return &list, nil
}

func (r *giftRepository) FindListsByUser(userUuid string) ([]model.ListGift, error) {
	var lists []model.ListGift
	err := r.db.Preload("Gifts").
		Where("user_uuid = ?", userUuid).
		Find(&lists).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find gift lists user=%s", userUuid)
	}
	return lists, nil
}

func (r *giftRepository) CreateList(list *model.ListGift) error {
	if err := r.db.Create(list).Error; err != nil {
		return wrapDBError(err, "create gift list")
	}
	return nil
}

func (r *giftRepository) DeleteList(id uint) error {
	// Gifts first, then the list, kept atomic by the caller's transaction.
	if err := r.db.Unscoped().Where("list_id = ?", id).Delete(&model.Gift{}).Error; err != nil {
		return wrapDBErrorf(err, "delete gifts of list id=%d", id)
	}
	if err := r.db.Unscoped().Delete(&model.ListGift{}, id).Error; err != nil {
		return wrapDBErrorf(err, "delete gift list id=%d", id)
	}
	return nil
}

func (r *giftRepository) FindGiftById(id uint) (*model.Gift, error) {
	var gift model.Gift
	if err := r.db.First(&gift, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "find gift id=%d", id)
	}
	return &gift, nil
}

func (r *giftRepository) CreateGift(gift *model.Gift) error {
	if err := r.db.Create(gift).Error; err != nil {
		return wrapDBError(err, "create gift")
	}
	return nil
}

func (r *giftRepository) DeleteGift(id uint) error {
	if err := r.db.Unscoped().Delete(&model.Gift{}, id).Error; err != nil {
		return wrapDBErrorf(err, "delete gift id=%d", id)
	}
	return nil
}

// UpdateGiftTaken toggles taken/taken_by in one statement; the pair never
// changes independently.
func (r *giftRepository) UpdateGiftTaken(id uint, taken bool, takenBy string) error {
	err := r.db.Model(&model.Gift{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"taken": taken, "taken_by": takenBy}).Error
	if err != nil {
		return wrapDBErrorf(err, "update gift taken id=%d", id)
	}
	return nil
}
