package repository

import (
	"time"

	"gather_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bringRepository struct {
	db *gorm.DB
}

// NewBringRepository creates a BringRepository backed by gorm.
func NewBringRepository(db *gorm.DB) BringRepository {
	return &bringRepository{db: db}
}

func (r *bringRepository) FindItemById(id uint) (*model.BringItem, error) {
	var item model.BringItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "find bring item id=%d", id)
	}
	return &item, nil
}

// FindItemByIdLocked reads the item row under SELECT ... FOR UPDATE.
// Concurrent take/release reconciliations on one item serialize on this row
// lock, which is what keeps the is_taken cache consistent with the live sum.
func (r *bringRepository) FindItemByIdLocked(id uint) (*model.BringItem, error) {
	var item model.BringItem
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, id).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "lock bring item id=%d", id)
	}
	return &item, nil
}

func (r *bringRepository) FindItemsByEvent(eventUuid string) ([]model.BringItem, error) {
	var items []model.BringItem
	err := r.db.Preload("Takes").
		Where("event_uuid = ?", eventUuid).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find bring items event=%s", eventUuid)
	}
	return items, nil
}

func (r *bringRepository) CreateItem(item *model.BringItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return wrapDBError(err, "create bring item")
	}
	return nil
}

func (r *bringRepository) DeleteItem(id uint) error {
	if err := r.db.Unscoped().Where("bring_item_id = ?", id).Delete(&model.Taken{}).Error; err != nil {
		return wrapDBErrorf(err, "delete pledges of bring item id=%d", id)
	}
	if err := r.db.Unscoped().Delete(&model.BringItem{}, id).Error; err != nil {
		return wrapDBErrorf(err, "delete bring item id=%d", id)
	}
	return nil
}

func (r *bringRepository) UpdateCoverage(id uint, isTaken bool, takenAt *time.Time) error {
	updates := map[string]interface{}{
		"is_taken": isTaken,
		"taken_at": nil,
	}
	if takenAt != nil {
		updates["taken_at"] = *takenAt
	}
	err := r.db.Model(&model.BringItem{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return wrapDBErrorf(err, "update coverage bring item id=%d", id)
	}
	return nil
}

func (r *bringRepository) FindTake(bringItemId uint, userUuid string) (*model.Taken, error) {
	var take model.Taken
	err := r.db.Where("bring_item_id = ? AND user_uuid = ?", bringItemId, userUuid).First(&take).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find pledge item=%d user=%s", bringItemId, userUuid)
	}
	return &take, nil
}

// UpsertTake creates the user's pledge or overwrites its quantity. Last
// pledge wins; quantities are not additive.
func (r *bringRepository) UpsertTake(take *model.Taken) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "bring_item_id"}, {Name: "user_uuid"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(take).Error
	if err != nil {
		return wrapDBErrorf(err, "upsert pledge item=%d user=%s", take.BringItemId, take.UserUuid)
	}
	return nil
}

func (r *bringRepository) DeleteTake(bringItemId uint, userUuid string) error {
	res := r.db.Unscoped().
		Where("bring_item_id = ? AND user_uuid = ?", bringItemId, userUuid).
		Delete(&model.Taken{})
	if res.Error != nil {
		return wrapDBErrorf(res.Error, "delete pledge item=%d user=%s", bringItemId, userUuid)
	}
	if res.RowsAffected == 0 {
		return wrapDBErrorf(gorm.ErrRecordNotFound, "delete pledge item=%d user=%s", bringItemId, userUuid)
	}
	return nil
}

func (r *bringRepository) SumTakes(bringItemId uint) (int, error) {
	var total int64
	err := r.db.Model(&model.Taken{}).
		Where("bring_item_id = ?", bringItemId).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, wrapDBErrorf(err, "sum pledges item=%d", bringItemId)
	}
	return int(total), nil
}
