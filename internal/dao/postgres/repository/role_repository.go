package repository

import (
	"sync"

	"gather_server/internal/model"

	"gorm.io/gorm"
)

// roleRepository resolves the role vocabulary. Rows never change after
// seeding, so name and id lookups are memoized.
type roleRepository struct {
	db *gorm.DB

	mu     sync.RWMutex
	byName map[string]model.RoleEvent
	byId   map[uint]model.RoleEvent
}

// NewRoleRepository creates a RoleRepository backed by gorm.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{
		db:     db,
		byName: make(map[string]model.RoleEvent),
		byId:   make(map[uint]model.RoleEvent),
	}
}

func (r *roleRepository) FindByName(name string) (*model.RoleEvent, error) {
	r.mu.RLock()
	if cached, ok := r.byName[name]; ok {
		r.mu.RUnlock()
		return &cached, nil
	}
	r.mu.RUnlock()

	var re model.RoleEvent
	if err := r.db.Where("name = ?", name).First(&re).Error; err != nil {
		return nil, wrapDBErrorf(err, "find role name=%s", name)
	}
	r.remember(re)
	return &re, nil
}

func (r *roleRepository) FindById(id uint) (*model.RoleEvent, error) {
	r.mu.RLock()
	if cached, ok := r.byId[id]; ok {
		r.mu.RUnlock()
		return &cached, nil
	}
	r.mu.RUnlock()

	var re model.RoleEvent
	if err := r.db.First(&re, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "find role id=%d", id)
	}
	r.remember(re)
	return &re, nil
}

// Seed inserts missing vocabulary rows. Existing rows are left untouched so
// the vocabulary stays immutable after the first boot.
func (r *roleRepository) Seed(names []string) error {
	for _, name := range names {
		var count int64
		if err := r.db.Model(&model.RoleEvent{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return wrapDBErrorf(err, "count role name=%s", name)
		}
		if count > 0 {
			continue
		}
		if err := r.db.Create(&model.RoleEvent{Name: name}).Error; err != nil {
			return wrapDBErrorf(err, "seed role name=%s", name)
		}
	}
	return nil
}

func (r *roleRepository) remember(re model.RoleEvent) {
	r.mu.Lock()
	r.byName[re.Name] = re
	r.byId[re.ID] = re
	r.mu.Unlock()
}
