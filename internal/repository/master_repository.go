package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/salonhub/booking-calendar/internal/model"
)

type MasterRepository interface {
	// Получить мастера по ID.
	GetByID(ctx context.Context, id string) (*model.Master, error)
	// Создать мастера (используется сидом).
	Create(ctx context.Context, master *model.Master) error
	// Список мастеров с подстрочным поиском по имени без учёта регистра.
	List(ctx context.Context, search string) ([]model.Master, error)
}

// Реализация на GORM.
type GormMasterRepository struct {
	db *gorm.DB
}

func NewGormMasterRepository(db *gorm.DB) *GormMasterRepository {
	return &GormMasterRepository{db: db}
}

func (r *GormMasterRepository) GetByID(ctx context.Context, id string) (*model.Master, error) {
	var m model.Master
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GormMasterRepository) Create(ctx context.Context, master *model.Master) error {
	return r.db.WithContext(ctx).Create(master).Error
}

func (r *GormMasterRepository) List(ctx context.Context, search string) ([]model.Master, error) {
	q := r.db.WithContext(ctx).Model(&model.Master{})
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var masters []model.Master
	if err := q.Order("name ASC").Find(&masters).Error; err != nil {
		return nil, err
	}
	return masters, nil
}
