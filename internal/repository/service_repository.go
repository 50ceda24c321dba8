package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/salonhub/booking-calendar/internal/model"
)

type ServiceRepository interface {
	// Получить услугу по ID.
	GetByID(ctx context.Context, id string) (*model.Service, error)
	// Создать услугу (используется сидом).
	Create(ctx context.Context, service *model.Service) error
	// Список услуг с подстрочным поиском по имени без учёта регистра.
	List(ctx context.Context, search string) ([]model.Service, error)
	// Количество услуг в каталоге.
	Count(ctx context.Context) (int64, error)
}

// Реализация на GORM.
type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) GetByID(ctx context.Context, id string) (*model.Service, error) {
	var s model.Service
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormServiceRepository) Create(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *GormServiceRepository) List(ctx context.Context, search string) ([]model.Service, error) {
	q := r.db.WithContext(ctx).Model(&model.Service{})
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var services []model.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *GormServiceRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Service{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
