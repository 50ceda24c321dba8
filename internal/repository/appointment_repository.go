package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/salonhub/booking-calendar/internal/model"
)

type AppointmentRepository interface {
	// Создать запись. Порядковый номер вставки назначается внутри
	// транзакции, поэтому конкурентные создания сериализуются.
	Create(ctx context.Context, appointment *model.Appointment) error
	// Все записи в порядке вставки — вход для движка выборки.
	ListAll(ctx context.Context) ([]model.Appointment, error)
	// Количество записей.
	Count(ctx context.Context) (int64, error)
}

// Реализация на GORM.
type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

// Количество повторов вставки при гонке за порядковый номер.
const createRetries = 3

func (r *GormAppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	// max(seq)+1 считается в той же транзакции, что и вставка:
	// одинаково работает на sqlite и postgres и сохраняет
	// стабильный порядок вставки для tie-break'а сортировки.
	//
	// На postgres (READ COMMITTED) две конкурентные транзакции могут
	// прочитать одинаковый max; проигравшая падает на уникальном
	// индексе seq и вставка повторяется с новым номером.
	for attempt := 0; ; attempt++ {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var maxSeq int64
			err := tx.Model(&model.Appointment{}).
				Select("COALESCE(MAX(seq), 0)").
				Scan(&maxSeq).Error
			if err != nil {
				return err
			}
			appointment.Seq = maxSeq + 1
			return tx.Create(appointment).Error
		})
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < createRetries {
			continue
		}
		return err
	}
}

func (r *GormAppointmentRepository) ListAll(ctx context.Context) ([]model.Appointment, error) {
	var appointments []model.Appointment
	err := r.db.WithContext(ctx).
		Order("seq ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Appointment{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
