package model

import (
	"time"

	"github.com/google/uuid"
)

// services — каталог услуг салона.
// Запись неизменяема после создания: эндпоинтов update/delete нет.
type Service struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name string `gorm:"type:varchar(255);not null;index" json:"name"`

	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

// ServiceSnapshot — копия услуги по значению, вшиваемая в мастера и
// в запись о встрече. Живой join намеренно не используется: изменение
// каталога не должно менять уже созданные записи.
type ServiceSnapshot struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Snapshot снимает копию услуги для встраивания.
func (s Service) Snapshot() ServiceSnapshot {
	return ServiceSnapshot{ID: s.ID, Name: s.Name}
}
