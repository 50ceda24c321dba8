package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// masters — специалисты, к которым записываются клиенты.
type Master struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name      string `gorm:"type:varchar(255);not null;index" json:"name"`
	AvatarURL string `gorm:"type:varchar(512)" json:"avatarUrl"`

	// Копии услуг по значению (не join-таблица): правка каталога
	// услуг не распространяется на уже созданного мастера.
	Services datatypes.JSONSlice[ServiceSnapshot] `json:"services"`

	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

// MasterSnapshot — копия мастера для встраивания в запись о встрече.
type MasterSnapshot struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	AvatarURL string            `json:"avatarUrl"`
	Services  []ServiceSnapshot `json:"services"`
}

// Snapshot снимает копию мастера вместе с его списком услуг.
func (m Master) Snapshot() MasterSnapshot {
	services := make([]ServiceSnapshot, len(m.Services))
	copy(services, m.Services)
	return MasterSnapshot{
		ID:        m.ID,
		Name:      m.Name,
		AvatarURL: m.AvatarURL,
		Services:  services,
	}
}
