package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AppointmentStatus string

const (
	AppointmentStatusNew       AppointmentStatus = "new"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusPaid      AppointmentStatus = "paid"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// appointments — записи клиентов.
// Услуга и мастер хранятся полными снапшотами на момент создания,
// а не внешними ключами: последующие правки каталога запись не меняют.
// Отмена — это статус, записи никогда не удаляются.
type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Порядковый номер вставки. Выдаётся репозиторием в транзакции и
	// служит tie-break'ом при сортировке по одинаковому времени.
	Seq int64 `gorm:"not null;uniqueIndex" json:"-"`

	CustomerName string    `gorm:"type:varchar(255);not null" json:"customerName"`
	At           time.Time `gorm:"not null;index" json:"at"`

	Service datatypes.JSONType[ServiceSnapshot] `json:"service"`
	Master  datatypes.JSONType[MasterSnapshot]  `json:"master"`

	Notes  *string           `gorm:"type:text" json:"notes"`
	Status AppointmentStatus `gorm:"type:varchar(32);not null;index" json:"status"`

	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

// ServiceID возвращает id услуги из снапшота.
func (a Appointment) ServiceID() uuid.UUID { return a.Service.Data().ID }

// MasterID возвращает id мастера из снапшота.
func (a Appointment) MasterID() uuid.UUID { return a.Master.Data().ID }
