package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BerthStatus represents the operational status of a berth
type BerthStatus string

const (
	BerthStatusAvailable   BerthStatus = "available"
	BerthStatusOccupied    BerthStatus = "occupied"
	BerthStatusMaintenance BerthStatus = "maintenance"
	BerthStatusReserved    BerthStatus = "reserved"
)

// Berth represents a physical docking resource with finite load capacity
type Berth struct {
	ID          int64
	Name        string
	Capacity    int // вместимость в контейнерах (load units)
	CurrentLoad int // текущая загрузка, 0 <= CurrentLoad <= Capacity

	// Физические ограничения (опциональны)
	MaxShipLength *float64 // максимальная длина судна, метры
	MaxDraft      *float64 // максимальная осадка, метры

	HourlyRate       decimal.Decimal
	Status           BerthStatus
	UnderMaintenance bool // ручной флаг обслуживания, перекрывает derived-статус

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AvailableCapacity returns the remaining load units on the berth
func (b *Berth) AvailableCapacity() int {
	return b.Capacity - b.CurrentLoad
}

// CanAccommodate returns true if the berth has room for the given load units
func (b *Berth) CanAccommodate(units int) bool {
	return b.CurrentLoad+units <= b.Capacity
}

// AcceptsNewAssignments returns true if the berth may take new reservations
func (b *Berth) AcceptsNewAssignments() bool {
	return !b.UnderMaintenance
}

// FitsShip проверяет физические ограничения причала для судна
// Нулевые (nil) ограничения трактуются как отсутствие лимита
func (b *Berth) FitsShip(lengthMeters, draftMeters float64) bool {
	if b.MaxShipLength != nil && lengthMeters > *b.MaxShipLength {
		return false
	}
	if b.MaxDraft != nil && draftMeters > *b.MaxDraft {
		return false
	}
	return true
}

// DerivedStatus вычисляет статус причала из загрузки и флага обслуживания
// Статус в базе поддерживается репозиторием при каждом изменении загрузки
func (b *Berth) DerivedStatus() BerthStatus {
	if b.UnderMaintenance {
		return BerthStatusMaintenance
	}
	if b.CurrentLoad > 0 {
		return BerthStatusOccupied
	}
	return BerthStatusAvailable
}
