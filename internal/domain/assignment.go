package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssignmentStatus represents the lifecycle status of a berth assignment
type AssignmentStatus string

const (
	StatusScheduled AssignmentStatus = "scheduled"
	StatusActive    AssignmentStatus = "active"
	StatusCompleted AssignmentStatus = "completed"
	StatusCancelled AssignmentStatus = "cancelled"
)

// AssignmentType represents the purpose of a berth assignment
type AssignmentType string

const (
	TypeLoading     AssignmentType = "loading"
	TypeUnloading   AssignmentType = "unloading"
	TypeStorage     AssignmentType = "storage"
	TypeMaintenance AssignmentType = "maintenance"
	TypeInspection  AssignmentType = "inspection"
)

// AssignmentPriority informational priority of an assignment
// Используется только для сортировки и отчётности, не для вытеснения броней
type AssignmentPriority string

const (
	PriorityHigh   AssignmentPriority = "high"
	PriorityMedium AssignmentPriority = "medium"
	PriorityLow    AssignmentPriority = "low"
)

// BerthAssignment represents a reservation of a berth for a ship and/or container
// over a time window
type BerthAssignment struct {
	ID      int64
	BerthID int64

	// Хотя бы одна из ссылок должна быть задана
	ShipID      *int64
	ContainerID *int64

	AssignmentType AssignmentType
	Priority       AssignmentPriority
	Status         AssignmentStatus

	ScheduledArrival   time.Time
	ScheduledDeparture time.Time
	ActualArrival      *time.Time
	ActualDeparture    *time.Time

	AssignedAt time.Time
	ReleasedAt *time.Time

	ContainerCount int
	Cost           *decimal.Decimal // итоговая стоимость, заполняется при release

	// Denormalized data for history
	ShipName        *string
	ContainerNumber *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the scheduled occupation window of the assignment
func (a *BerthAssignment) Window() Window {
	return Window{Start: a.ScheduledArrival, End: a.ScheduledDeparture}
}

// IsTerminal returns true if the assignment reached a terminal state
func (a *BerthAssignment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// HoldsCapacity returns true if the assignment currently holds ledger load
// Загрузка резервируется при создании и возвращается при release/cancel
func (a *BerthAssignment) HoldsCapacity() bool {
	return a.Status == StatusScheduled || a.Status == StatusActive
}

// CanBeUpdated returns true if the assignment can still be modified
func (a *BerthAssignment) CanBeUpdated() bool {
	return a.Status == StatusScheduled || a.Status == StatusActive
}

// CanRecordArrival returns true if arrival can be recorded
func (a *BerthAssignment) CanRecordArrival() bool {
	return a.Status == StatusScheduled
}

// EffectiveStart возвращает момент начала фактической занятости для биллинга
// Если прибытие не было зафиксировано, тарификация идёт от момента назначения
func (a *BerthAssignment) EffectiveStart() time.Time {
	if a.ActualArrival != nil {
		return *a.ActualArrival
	}
	return a.AssignedAt
}

// AssignmentFilter фильтр для выборки назначений причала
type AssignmentFilter struct {
	BerthID         *int64            // Фильтр по причалу (опционально)
	ShipID          *int64            // Фильтр по судну (опционально)
	From            *time.Time        // Начало периода по scheduled_arrival (опционально)
	To              *time.Time        // Конец периода по scheduled_arrival (опционально)
	Status          *AssignmentStatus // Фильтр по статусу (опционально)
	IncludeTerminal bool              // Включать ли завершённые и отменённые назначения
}
