package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment status of a usage charge
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// BerthUsageCharge финансовая запись, создаваемая при release назначения
// Создаётся ровно один раз на завершённое назначение (one-to-one)
type BerthUsageCharge struct {
	ID                int64
	BerthAssignmentID int64

	HourlyRate decimal.Decimal // снимок тарифа причала на момент расчёта
	TotalHours int64           // фактическая занятость, округлённая вверх до часа

	BaseCharges    decimal.Decimal // HourlyRate * TotalHours
	ServiceCharges decimal.Decimal
	TotalCharges   decimal.Decimal // BaseCharges + ServiceCharges

	ChargedAt     time.Time
	PaymentStatus PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the charge has not been settled yet
func (c *BerthUsageCharge) IsPending() bool {
	return c.PaymentStatus == PaymentStatusPending
}

// CanTransitionTo проверяет допустимость перехода платёжного статуса
// Разрешены только pending -> paid, pending -> overdue и overdue -> paid
func (c *BerthUsageCharge) CanTransitionTo(next PaymentStatus) bool {
	switch c.PaymentStatus {
	case PaymentStatusPending:
		return next == PaymentStatusPaid || next == PaymentStatusOverdue
	case PaymentStatusOverdue:
		return next == PaymentStatusPaid
	default:
		return false
	}
}
