package models

import (
	"time"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

// Request модели

// CreateBerthRequest запрос на регистрацию нового причала
// Физические лимиты опциональны: причал без лимитов принимает любые суда
type CreateBerthRequest struct {
	Name          string   `json:"name"`
	Capacity      int      `json:"capacity"`
	MaxShipLength *float64 `json:"maxShipLength,omitempty"`
	MaxDraft      *float64 `json:"maxDraft,omitempty"`
	HourlyRate    string   `json:"hourlyRate"` // Decimal строкой
}

// UpdateBerthRequest запрос на изменение атрибутов причала
// nil-поля остаются без изменений
type UpdateBerthRequest struct {
	Name             *string  `json:"name,omitempty"`
	Capacity         *int     `json:"capacity,omitempty"`
	MaxShipLength    *float64 `json:"maxShipLength,omitempty"`
	MaxDraft         *float64 `json:"maxDraft,omitempty"`
	HourlyRate       *string  `json:"hourlyRate,omitempty"` // Decimal строкой
	UnderMaintenance *bool    `json:"underMaintenance,omitempty"`
}

// Response модели

// BerthResponse ответ с данными причала
type BerthResponse struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Capacity          int      `json:"capacity"`
	CurrentLoad       int      `json:"currentLoad"`
	AvailableCapacity int      `json:"availableCapacity"`
	MaxShipLength     *float64 `json:"maxShipLength,omitempty"`
	MaxDraft          *float64 `json:"maxDraft,omitempty"`
	HourlyRate        string   `json:"hourlyRate"` // Decimal строкой
	Status            string   `json:"status"`
	UnderMaintenance  bool     `json:"underMaintenance"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainBerth конвертирует domain модель в DTO
func FromDomainBerth(b *domain.Berth) *BerthResponse {
	if b == nil {
		return nil
	}

	return &BerthResponse{
		ID:                b.ID,
		Name:              b.Name,
		Capacity:          b.Capacity,
		CurrentLoad:       b.CurrentLoad,
		AvailableCapacity: b.AvailableCapacity(),
		MaxShipLength:     b.MaxShipLength,
		MaxDraft:          b.MaxDraft,
		HourlyRate:        b.HourlyRate.StringFixed(2),
		Status:            string(b.Status),
		UnderMaintenance:  b.UnderMaintenance,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}
