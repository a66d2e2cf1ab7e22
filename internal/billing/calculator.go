// Package billing расчёт платы за использование причала
package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

// Calculator чистый калькулятор платы за использование причала
// Не имеет побочных эффектов: только вычисляет значение BerthUsageCharge
type Calculator struct {
	defaultServiceCharge decimal.Decimal
}

// NewCalculator создает калькулятор с набавкой за обслуживание по умолчанию
func NewCalculator(defaultServiceCharge decimal.Decimal) *Calculator {
	return &Calculator{defaultServiceCharge: defaultServiceCharge}
}

// Compute вычисляет плату за фактическую занятость причала
//
// totalHours — длительность от EffectiveStart назначения до releasedAt,
// округлённая вверх до целого часа (неполный час тарифицируется как полный).
// serviceCharges — надбавка; если nil, используется значение по умолчанию.
// Денежные значения считаются в fixed-point decimal, не в float.
func (c *Calculator) Compute(
	assignment *domain.BerthAssignment,
	berth *domain.Berth,
	releasedAt time.Time,
	serviceCharges *decimal.Decimal,
) *domain.BerthUsageCharge {
	hours := BillableHours(assignment.EffectiveStart(), releasedAt)

	base := berth.HourlyRate.Mul(decimal.NewFromInt(hours))

	service := c.defaultServiceCharge
	if serviceCharges != nil {
		service = *serviceCharges
	}

	return &domain.BerthUsageCharge{
		BerthAssignmentID: assignment.ID,
		HourlyRate:        berth.HourlyRate,
		TotalHours:        hours,
		BaseCharges:       base,
		ServiceCharges:    service,
		TotalCharges:      base.Add(service),
		ChargedAt:         releasedAt,
		PaymentStatus:     domain.PaymentStatusPending,
	}
}

// BillableHours возвращает количество тарифицируемых часов между start и end
// Округление всегда вверх: занятость в 2ч01м тарифицируется как 3 часа
// Неположительная длительность даёт 0 часов
func BillableHours(start, end time.Time) int64 {
	dur := end.Sub(start)
	if dur <= 0 {
		return 0
	}

	hours := int64(dur / time.Hour)
	if dur%time.Hour != 0 {
		hours++
	}
	return hours
}
