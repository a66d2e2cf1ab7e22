package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, time.UTC)
}

func TestBillableHours(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int64
	}{
		{"ровно три часа", at(8, 15), at(11, 15), 3},
		{"неполный час округляется вверх", at(8, 0), at(10, 1), 3},
		{"одна минута тарифицируется как час", at(8, 0), at(8, 1), 1},
		{"нулевая длительность", at(8, 0), at(8, 0), 0},
		{"отрицательная длительность", at(9, 0), at(8, 0), 0},
		{"ровно один час", at(8, 0), at(9, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BillableHours(tt.start, tt.end))
		})
	}
}

func TestCalculator_Compute(t *testing.T) {
	calc := NewCalculator(decimal.Zero)

	arrived := at(8, 15)
	assignment := &domain.BerthAssignment{
		ID:            42,
		AssignedAt:    at(8, 0),
		ActualArrival: &arrived,
	}
	berth := &domain.Berth{
		ID:         1,
		HourlyRate: decimal.RequireFromString("500.00"),
	}

	// Прибытие в 08:15, release в 11:15 — ровно 3 часа занятости
	charge := calc.Compute(assignment, berth, at(11, 15), nil)

	require.NotNil(t, charge)
	assert.Equal(t, int64(42), charge.BerthAssignmentID)
	assert.Equal(t, int64(3), charge.TotalHours)
	assert.True(t, charge.BaseCharges.Equal(decimal.RequireFromString("1500.00")),
		"baseCharges = %s", charge.BaseCharges)
	assert.True(t, charge.ServiceCharges.IsZero())
	assert.True(t, charge.TotalCharges.Equal(decimal.RequireFromString("1500.00")))
	assert.Equal(t, domain.PaymentStatusPending, charge.PaymentStatus)
	assert.Equal(t, at(11, 15), charge.ChargedAt)
}

func TestCalculator_Compute_FallsBackToAssignedAt(t *testing.T) {
	// Если прибытие не было зафиксировано, тарификация идёт от момента назначения
	calc := NewCalculator(decimal.Zero)

	assignment := &domain.BerthAssignment{ID: 7, AssignedAt: at(8, 0)}
	berth := &domain.Berth{HourlyRate: decimal.RequireFromString("100.00")}

	charge := calc.Compute(assignment, berth, at(9, 30), nil)

	assert.Equal(t, int64(2), charge.TotalHours)
	assert.True(t, charge.BaseCharges.Equal(decimal.RequireFromString("200.00")))
}

func TestCalculator_Compute_ServiceCharges(t *testing.T) {
	calc := NewCalculator(decimal.RequireFromString("50.00"))

	assignment := &domain.BerthAssignment{ID: 7, AssignedAt: at(8, 0)}
	berth := &domain.Berth{HourlyRate: decimal.RequireFromString("100.00")}

	// Надбавка по умолчанию из конфигурации
	charge := calc.Compute(assignment, berth, at(9, 0), nil)
	assert.True(t, charge.ServiceCharges.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, charge.TotalCharges.Equal(decimal.RequireFromString("150.00")))

	// Явно переданная надбавка перекрывает значение по умолчанию
	explicit := decimal.RequireFromString("25.00")
	charge = calc.Compute(assignment, berth, at(9, 0), &explicit)
	assert.True(t, charge.ServiceCharges.Equal(explicit))
	assert.True(t, charge.TotalCharges.Equal(decimal.RequireFromString("125.00")))

	// totalCharges всегда base + service
	assert.True(t, charge.TotalCharges.Equal(charge.BaseCharges.Add(charge.ServiceCharges)))
}

func TestCalculator_Compute_FixedPointNoDrift(t *testing.T) {
	// Дробный тариф не должен давать погрешностей плавающей точки
	calc := NewCalculator(decimal.Zero)

	assignment := &domain.BerthAssignment{ID: 1, AssignedAt: at(0, 0)}
	berth := &domain.Berth{HourlyRate: decimal.RequireFromString("0.10")}

	charge := calc.Compute(assignment, berth, at(3, 0), nil)
	assert.Equal(t, "0.30", charge.BaseCharges.StringFixed(2))
}
