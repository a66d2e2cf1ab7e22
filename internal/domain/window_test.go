package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, time.UTC)
}

func TestWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Window
		b    Window
		want bool
	}{
		{
			name: "полное пересечение",
			a:    Window{Start: ts(9, 0), End: ts(17, 0)},
			b:    Window{Start: ts(10, 0), End: ts(12, 0)},
			want: true,
		},
		{
			name: "частичное пересечение в конце",
			a:    Window{Start: ts(9, 0), End: ts(17, 0)},
			b:    Window{Start: ts(16, 0), End: ts(18, 0)},
			want: true,
		},
		{
			name: "касание границами не считается пересечением",
			a:    Window{Start: ts(9, 0), End: ts(17, 0)},
			b:    Window{Start: ts(17, 0), End: ts(20, 0)},
			want: false,
		},
		{
			name: "касание границами с другой стороны",
			a:    Window{Start: ts(9, 0), End: ts(17, 0)},
			b:    Window{Start: ts(7, 0), End: ts(9, 0)},
			want: false,
		},
		{
			name: "без пересечения",
			a:    Window{Start: ts(9, 0), End: ts(10, 0)},
			b:    Window{Start: ts(12, 0), End: ts(14, 0)},
			want: false,
		},
		{
			name: "одинаковые окна",
			a:    Window{Start: ts(9, 0), End: ts(17, 0)},
			b:    Window{Start: ts(9, 0), End: ts(17, 0)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestWindow_IsValid(t *testing.T) {
	assert.True(t, Window{Start: ts(9, 0), End: ts(10, 0)}.IsValid())
	assert.False(t, Window{Start: ts(10, 0), End: ts(9, 0)}.IsValid())
	assert.False(t, Window{Start: ts(10, 0), End: ts(10, 0)}.IsValid())
	assert.False(t, Window{}.IsValid())
}

func TestBerth_CanAccommodate(t *testing.T) {
	berth := &Berth{Capacity: 500, CurrentLoad: 500}
	assert.True(t, berth.CanAccommodate(0))
	assert.False(t, berth.CanAccommodate(1))

	berth.CurrentLoad = 0
	assert.True(t, berth.CanAccommodate(500))
	assert.False(t, berth.CanAccommodate(501))
}

func TestBerth_FitsShip(t *testing.T) {
	length := 300.0
	draft := 12.5
	berth := &Berth{MaxShipLength: &length, MaxDraft: &draft}

	assert.True(t, berth.FitsShip(299.9, 12.5))
	assert.False(t, berth.FitsShip(300.1, 10))
	assert.False(t, berth.FitsShip(200, 13))

	// Отсутствие лимитов означает отсутствие ограничений
	open := &Berth{}
	assert.True(t, open.FitsShip(400, 20))
}

func TestBerthAssignment_EffectiveStart(t *testing.T) {
	assigned := ts(8, 0)
	arrived := ts(8, 15)

	a := &BerthAssignment{AssignedAt: assigned}
	assert.Equal(t, assigned, a.EffectiveStart())

	a.ActualArrival = &arrived
	assert.Equal(t, arrived, a.EffectiveStart())
}

func TestBerthUsageCharge_CanTransitionTo(t *testing.T) {
	c := &BerthUsageCharge{PaymentStatus: PaymentStatusPending}
	assert.True(t, c.CanTransitionTo(PaymentStatusPaid))
	assert.True(t, c.CanTransitionTo(PaymentStatusOverdue))
	assert.False(t, c.CanTransitionTo(PaymentStatusPending))

	c.PaymentStatus = PaymentStatusOverdue
	assert.True(t, c.CanTransitionTo(PaymentStatusPaid))
	assert.False(t, c.CanTransitionTo(PaymentStatusPending))

	c.PaymentStatus = PaymentStatusPaid
	assert.False(t, c.CanTransitionTo(PaymentStatusOverdue))
}
