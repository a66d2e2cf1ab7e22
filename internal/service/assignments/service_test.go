package assignments

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/assignment"
	chargeRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/charge"
	"github.com/m04kA/SMC-BerthService/internal/service/assignments/models"
	"github.com/m04kA/SMC-BerthService/pkg/ptr"
)

type fakeAssignmentRepo struct {
	byID map[int64]*domain.BerthAssignment
}

func (f *fakeAssignmentRepo) GetByID(_ context.Context, id int64) (*domain.BerthAssignment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, assignmentRepo.ErrAssignmentNotFound
	}
	return a, nil
}

func (f *fakeAssignmentRepo) GetWithFilter(_ context.Context, filter domain.AssignmentFilter) ([]*domain.BerthAssignment, error) {
	var out []*domain.BerthAssignment
	for _, a := range f.byID {
		if filter.BerthID != nil && a.BerthID != *filter.BerthID {
			continue
		}
		if filter.ShipID != nil && (a.ShipID == nil || *a.ShipID != *filter.ShipID) {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.Status == nil && !filter.IncludeTerminal && a.IsTerminal() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fakeChargeRepo struct {
	byID map[int64]*domain.BerthUsageCharge
}

func (f *fakeChargeRepo) GetByID(_ context.Context, id int64) (*domain.BerthUsageCharge, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, chargeRepo.ErrChargeNotFound
	}
	return c, nil
}

func (f *fakeChargeRepo) GetByAssignmentID(_ context.Context, assignmentID int64) (*domain.BerthUsageCharge, error) {
	for _, c := range f.byID {
		if c.BerthAssignmentID == assignmentID {
			return c, nil
		}
	}
	return nil, chargeRepo.ErrChargeNotFound
}

func (f *fakeChargeRepo) UpdatePaymentStatus(_ context.Context, id int64, status domain.PaymentStatus) error {
	c, ok := f.byID[id]
	if !ok {
		return chargeRepo.ErrChargeNotFound
	}
	c.PaymentStatus = status
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func day(hour int) time.Time {
	return time.Date(2025, 10, 20, hour, 0, 0, 0, time.UTC)
}

func newService() (*Service, *fakeAssignmentRepo, *fakeChargeRepo) {
	assignments := &fakeAssignmentRepo{byID: map[int64]*domain.BerthAssignment{
		1: {
			ID: 1, BerthID: 1, ShipID: ptr.Ptr(int64(10)),
			Status:           domain.StatusActive,
			ScheduledArrival: day(8), ScheduledDeparture: day(12),
			AssignedAt: day(7), ContainerCount: 40,
		},
		2: {
			ID: 2, BerthID: 1,
			Status:           domain.StatusCompleted,
			ScheduledArrival: day(1), ScheduledDeparture: day(5),
			AssignedAt: day(0), ContainerCount: 20,
		},
		3: {
			ID: 3, BerthID: 2, ShipID: ptr.Ptr(int64(10)),
			Status:           domain.StatusScheduled,
			ScheduledArrival: day(14), ScheduledDeparture: day(18),
			AssignedAt: day(7), ContainerCount: 10,
		},
	}}
	charges := &fakeChargeRepo{byID: map[int64]*domain.BerthUsageCharge{
		7: {
			ID: 7, BerthAssignmentID: 2,
			HourlyRate: decimal.RequireFromString("500.00"),
			TotalHours: 4,
			BaseCharges: decimal.RequireFromString("2000.00"),
			ServiceCharges: decimal.Zero,
			TotalCharges: decimal.RequireFromString("2000.00"),
			ChargedAt: day(5),
			PaymentStatus: domain.PaymentStatusPending,
		},
	}}
	return NewService(assignments, charges, noopLogger{}), assignments, charges
}

func TestService_GetByID(t *testing.T) {
	svc, _, _ := newService()

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "active", resp.Status)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestService_List_ByBerth(t *testing.T) {
	svc, _, _ := newService()

	// По умолчанию терминальные не включаются
	resp, err := svc.List(context.Background(), &models.ListAssignmentsRequest{
		BerthID: ptr.Ptr(int64(1)),
	})
	require.NoError(t, err)
	require.Len(t, resp.Assignments, 1)
	assert.Equal(t, int64(1), resp.Assignments[0].ID)
}

func TestService_List_IncludeTerminal(t *testing.T) {
	svc, _, _ := newService()

	resp, err := svc.List(context.Background(), &models.ListAssignmentsRequest{
		BerthID:         ptr.Ptr(int64(1)),
		IncludeTerminal: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Assignments, 2)
}

func TestService_List_ByShip(t *testing.T) {
	svc, _, _ := newService()

	resp, err := svc.List(context.Background(), &models.ListAssignmentsRequest{
		ShipID: ptr.Ptr(int64(10)),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Assignments, 2)
}

func TestService_List_InvalidStatus(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.List(context.Background(), &models.ListAssignmentsRequest{
		Status: ptr.Ptr("departed"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_InvalidPeriod(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.List(context.Background(), &models.ListAssignmentsRequest{
		From: ptr.Ptr(day(12)),
		To:   ptr.Ptr(day(8)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetCharge(t *testing.T) {
	svc, _, _ := newService()

	resp, err := svc.GetCharge(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "2000.00", resp.TotalCharges)
	assert.Equal(t, "pending", resp.PaymentStatus)
}

func TestService_GetCharge_NoCharge(t *testing.T) {
	svc, _, _ := newService()

	// Назначение существует, но ещё не завершено
	_, err := svc.GetCharge(context.Background(), 1)
	assert.ErrorIs(t, err, ErrChargeNotFound)

	_, err = svc.GetCharge(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestService_UpdateChargePaymentStatus(t *testing.T) {
	svc, _, charges := newService()

	resp, err := svc.UpdateChargePaymentStatus(context.Background(), 7, "paid")
	require.NoError(t, err)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.Equal(t, domain.PaymentStatusPaid, charges.byID[7].PaymentStatus)
}

func TestService_UpdateChargePaymentStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		current domain.PaymentStatus
		next    string
		wantErr error
	}{
		{"pending -> overdue", domain.PaymentStatusPending, "overdue", nil},
		{"overdue -> paid", domain.PaymentStatusOverdue, "paid", nil},
		{"paid -> pending запрещён", domain.PaymentStatusPaid, "pending", ErrInvalidTransition},
		{"paid -> overdue запрещён", domain.PaymentStatusPaid, "overdue", ErrInvalidTransition},
		{"overdue -> pending запрещён", domain.PaymentStatusOverdue, "pending", ErrInvalidTransition},
		{"неизвестный статус", domain.PaymentStatusPending, "refunded", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, charges := newService()
			charges.byID[7].PaymentStatus = tt.current

			_, err := svc.UpdateChargePaymentStatus(context.Background(), 7, tt.next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_UpdateChargePaymentStatus_NotFound(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.UpdateChargePaymentStatus(context.Background(), 404, "paid")
	assert.ErrorIs(t, err, ErrChargeNotFound)
}
