package release_assignment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BerthService/internal/billing"
	"github.com/m04kA/SMC-BerthService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/assignment"
	chargeRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/charge"
	"github.com/m04kA/SMC-BerthService/pkg/ptr"
)

// --- фейки зависимостей ---

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

func (f *fakeAssignmentRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.BerthAssignment, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeAssignmentRepo) Complete(_ context.Context, id int64, releasedAt time.Time, cost decimal.Decimal) error {
	a, ok := f.byID[id]
	if !ok {
		return assignmentRepo.ErrAssignmentNotFound
	}
	a.Status = domain.StatusCompleted
	a.ActualDeparture = &releasedAt
	a.ReleasedAt = &releasedAt
	a.Cost = &cost
	return nil
}

type fakeBerthRepo struct {
	berths map[int64]*domain.Berth
}

func (f *fakeBerthRepo) GetByIDForUpdate(_ context.Context, id int64) (*domain.Berth, error) {
	return f.berths[id], nil
}

func (f *fakeBerthRepo) Release(_ context.Context, id int64, units int) error {
	f.berths[id].CurrentLoad -= units
	return nil
}

type fakeChargeRepo struct {
	charges map[int64]*domain.BerthUsageCharge // по assignmentID
	nextID  int64
}

func (f *fakeChargeRepo) Create(_ context.Context, c *domain.BerthUsageCharge) (*domain.BerthUsageCharge, error) {
	if _, exists := f.charges[c.BerthAssignmentID]; exists {
		return nil, chargeRepo.ErrDuplicateCharge
	}
	f.nextID++
	created := *c
	created.ID = f.nextID
	f.charges[c.BerthAssignmentID] = &created
	return &created, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct{ now time.Time }

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- тестовая сборка ---

func at(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, time.UTC)
}

type env struct {
	uc          *UseCase
	assignments *fakeAssignmentRepo
	berths      *fakeBerthRepo
	charges     *fakeChargeRepo
}

func newEnv(releaseAt time.Time) *env {
	arrived := at(8, 15)
	assignments := &fakeAssignmentRepo{byID: map[int64]*domain.BerthAssignment{
		42: {
			ID:                 42,
			BerthID:            1,
			ShipID:             ptr.Ptr(int64(10)),
			Status:             domain.StatusActive,
			ScheduledArrival:   at(8, 0),
			ScheduledDeparture: at(12, 0),
			ActualArrival:      &arrived,
			AssignedAt:         at(7, 0),
			ContainerCount:     40,
		},
	}}
	berths := &fakeBerthRepo{berths: map[int64]*domain.Berth{
		1: {
			ID:          1,
			Capacity:    100,
			CurrentLoad: 40,
			HourlyRate:  decimal.RequireFromString("500.00"),
			Status:      domain.BerthStatusOccupied,
		},
	}}
	charges := &fakeChargeRepo{charges: map[int64]*domain.BerthUsageCharge{}}

	uc := NewUseCase(assignments, berths, charges,
		billing.NewCalculator(decimal.Zero), &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: releaseAt}

	return &env{uc: uc, assignments: assignments, berths: berths, charges: charges}
}

func TestUseCase_Execute_Success(t *testing.T) {
	// Прибытие 08:15, release 11:15 — ровно 3 часа по 500.00
	e := newEnv(at(11, 15))

	resp, err := e.uc.Execute(context.Background(), &Request{AssignmentID: 42})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, resp.Assignment.Status)
	require.NotNil(t, resp.Assignment.ReleasedAt)
	assert.Equal(t, at(11, 15), *resp.Assignment.ReleasedAt)

	charge := resp.Charge
	assert.Equal(t, int64(42), charge.BerthAssignmentID)
	assert.Equal(t, int64(3), charge.TotalHours)
	assert.True(t, charge.BaseCharges.Equal(decimal.RequireFromString("1500.00")),
		"base = %s", charge.BaseCharges)
	assert.True(t, charge.TotalCharges.Equal(decimal.RequireFromString("1500.00")))
	assert.Equal(t, domain.PaymentStatusPending, charge.PaymentStatus)

	// Загрузка возвращена в ledger
	assert.Equal(t, 0, e.berths.berths[1].CurrentLoad)
}

func TestUseCase_Execute_PartialHourRoundsUp(t *testing.T) {
	// 08:15 -> 11:16 = 3ч01м, тарифицируется 4 часа
	e := newEnv(at(11, 16))

	resp, err := e.uc.Execute(context.Background(), &Request{AssignmentID: 42})
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.Charge.TotalHours)
	assert.True(t, resp.Charge.TotalCharges.Equal(decimal.RequireFromString("2000.00")))
}

func TestUseCase_Execute_ServiceCharges(t *testing.T) {
	e := newEnv(at(11, 15))
	svc := decimal.RequireFromString("250.50")

	resp, err := e.uc.Execute(context.Background(), &Request{AssignmentID: 42, ServiceCharges: &svc})
	require.NoError(t, err)
	assert.True(t, resp.Charge.ServiceCharges.Equal(svc))
	assert.True(t, resp.Charge.TotalCharges.Equal(decimal.RequireFromString("1750.50")))
}

func TestUseCase_Execute_ScheduledWithoutArrival(t *testing.T) {
	// Прибытие не фиксировалось: часы считаются от assignedAt
	e := newEnv(at(10, 0))
	e.assignments.byID[42].Status = domain.StatusScheduled
	e.assignments.byID[42].ActualArrival = nil

	resp, err := e.uc.Execute(context.Background(), &Request{AssignmentID: 42})
	require.NoError(t, err)
	// 07:00 -> 10:00 = 3 часа
	assert.Equal(t, int64(3), resp.Charge.TotalHours)
}

func TestUseCase_Execute_RepeatedReleaseRejected(t *testing.T) {
	e := newEnv(at(11, 15))

	_, err := e.uc.Execute(context.Background(), &Request{AssignmentID: 42})
	require.NoError(t, err)

	// Терминальный статус неизменяем: повторный release отклоняется,
	// второе начисление не создаётся, ledger не трогается
	_, err = e.uc.Execute(context.Background(), &Request{AssignmentID: 42})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.Equal(t, 0, e.berths.berths[1].CurrentLoad)
	assert.Len(t, e.charges.charges, 1)
}

func TestUseCase_Execute_CancelledAssignment(t *testing.T) {
	e := newEnv(at(11, 15))
	e.assignments.byID[42].Status = domain.StatusCancelled

	_, err := e.uc.Execute(context.Background(), &Request{AssignmentID: 42})
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Empty(t, e.charges.charges)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	e := newEnv(at(11, 15))

	_, err := e.uc.Execute(context.Background(), &Request{AssignmentID: 404})
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestUseCase_Execute_NegativeServiceCharges(t *testing.T) {
	e := newEnv(at(11, 15))
	svc := decimal.RequireFromString("-1.00")

	_, err := e.uc.Execute(context.Background(), &Request{AssignmentID: 42, ServiceCharges: &svc})
	assert.ErrorIs(t, err, ErrValidation)
}
