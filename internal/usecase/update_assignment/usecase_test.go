package update_assignment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/assignment"
	berthRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/berth"
	fleetClient "github.com/m04kA/SMC-BerthService/internal/integrations/fleetservice"
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

func (f *fakeAssignmentRepo) GetWithFilter(_ context.Context, filter domain.AssignmentFilter) ([]*domain.BerthAssignment, error) {
	var out []*domain.BerthAssignment
	for _, a := range f.byID {
		if filter.BerthID != nil && a.BerthID != *filter.BerthID {
			continue
		}
		if !filter.IncludeTerminal && a.IsTerminal() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAssignmentRepo) UpdateSchedule(_ context.Context, id int64, a *domain.BerthAssignment) error {
	stored, ok := f.byID[id]
	if !ok {
		return assignmentRepo.ErrAssignmentNotFound
	}
	stored.BerthID = a.BerthID
	stored.ScheduledArrival = a.ScheduledArrival
	stored.ScheduledDeparture = a.ScheduledDeparture
	stored.AssignmentType = a.AssignmentType
	stored.Priority = a.Priority
	stored.ContainerCount = a.ContainerCount
	return nil
}

type fakeBerthRepo struct {
	berths    map[int64]*domain.Berth
	lockOrder []int64
}

func (f *fakeBerthRepo) GetByIDForUpdate(_ context.Context, id int64) (*domain.Berth, error) {
	b, ok := f.berths[id]
	if !ok {
		return nil, berthRepo.ErrBerthNotFound
	}
	f.lockOrder = append(f.lockOrder, id)
	return b, nil
}

func (f *fakeBerthRepo) Reserve(_ context.Context, id int64, units int) error {
	b := f.berths[id]
	if b.CurrentLoad+units > b.Capacity {
		return berthRepo.ErrCapacityExceeded
	}
	b.CurrentLoad += units
	return nil
}

func (f *fakeBerthRepo) Release(_ context.Context, id int64, units int) error {
	f.berths[id].CurrentLoad -= units
	return nil
}

type fakeFleetClient struct {
	ships map[int64]*fleetClient.Ship
}

func (f *fakeFleetClient) GetShip(_ context.Context, id int64) (*fleetClient.Ship, error) {
	s, ok := f.ships[id]
	if !ok {
		return nil, fleetClient.ErrShipNotFound
	}
	return s, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- тестовая сборка ---

func day(hour int) time.Time {
	return time.Date(2025, 10, 20, hour, 0, 0, 0, time.UTC)
}

type env struct {
	uc          *UseCase
	assignments *fakeAssignmentRepo
	berths      *fakeBerthRepo
}

func newEnv() *env {
	assignments := &fakeAssignmentRepo{byID: map[int64]*domain.BerthAssignment{
		42: {
			ID:                 42,
			BerthID:            1,
			ShipID:             ptr.Ptr(int64(10)),
			AssignmentType:     domain.TypeLoading,
			Priority:           domain.PriorityMedium,
			Status:             domain.StatusScheduled,
			ScheduledArrival:   day(9),
			ScheduledDeparture: day(17),
			AssignedAt:         day(7),
			ContainerCount:     40,
		},
	}}
	berths := &fakeBerthRepo{berths: map[int64]*domain.Berth{
		1: {ID: 1, Capacity: 100, CurrentLoad: 40, MaxShipLength: ptr.Ptr(300.0), MaxDraft: ptr.Ptr(12.5)},
		2: {ID: 2, Capacity: 50, CurrentLoad: 0, MaxShipLength: ptr.Ptr(200.0), MaxDraft: ptr.Ptr(10.0)},
	}}
	fleet := &fakeFleetClient{ships: map[int64]*fleetClient.Ship{
		10: {ID: 10, Name: "MV Aurora", LengthMeters: 180, DraftMeters: 9.5},
	}}

	return &env{
		uc:          NewUseCase(assignments, berths, fleet, &fakeTxManager{}, noopLogger{}),
		assignments: assignments,
		berths:      berths,
	}
}

func TestUseCase_Execute_MoveWindow(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Execute(context.Background(), &Request{
		AssignmentID: 42,
		Window:       &domain.Window{Start: day(10), End: day(18)},
	})
	require.NoError(t, err)

	assert.Equal(t, day(10), resp.Assignment.ScheduledArrival)
	assert.Equal(t, day(18), resp.Assignment.ScheduledDeparture)
	// Причал и загрузка не менялись
	assert.Equal(t, int64(1), resp.Assignment.BerthID)
	assert.Equal(t, 40, e.berths.berths[1].CurrentLoad)
}

func TestUseCase_Execute_ChangeBerth(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Execute(context.Background(), &Request{
		AssignmentID: 42,
		BerthID:      ptr.Ptr(int64(2)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Assignment.BerthID)
	// Загрузка перенесена между ledger'ами
	assert.Equal(t, 0, e.berths.berths[1].CurrentLoad)
	assert.Equal(t, 40, e.berths.berths[2].CurrentLoad)
	// Причалы блокировались по возрастанию id
	assert.Equal(t, []int64{1, 2}, e.berths.lockOrder)
}

func TestUseCase_Execute_ChangeContainerCount(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Execute(context.Background(), &Request{
		AssignmentID:   42,
		ContainerCount: ptr.Ptr(60),
	})
	require.NoError(t, err)
	assert.Equal(t, 60, e.berths.berths[1].CurrentLoad)

	// Уменьшение возвращает разницу
	_, err = e.uc.Execute(context.Background(), &Request{
		AssignmentID:   42,
		ContainerCount: ptr.Ptr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, e.berths.berths[1].CurrentLoad)
}

func TestUseCase_Execute_WindowConflict(t *testing.T) {
	e := newEnv()
	e.assignments.byID[7] = &domain.BerthAssignment{
		ID:                 7,
		BerthID:            1,
		Status:             domain.StatusScheduled,
		ScheduledArrival:   day(18),
		ScheduledDeparture: day(22),
		ContainerCount:     10,
	}

	_, err := e.uc.Execute(context.Background(), &Request{
		AssignmentID: 42,
		Window:       &domain.Window{Start: day(17), End: day(21)},
	})
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestUseCase_Execute_SelfOverlapAllowed(t *testing.T) {
	e := newEnv()

	// Новое окно пересекается только со старым окном самого назначения
	_, err := e.uc.Execute(context.Background(), &Request{
		AssignmentID: 42,
		Window:       &domain.Window{Start: day(8), End: day(16)},
	})
	assert.NoError(t, err)
}

func TestUseCase_Execute_TargetBerthCapacityExceeded(t *testing.T) {
	e := newEnv()
	e.berths.berths[2].CurrentLoad = 20 // 20 + 40 > 50

	_, err := e.uc.Execute(context.Background(), &Request{
		AssignmentID: 42,
		BerthID:      ptr.Ptr(int64(2)),
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestUseCase_Execute_TargetBerthDimensionExceeded(t *testing.T) {
	e := newEnv()
	e.berths.berths[2].MaxShipLength = ptr.Ptr(150.0) // судно 180м

	_, err := e.uc.Execute(context.Background(), &Request{
		AssignmentID: 42,
		BerthID:      ptr.Ptr(int64(2)),
	})
	assert.ErrorIs(t, err, ErrDimensionExceeded)
}

func TestUseCase_Execute_TargetBerthUnderMaintenance(t *testing.T) {
	e := newEnv()
	e.berths.berths[2].UnderMaintenance = true

	_, err := e.uc.Execute(context.Background(), &Request{
		AssignmentID: 42,
		BerthID:      ptr.Ptr(int64(2)),
	})
	assert.ErrorIs(t, err, ErrBerthUnderMaintenance)
}

func TestUseCase_Execute_ActiveIsUpdatable(t *testing.T) {
	e := newEnv()
	e.assignments.byID[42].Status = domain.StatusActive

	resp, err := e.uc.Execute(context.Background(), &Request{
		AssignmentID: 42,
		Priority:     ptr.Ptr(domain.PriorityHigh),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, resp.Assignment.Priority)
}

func TestUseCase_Execute_NotUpdatable(t *testing.T) {
	for _, status := range []domain.AssignmentStatus{
		domain.StatusCompleted, domain.StatusCancelled,
	} {
		e := newEnv()
		e.assignments.byID[42].Status = status

		_, err := e.uc.Execute(context.Background(), &Request{
			AssignmentID: 42,
			Priority:     ptr.Ptr(domain.PriorityHigh),
		})
		assert.ErrorIs(t, err, ErrNotUpdatable, "status=%s", status)
	}
}

func TestUseCase_Execute_EmptyRequest(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Execute(context.Background(), &Request{AssignmentID: 42})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUseCase_Execute_LoadingWithZeroCount(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Execute(context.Background(), &Request{
		AssignmentID:   42,
		ContainerCount: ptr.Ptr(0),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUseCase_Execute_BerthNotFound(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Execute(context.Background(), &Request{
		AssignmentID: 42,
		BerthID:      ptr.Ptr(int64(999)),
	})
	assert.ErrorIs(t, err, ErrBerthNotFound)
}

func TestUseCase_Execute_AssignmentNotFound(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Execute(context.Background(), &Request{
		AssignmentID: 404,
		Priority:     ptr.Ptr(domain.PriorityLow),
	})
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}
