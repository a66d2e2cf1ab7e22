package create_assignment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	berthRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/berth"
	fleetClient "github.com/m04kA/SMC-BerthService/internal/integrations/fleetservice"
	"github.com/m04kA/SMC-BerthService/pkg/ptr"
)

// --- фейки зависимостей ---

type fakeAssignmentRepo struct {
	assignments []*domain.BerthAssignment
	nextID      int64
	createErr   error
}

func (f *fakeAssignmentRepo) Create(_ context.Context, a *domain.BerthAssignment) (*domain.BerthAssignment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *a
	created.ID = f.nextID
	f.assignments = append(f.assignments, &created)
	return &created, nil
}

func (f *fakeAssignmentRepo) GetWithFilter(_ context.Context, filter domain.AssignmentFilter) ([]*domain.BerthAssignment, error) {
	var out []*domain.BerthAssignment
	for _, a := range f.assignments {
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

type fakeBerthRepo struct {
	berths map[int64]*domain.Berth
}

func (f *fakeBerthRepo) GetByIDForUpdate(_ context.Context, id int64) (*domain.Berth, error) {
	b, ok := f.berths[id]
	if !ok {
		return nil, berthRepo.ErrBerthNotFound
	}
	return b, nil
}

func (f *fakeBerthRepo) Reserve(_ context.Context, id int64, units int) error {
	b, ok := f.berths[id]
	if !ok {
		return berthRepo.ErrBerthNotFound
	}
	if b.CurrentLoad+units > b.Capacity {
		return berthRepo.ErrCapacityExceeded
	}
	b.CurrentLoad += units
	return nil
}

type fakeFleetClient struct {
	ships      map[int64]*fleetClient.Ship
	containers map[int64]*fleetClient.Container
}

func (f *fakeFleetClient) GetShip(_ context.Context, id int64) (*fleetClient.Ship, error) {
	s, ok := f.ships[id]
	if !ok {
		return nil, fleetClient.ErrShipNotFound
	}
	return s, nil
}

func (f *fakeFleetClient) GetContainer(_ context.Context, id int64) (*fleetClient.Container, error) {
	c, ok := f.containers[id]
	if !ok {
		return nil, fleetClient.ErrContainerNotFound
	}
	return c, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- тестовая сборка ---

type env struct {
	uc          *UseCase
	assignments *fakeAssignmentRepo
	berths      *fakeBerthRepo
	fleet       *fakeFleetClient
	now         time.Time
}

func day(hour int) time.Time {
	return time.Date(2025, 10, 20, hour, 0, 0, 0, time.UTC)
}

func newEnv() *env {
	berths := &fakeBerthRepo{berths: map[int64]*domain.Berth{
		1: {
			ID:            1,
			Name:          "North Quay 1",
			Capacity:      100,
			CurrentLoad:   0,
			MaxShipLength: ptr.Ptr(300.0),
			MaxDraft:      ptr.Ptr(12.5),
			HourlyRate:    decimal.RequireFromString("500.00"),
			Status:        domain.BerthStatusAvailable,
		},
	}}
	fleet := &fakeFleetClient{
		ships: map[int64]*fleetClient.Ship{
			10: {ID: 10, Name: "MV Aurora", IMONumber: "IMO9321483", LengthMeters: 180, DraftMeters: 9.5, CapacityTEU: 2400},
		},
		containers: map[int64]*fleetClient.Container{
			20: {ID: 20, Number: "MSCU1234567", SizeFt: 40, Status: "in_yard"},
		},
	}
	assignments := &fakeAssignmentRepo{}

	e := &env{
		uc:          NewUseCase(assignments, berths, fleet, &fakeTxManager{}, noopLogger{}),
		assignments: assignments,
		berths:      berths,
		fleet:       fleet,
		now:         day(7),
	}
	e.uc.timeProvider = &fakeTimeProvider{now: e.now}
	return e
}

func validRequest() *Request {
	return &Request{
		BerthID:        1,
		ShipID:         ptr.Ptr(int64(10)),
		Window:         domain.Window{Start: day(9), End: day(17)},
		AssignmentType: domain.TypeLoading,
		Priority:       domain.PriorityMedium,
		ContainerCount: 40,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Assignment)

	a := resp.Assignment
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, domain.StatusScheduled, a.Status)
	assert.Equal(t, e.now, a.AssignedAt)
	assert.Equal(t, day(9), a.ScheduledArrival)
	assert.Equal(t, day(17), a.ScheduledDeparture)
	require.NotNil(t, a.ShipName)
	assert.Equal(t, "MV Aurora", *a.ShipName)

	// Загрузка зарезервирована в ledger
	assert.Equal(t, 40, e.berths.berths[1].CurrentLoad)
}

func TestUseCase_Execute_ContainerSnapshot(t *testing.T) {
	e := newEnv()
	req := validRequest()
	req.ShipID = nil
	req.ContainerID = ptr.Ptr(int64(20))
	req.AssignmentType = domain.TypeStorage

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Assignment.ContainerNumber)
	assert.Equal(t, "MSCU1234567", *resp.Assignment.ContainerNumber)
	assert.Nil(t, resp.Assignment.ShipName)
}

func TestUseCase_Execute_BerthNotFound(t *testing.T) {
	e := newEnv()
	req := validRequest()
	req.BerthID = 999

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBerthNotFound)
}

func TestUseCase_Execute_ShipNotFound(t *testing.T) {
	e := newEnv()
	req := validRequest()
	req.ShipID = ptr.Ptr(int64(404))

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrShipNotFound)
	// До транзакции дело не дошло, ledger не тронут
	assert.Equal(t, 0, e.berths.berths[1].CurrentLoad)
}

func TestUseCase_Execute_ContainerNotFound(t *testing.T) {
	e := newEnv()
	req := validRequest()
	req.ShipID = nil
	req.ContainerID = ptr.Ptr(int64(404))
	req.AssignmentType = domain.TypeStorage

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrContainerNotFound)
}

func TestUseCase_Execute_UnderMaintenance(t *testing.T) {
	e := newEnv()
	e.berths.berths[1].UnderMaintenance = true

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBerthUnderMaintenance)
}

func TestUseCase_Execute_DimensionExceeded(t *testing.T) {
	e := newEnv()
	e.fleet.ships[10].LengthMeters = 350 // длиннее причала

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDimensionExceeded)
	assert.Equal(t, 0, e.berths.berths[1].CurrentLoad)
}

func TestUseCase_Execute_TimeConflict(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Второе назначение пересекается с первым
	req := validRequest()
	req.Window = domain.Window{Start: day(16), End: day(20)}

	_, err = e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeConflict)
	// Загрузка второго запроса не резервировалась
	assert.Equal(t, 40, e.berths.berths[1].CurrentLoad)
}

func TestUseCase_Execute_TouchingWindowsAllowed(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Стыкующееся окно [17, 21) не конфликтует с [9, 17)
	req := validRequest()
	req.Window = domain.Window{Start: day(17), End: day(21)}

	_, err = e.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, 80, e.berths.berths[1].CurrentLoad)
}

func TestUseCase_Execute_CancelledAssignmentDoesNotConflict(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Отменённое назначение освобождает окно
	resp.Assignment.Status = domain.StatusCancelled
	e.assignments.assignments[0].Status = domain.StatusCancelled
	e.berths.berths[1].CurrentLoad = 0

	req := validRequest()
	req.Window = domain.Window{Start: day(10), End: day(14)}

	_, err = e.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_CapacityExceeded(t *testing.T) {
	e := newEnv()
	e.berths.berths[1].CurrentLoad = 80

	req := validRequest()
	req.ContainerCount = 30 // 80 + 30 > 100

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Empty(t, e.assignments.assignments)
}

func TestUseCase_Execute_ValidationFailure(t *testing.T) {
	e := newEnv()
	req := validRequest()
	req.Window = domain.Window{Start: day(17), End: day(9)}

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}
