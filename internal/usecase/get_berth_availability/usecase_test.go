package get_berth_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	berthRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/berth"
)

type fakeAssignmentRepo struct {
	assignments []*domain.BerthAssignment
}

func (f *fakeAssignmentRepo) GetWithFilter(_ context.Context, filter domain.AssignmentFilter) ([]*domain.BerthAssignment, error) {
	var out []*domain.BerthAssignment
	for _, a := range f.assignments {
		if filter.BerthID != nil && a.BerthID != *filter.BerthID {
			continue
		}
		if filter.From != nil && !a.ScheduledDeparture.After(*filter.From) {
			continue
		}
		if filter.To != nil && !a.ScheduledArrival.Before(*filter.To) {
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

func (f *fakeBerthRepo) GetByID(_ context.Context, id int64) (*domain.Berth, error) {
	b, ok := f.berths[id]
	if !ok {
		return nil, berthRepo.ErrBerthNotFound
	}
	return b, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func day(hour int) time.Time {
	return time.Date(2025, 10, 20, hour, 0, 0, 0, time.UTC)
}

func mk(id int64, status domain.AssignmentStatus, start, end time.Time, count int) *domain.BerthAssignment {
	return &domain.BerthAssignment{
		ID:                 id,
		BerthID:            1,
		Status:             status,
		ScheduledArrival:   start,
		ScheduledDeparture: end,
		ContainerCount:     count,
	}
}

func newUseCase(assignments ...*domain.BerthAssignment) *UseCase {
	return NewUseCase(
		&fakeAssignmentRepo{assignments: assignments},
		&fakeBerthRepo{berths: map[int64]*domain.Berth{
			1: {ID: 1, Capacity: 100, CurrentLoad: 60},
		}},
		noopLogger{},
	)
}

func TestUseCase_Execute_OccupiedWindowsSorted(t *testing.T) {
	uc := newUseCase(
		mk(2, domain.StatusScheduled, day(14), day(18), 20),
		mk(1, domain.StatusActive, day(8), day(12), 40),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BerthID: 1,
		From:    day(0),
		To:      day(23),
	})
	require.NoError(t, err)

	require.Len(t, resp.Occupied, 2)
	// Окна отсортированы по началу
	assert.Equal(t, int64(1), resp.Occupied[0].AssignmentID)
	assert.Equal(t, int64(2), resp.Occupied[1].AssignmentID)
	assert.Equal(t, 40, resp.RemainingCapacity)
}

func TestUseCase_Execute_TerminalAssignmentsExcluded(t *testing.T) {
	uc := newUseCase(
		mk(1, domain.StatusCancelled, day(8), day(12), 40),
		mk(2, domain.StatusCompleted, day(12), day(14), 20),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BerthID: 1,
		From:    day(0),
		To:      day(23),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Occupied)
}

func TestUseCase_Execute_OutsideRangeExcluded(t *testing.T) {
	uc := newUseCase(
		mk(1, domain.StatusScheduled, day(8), day(10), 40),
	)

	// Период [10, 12) стыкуется с окном [8, 10), но не пересекается
	resp, err := uc.Execute(context.Background(), &Request{
		BerthID: 1,
		From:    day(10),
		To:      day(12),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Occupied)
}

func TestUseCase_Execute_BerthNotFound(t *testing.T) {
	uc := newUseCase()

	_, err := uc.Execute(context.Background(), &Request{BerthID: 999, From: day(0), To: day(23)})
	assert.ErrorIs(t, err, ErrBerthNotFound)
}

func TestUseCase_Execute_InvalidRange(t *testing.T) {
	uc := newUseCase()

	_, err := uc.Execute(context.Background(), &Request{BerthID: 1, From: day(12), To: day(10)})
	assert.ErrorIs(t, err, ErrValidation)
}
