package get_berth_availability

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	berthRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/berth"
)

// UseCase use case для просмотра занятости причала
// Read-only: транзакция не нужна, снимок может быть чуть устаревшим
type UseCase struct {
	assignmentRepo AssignmentRepository
	berthRepo      BerthRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	assignmentRepo AssignmentRepository,
	berthRepo BerthRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		assignmentRepo: assignmentRepo,
		berthRepo:      berthRepo,
		logger:         logger,
	}
}

// Execute возвращает занятые окна причала за период и свободную вместимость
// Учитываются только назначения, удерживающие причал (scheduled/active)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBerthAvailability: berth=%d, from=%s, to=%s",
		req.BerthID, req.From.Format("2006-01-02 15:04"), req.To.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if req.BerthID <= 0 {
		return nil, fmt.Errorf("%w: berthID must be positive", ErrValidation)
	}
	if !req.To.After(req.From) {
		return nil, fmt.Errorf("%w: to must be after from", ErrValidation)
	}

	// 2. Получаем причал
	berth, err := uc.berthRepo.GetByID(ctx, req.BerthID)
	if err != nil {
		if errors.Is(err, berthRepo.ErrBerthNotFound) {
			uc.logger.Warn("GetBerthAvailability: berth id=%d not found", req.BerthID)
			return nil, ErrBerthNotFound
		}
		uc.logger.Error("GetBerthAvailability: failed to get berth id=%d: %v", req.BerthID, err)
		return nil, fmt.Errorf("%w: failed to get berth: %v", ErrInternal, err)
	}

	// 3. Получаем удерживающие назначения, пересекающиеся с периодом
	assignments, err := uc.assignmentRepo.GetWithFilter(ctx, domain.AssignmentFilter{
		BerthID: &req.BerthID,
		From:    &req.From,
		To:      &req.To,
	})
	if err != nil {
		uc.logger.Error("GetBerthAvailability: failed to get assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
	}

	occupied := make([]OccupiedWindow, 0, len(assignments))
	for _, a := range assignments {
		if !a.HoldsCapacity() {
			continue
		}
		occupied = append(occupied, OccupiedWindow{
			AssignmentID:   a.ID,
			Window:         a.Window(),
			Status:         a.Status,
			ContainerCount: a.ContainerCount,
		})
	}

	sort.Slice(occupied, func(i, j int) bool {
		return occupied[i].Window.Start.Before(occupied[j].Window.Start)
	})

	return &Response{
		Berth:             berth,
		Occupied:          occupied,
		RemainingCapacity: berth.AvailableCapacity(),
	}, nil
}
