package update_assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/assignment"
	berthRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/berth"
	fleetClient "github.com/m04kA/SMC-BerthService/internal/integrations/fleetservice"
)

// UseCase use case для изменения назначения причала
// Поддерживает перенос окна, смену причала, типа работ, приоритета и загрузки
type UseCase struct {
	assignmentRepo AssignmentRepository
	berthRepo      BerthRepository
	fleetClient    FleetServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	assignmentRepo AssignmentRepository,
	berthRepo BerthRepository,
	fleetClient FleetServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		assignmentRepo: assignmentRepo,
		berthRepo:      berthRepo,
		fleetClient:    fleetClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case изменения назначения
//
// Изменение окна или причала проходит те же проверки, что и создание:
// пересечения, обслуживание, габариты, вместимость. При смене причала
// блокируются оба причала в порядке возрастания id, загрузка переносится
// между ledger'ами. Изменяемы назначения в статусах scheduled и active,
// терминальные отклоняются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAssignment: assignment=%d", req.AssignmentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAssignment: validation failed: %v", err)
		return nil, err
	}

	// 2. Предварительное чтение вне транзакции: нужен shipID для проверки
	// габаритов при переносе на другой причал
	preview, err := uc.assignmentRepo.GetByID(ctx, req.AssignmentID)
	if err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			uc.logger.Warn("UpdateAssignment: assignment id=%d not found", req.AssignmentID)
			return nil, ErrAssignmentNotFound
		}
		uc.logger.Error("UpdateAssignment: failed to get assignment id=%d: %v", req.AssignmentID, err)
		return nil, fmt.Errorf("%w: failed to get assignment: %v", ErrInternal, err)
	}

	// 3. Габариты судна нужны только при смене причала
	var ship *fleetClient.Ship
	if req.BerthID != nil && *req.BerthID != preview.BerthID && preview.ShipID != nil {
		s, err := uc.fleetClient.GetShip(ctx, *preview.ShipID)
		if err != nil {
			if errors.Is(err, fleetClient.ErrShipNotFound) {
				uc.logger.Warn("UpdateAssignment: ship id=%d not found", *preview.ShipID)
				return nil, ErrShipNotFound
			}
			uc.logger.Error("UpdateAssignment: failed to get ship id=%d: %v", *preview.ShipID, err)
			return nil, fmt.Errorf("%w: failed to get ship: %v", ErrInternal, err)
		}
		ship = s
	}

	var result *domain.BerthAssignment

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		oldBerthID := preview.BerthID
		newBerthID := oldBerthID
		if req.BerthID != nil {
			newBerthID = *req.BerthID
		}

		// 4.1. Блокируем причалы в порядке возрастания id, чтобы два
		// встречных переноса не взаимоблокировались
		targetBerth, err := uc.lockBerths(txCtx, oldBerthID, newBerthID)
		if err != nil {
			return err
		}

		// 4.2. Перечитываем назначение под блокировкой
		assignment, err := uc.assignmentRepo.GetByIDForUpdate(txCtx, req.AssignmentID)
		if err != nil {
			if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
				return ErrAssignmentNotFound
			}
			uc.logger.Error("UpdateAssignment: failed to lock assignment id=%d: %v", req.AssignmentID, err)
			return fmt.Errorf("%w: failed to lock assignment: %v", ErrInternal, err)
		}

		if !assignment.CanBeUpdated() {
			uc.logger.Warn("UpdateAssignment: assignment id=%d has status %s", assignment.ID, assignment.Status)
			return ErrNotUpdatable
		}

		updated := req.apply(assignment)
		if err := validateUpdated(updated); err != nil {
			return err
		}

		berthChanged := updated.BerthID != assignment.BerthID
		windowChanged := !updated.ScheduledArrival.Equal(assignment.ScheduledArrival) ||
			!updated.ScheduledDeparture.Equal(assignment.ScheduledDeparture)

		// 4.3. Целевой причал проходит те же проверки, что при создании
		if berthChanged {
			if !targetBerth.AcceptsNewAssignments() {
				uc.logger.Warn("UpdateAssignment: berth id=%d is under maintenance", targetBerth.ID)
				return ErrBerthUnderMaintenance
			}
			if ship != nil && !targetBerth.FitsShip(ship.LengthMeters, ship.DraftMeters) {
				uc.logger.Warn("UpdateAssignment: ship id=%d exceeds berth id=%d limits", ship.ID, targetBerth.ID)
				return ErrDimensionExceeded
			}
		}

		// 4.4. Повторная проверка пересечений на целевом причале
		if berthChanged || windowChanged {
			existing, err := uc.assignmentRepo.GetWithFilter(txCtx, domain.AssignmentFilter{
				BerthID: &updated.BerthID,
			})
			if err != nil {
				uc.logger.Error("UpdateAssignment: failed to get assignments: %v", err)
				return fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
			}
			if conflict := findConflict(updated.Window(), existing, assignment.ID); conflict != nil {
				uc.logger.Warn("UpdateAssignment: window conflicts with assignment id=%d on berth id=%d",
					conflict.ID, updated.BerthID)
				return ErrTimeConflict
			}
		}

		// 4.5. Переносим загрузку между ledger'ами
		if err := uc.moveLoad(txCtx, assignment, updated); err != nil {
			return err
		}

		// 4.6. Сохраняем изменения
		if err := uc.assignmentRepo.UpdateSchedule(txCtx, assignment.ID, updated); err != nil {
			uc.logger.Error("UpdateAssignment: failed to update assignment id=%d: %v", assignment.ID, err)
			return fmt.Errorf("%w: failed to update assignment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAssignment: assignment id=%d updated, berth=%d, window=[%s, %s)",
		result.ID, result.BerthID,
		result.ScheduledArrival.Format("2006-01-02 15:04"),
		result.ScheduledDeparture.Format("2006-01-02 15:04"))

	return &Response{Assignment: result}, nil
}

// lockBerths блокирует старый и целевой причалы в порядке возрастания id
// и возвращает целевой причал
func (uc *UseCase) lockBerths(ctx context.Context, oldID, newID int64) (*domain.Berth, error) {
	lock := func(id int64) (*domain.Berth, error) {
		b, err := uc.berthRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, berthRepo.ErrBerthNotFound) {
				uc.logger.Warn("UpdateAssignment: berth id=%d not found", id)
				return nil, ErrBerthNotFound
			}
			uc.logger.Error("UpdateAssignment: failed to lock berth id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: failed to lock berth: %v", ErrInternal, err)
		}
		return b, nil
	}

	if oldID == newID {
		return lock(oldID)
	}

	first, second := oldID, newID
	if first > second {
		first, second = second, first
	}

	var target *domain.Berth
	for _, id := range []int64{first, second} {
		b, err := lock(id)
		if err != nil {
			return nil, err
		}
		if id == newID {
			target = b
		}
	}
	return target, nil
}

// moveLoad переносит зарезервированную загрузку при смене причала
// или изменении containerCount
func (uc *UseCase) moveLoad(ctx context.Context, old, updated *domain.BerthAssignment) error {
	reserve := func(berthID int64, units int) error {
		if units == 0 {
			return nil
		}
		if err := uc.berthRepo.Reserve(ctx, berthID, units); err != nil {
			if errors.Is(err, berthRepo.ErrCapacityExceeded) {
				uc.logger.Warn("UpdateAssignment: capacity exceeded on berth id=%d, requested=%d", berthID, units)
				return ErrCapacityExceeded
			}
			uc.logger.Error("UpdateAssignment: failed to reserve capacity on berth id=%d: %v", berthID, err)
			return fmt.Errorf("%w: failed to reserve capacity: %v", ErrInternal, err)
		}
		return nil
	}
	release := func(berthID int64, units int) error {
		if units == 0 {
			return nil
		}
		if err := uc.berthRepo.Release(ctx, berthID, units); err != nil {
			uc.logger.Error("UpdateAssignment: failed to release capacity on berth id=%d: %v", berthID, err)
			return fmt.Errorf("%w: failed to release capacity: %v", ErrInternal, err)
		}
		return nil
	}

	if updated.BerthID != old.BerthID {
		if err := release(old.BerthID, old.ContainerCount); err != nil {
			return err
		}
		return reserve(updated.BerthID, updated.ContainerCount)
	}

	delta := updated.ContainerCount - old.ContainerCount
	if delta > 0 {
		return reserve(old.BerthID, delta)
	}
	return release(old.BerthID, -delta)
}
