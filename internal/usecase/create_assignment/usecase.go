package create_assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	berthRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/berth"
	fleetClient "github.com/m04kA/SMC-BerthService/internal/integrations/fleetservice"
)

// UseCase use case для создания назначения причала
// Единственная точка входа для новых резервирований
type UseCase struct {
	assignmentRepo AssignmentRepository
	berthRepo      BerthRepository
	fleetClient    FleetServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
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
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания назначения причала
// Проверка пересечений, резервирование загрузки и INSERT выполняются одной
// сериализуемой транзакцией с блокировкой строки причала: два конкурентных
// запроса на один причал не могут оба пройти проверку до фиксации любого из них
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAssignment: berth=%d, ship=%v, container=%v, window=[%s, %s), type=%s, count=%d",
		req.BerthID, req.ShipID, req.ContainerID,
		req.Window.Start.Format("2006-01-02 15:04"), req.Window.End.Format("2006-01-02 15:04"),
		req.AssignmentType, req.ContainerCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAssignment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Подтягиваем судно из FleetService (габариты нужны для проверки лимитов)
	var ship *fleetClient.Ship
	var shipName *string
	if req.ShipID != nil {
		s, err := uc.fleetClient.GetShip(ctx, *req.ShipID)
		if err != nil {
			if errors.Is(err, fleetClient.ErrShipNotFound) {
				uc.logger.Warn("CreateAssignment: ship id=%d not found", *req.ShipID)
				return nil, ErrShipNotFound
			}
			uc.logger.Error("CreateAssignment: failed to get ship id=%d: %v", *req.ShipID, err)
			return nil, fmt.Errorf("%w: failed to get ship: %v", ErrInternal, err)
		}
		ship = s
		shipName = &s.Name
	}

	// 4. Проверяем существование контейнера
	var containerNumber *string
	if req.ContainerID != nil {
		c, err := uc.fleetClient.GetContainer(ctx, *req.ContainerID)
		if err != nil {
			if errors.Is(err, fleetClient.ErrContainerNotFound) {
				uc.logger.Warn("CreateAssignment: container id=%d not found", *req.ContainerID)
				return nil, ErrContainerNotFound
			}
			uc.logger.Error("CreateAssignment: failed to get container id=%d: %v", *req.ContainerID, err)
			return nil, fmt.Errorf("%w: failed to get container: %v", ErrInternal, err)
		}
		containerNumber = &c.Number
	}

	// Переменная для хранения результата
	var result *domain.BerthAssignment

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Блокируем строку причала (per-berth mutual exclusion)
		berth, err := uc.berthRepo.GetByIDForUpdate(txCtx, req.BerthID)
		if err != nil {
			if errors.Is(err, berthRepo.ErrBerthNotFound) {
				uc.logger.Warn("CreateAssignment: berth id=%d not found", req.BerthID)
				return ErrBerthNotFound
			}
			uc.logger.Error("CreateAssignment: failed to get berth id=%d: %v", req.BerthID, err)
			return fmt.Errorf("%w: failed to get berth: %v", ErrInternal, err)
		}

		// 5.2. Причал на обслуживании не принимает новые назначения
		if !berth.AcceptsNewAssignments() {
			uc.logger.Warn("CreateAssignment: berth id=%d is under maintenance", req.BerthID)
			return ErrBerthUnderMaintenance
		}

		// 5.3. Проверяем физические ограничения причала для судна
		if ship != nil && !berth.FitsShip(ship.LengthMeters, ship.DraftMeters) {
			uc.logger.Warn("CreateAssignment: ship id=%d (length=%.1f, draft=%.1f) exceeds berth id=%d limits",
				ship.ID, ship.LengthMeters, ship.DraftMeters, berth.ID)
			return ErrDimensionExceeded
		}

		// 5.4. Получаем удерживающие причал назначения с блокировкой (FOR UPDATE)
		existing, err := uc.assignmentRepo.GetWithFilter(txCtx, domain.AssignmentFilter{
			BerthID: &req.BerthID,
		})
		if err != nil {
			uc.logger.Error("CreateAssignment: failed to get assignments: %v", err)
			return fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
		}

		// 5.5. Проверяем пересечение временных окон
		if conflict := findConflict(req.Window, existing, nil); conflict != nil {
			uc.logger.Warn("CreateAssignment: window conflicts with assignment id=%d on berth id=%d",
				conflict.ID, req.BerthID)
			return ErrTimeConflict
		}

		// 5.6. Резервируем загрузку в ledger причала
		if err := uc.berthRepo.Reserve(txCtx, req.BerthID, req.ContainerCount); err != nil {
			if errors.Is(err, berthRepo.ErrCapacityExceeded) {
				uc.logger.Warn("CreateAssignment: capacity exceeded on berth id=%d, load=%d/%d, requested=%d",
					berth.ID, berth.CurrentLoad, berth.Capacity, req.ContainerCount)
				return ErrCapacityExceeded
			}
			uc.logger.Error("CreateAssignment: failed to reserve capacity: %v", err)
			return fmt.Errorf("%w: failed to reserve capacity: %v", ErrInternal, err)
		}

		// 5.7. Сохраняем назначение
		created, err := uc.assignmentRepo.Create(txCtx, newAssignment(req, now, shipName, containerNumber))
		if err != nil {
			uc.logger.Error("CreateAssignment: failed to create assignment: %v", err)
			return fmt.Errorf("%w: failed to create assignment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAssignment: successfully created assignment id=%d on berth id=%d",
		result.ID, result.BerthID)

	return &Response{Assignment: result}, nil
}
