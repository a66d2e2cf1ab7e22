package record_arrival

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/assignment"
)

// UseCase use case для фиксации фактического прибытия судна
type UseCase struct {
	assignmentRepo AssignmentRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	assignmentRepo AssignmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case фиксации прибытия
// Переводит назначение scheduled -> active; с этого момента фактическая
// занятость (и тарификация при release) отсчитывается от actual_arrival
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RecordArrival: assignment=%d", req.AssignmentID)

	// 1. Валидация входных данных
	if req.AssignmentID <= 0 {
		return nil, fmt.Errorf("%w: assignmentID must be positive", ErrValidation)
	}

	// 2. Определяем момент прибытия
	arrival := uc.timeProvider.Now()
	if req.ArrivalTime != nil {
		if req.ArrivalTime.After(arrival) {
			return nil, fmt.Errorf("%w: arrival time must not be in the future", ErrValidation)
		}
		arrival = *req.ArrivalTime
	}

	var result *domain.BerthAssignment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем строку назначения
		assignment, err := uc.assignmentRepo.GetByIDForUpdate(txCtx, req.AssignmentID)
		if err != nil {
			if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
				uc.logger.Warn("RecordArrival: assignment id=%d not found", req.AssignmentID)
				return ErrAssignmentNotFound
			}
			uc.logger.Error("RecordArrival: failed to get assignment id=%d: %v", req.AssignmentID, err)
			return fmt.Errorf("%w: failed to get assignment: %v", ErrInternal, err)
		}

		// 3.2. Прибытие фиксируется только из scheduled
		if !assignment.CanRecordArrival() {
			if assignment.Status == domain.StatusActive {
				uc.logger.Warn("RecordArrival: arrival already recorded for assignment id=%d", assignment.ID)
				return ErrAlreadyArrived
			}
			uc.logger.Warn("RecordArrival: assignment id=%d is in terminal status %s", assignment.ID, assignment.Status)
			return ErrAssignmentTerminal
		}

		// 3.3. Переводим в active
		if err := uc.assignmentRepo.MarkActive(txCtx, assignment.ID, arrival); err != nil {
			uc.logger.Error("RecordArrival: failed to mark assignment id=%d active: %v", assignment.ID, err)
			return fmt.Errorf("%w: failed to mark active: %v", ErrInternal, err)
		}

		assignment.Status = domain.StatusActive
		assignment.ActualArrival = &arrival
		result = assignment
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RecordArrival: assignment id=%d is now active, arrival=%s",
		result.ID, arrival.Format("2006-01-02 15:04"))

	return &Response{Assignment: result}, nil
}
