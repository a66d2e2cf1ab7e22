package cancel_assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/assignment"
)

// UseCase use case для отмены назначения причала
type UseCase struct {
	assignmentRepo AssignmentRepository
	berthRepo      BerthRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	assignmentRepo AssignmentRepository,
	berthRepo BerthRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		assignmentRepo: assignmentRepo,
		berthRepo:      berthRepo,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case отмены назначения
// Отмена возвращает загрузку в ledger причала и не создаёт начисление.
// Терминальные статусы неизменяемы: повторная отмена отклоняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAssignment: assignment=%d", req.AssignmentID)

	// 1. Валидация входных данных
	if req.AssignmentID <= 0 {
		return nil, fmt.Errorf("%w: assignmentID must be positive", ErrValidation)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.BerthAssignment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Читаем назначение без блокировки, чтобы узнать причал
		preview, err := uc.assignmentRepo.GetByID(txCtx, req.AssignmentID)
		if err != nil {
			if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
				uc.logger.Warn("CancelAssignment: assignment id=%d not found", req.AssignmentID)
				return ErrAssignmentNotFound
			}
			uc.logger.Error("CancelAssignment: failed to get assignment id=%d: %v", req.AssignmentID, err)
			return fmt.Errorf("%w: failed to get assignment: %v", ErrInternal, err)
		}

		// 3.2. Единый порядок блокировок: причал -> назначение
		if _, err := uc.berthRepo.GetByIDForUpdate(txCtx, preview.BerthID); err != nil {
			uc.logger.Error("CancelAssignment: failed to lock berth id=%d: %v", preview.BerthID, err)
			return fmt.Errorf("%w: failed to lock berth: %v", ErrInternal, err)
		}

		// 3.3. Перечитываем назначение под блокировкой
		assignment, err := uc.assignmentRepo.GetByIDForUpdate(txCtx, req.AssignmentID)
		if err != nil {
			uc.logger.Error("CancelAssignment: failed to lock assignment id=%d: %v", req.AssignmentID, err)
			return fmt.Errorf("%w: failed to lock assignment: %v", ErrInternal, err)
		}

		switch assignment.Status {
		case domain.StatusCompleted:
			uc.logger.Warn("CancelAssignment: assignment id=%d already completed", assignment.ID)
			return ErrAlreadyCompleted
		case domain.StatusCancelled:
			uc.logger.Warn("CancelAssignment: assignment id=%d already cancelled", assignment.ID)
			return ErrAlreadyCancelled
		}

		// 3.4. Переводим в cancelled
		if err := uc.assignmentRepo.Cancel(txCtx, assignment.ID, now); err != nil {
			uc.logger.Error("CancelAssignment: failed to cancel assignment id=%d: %v", assignment.ID, err)
			return fmt.Errorf("%w: failed to cancel assignment: %v", ErrInternal, err)
		}

		// 3.5. Возвращаем загрузку в ledger причала
		if err := uc.berthRepo.Release(txCtx, assignment.BerthID, assignment.ContainerCount); err != nil {
			uc.logger.Error("CancelAssignment: failed to release capacity on berth id=%d: %v",
				assignment.BerthID, err)
			return fmt.Errorf("%w: failed to release capacity: %v", ErrInternal, err)
		}

		assignment.Status = domain.StatusCancelled
		assignment.ReleasedAt = &now
		result = assignment
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelAssignment: assignment id=%d cancelled", result.ID)

	return &Response{Assignment: result}, nil
}
