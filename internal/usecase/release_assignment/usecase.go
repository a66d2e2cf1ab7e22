package release_assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/assignment"
	chargeRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/charge"
)

// UseCase use case для освобождения причала с расчётом платы
type UseCase struct {
	assignmentRepo AssignmentRepository
	berthRepo      BerthRepository
	chargeRepo     ChargeRepository
	calculator     ChargeCalculator
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	assignmentRepo AssignmentRepository,
	berthRepo BerthRepository,
	chargeRepo ChargeRepository,
	calculator ChargeCalculator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		assignmentRepo: assignmentRepo,
		berthRepo:      berthRepo,
		chargeRepo:     chargeRepo,
		calculator:     calculator,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case освобождения причала
//
// Завершение назначения, возврат загрузки в ledger и создание начисления
// выполняются одной сериализуемой транзакцией. Терминальные статусы
// неизменяемы: повторный вызов для завершённого или отменённого назначения
// отклоняется, начисление создаётся ровно один раз
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReleaseAssignment: assignment=%d", req.AssignmentID)

	// 1. Валидация входных данных
	if req.AssignmentID <= 0 {
		return nil, fmt.Errorf("%w: assignmentID must be positive", ErrValidation)
	}
	if req.ServiceCharges != nil && req.ServiceCharges.IsNegative() {
		return nil, fmt.Errorf("%w: serviceCharges must not be negative", ErrValidation)
	}

	// 2. Момент release фиксируется один раз, до транзакции
	now := uc.timeProvider.Now()

	var result *Response

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Читаем назначение без блокировки, чтобы узнать причал
		preview, err := uc.assignmentRepo.GetByID(txCtx, req.AssignmentID)
		if err != nil {
			if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
				uc.logger.Warn("ReleaseAssignment: assignment id=%d not found", req.AssignmentID)
				return ErrAssignmentNotFound
			}
			uc.logger.Error("ReleaseAssignment: failed to get assignment id=%d: %v", req.AssignmentID, err)
			return fmt.Errorf("%w: failed to get assignment: %v", ErrInternal, err)
		}

		// 3.2. Блокируем строку причала раньше строки назначения
		// Единый порядок блокировок (причал -> назначение) во всех usecase
		berth, err := uc.berthRepo.GetByIDForUpdate(txCtx, preview.BerthID)
		if err != nil {
			uc.logger.Error("ReleaseAssignment: failed to lock berth id=%d: %v", preview.BerthID, err)
			return fmt.Errorf("%w: failed to lock berth: %v", ErrInternal, err)
		}

		// 3.3. Перечитываем назначение под блокировкой: статус мог измениться
		assignment, err := uc.assignmentRepo.GetByIDForUpdate(txCtx, req.AssignmentID)
		if err != nil {
			uc.logger.Error("ReleaseAssignment: failed to lock assignment id=%d: %v", req.AssignmentID, err)
			return fmt.Errorf("%w: failed to lock assignment: %v", ErrInternal, err)
		}

		switch assignment.Status {
		case domain.StatusCancelled:
			uc.logger.Warn("ReleaseAssignment: assignment id=%d is cancelled", assignment.ID)
			return ErrAlreadyCancelled
		case domain.StatusCompleted:
			uc.logger.Warn("ReleaseAssignment: assignment id=%d already completed", assignment.ID)
			return ErrAlreadyCompleted
		}

		// 3.4. Рассчитываем плату по фактической занятости
		charge := uc.calculator.Compute(assignment, berth, now, req.ServiceCharges)

		created, err := uc.chargeRepo.Create(txCtx, charge)
		if err != nil {
			if errors.Is(err, chargeRepo.ErrDuplicateCharge) {
				uc.logger.Error("ReleaseAssignment: duplicate charge for assignment id=%d", assignment.ID)
			}
			uc.logger.Error("ReleaseAssignment: failed to create charge: %v", err)
			return fmt.Errorf("%w: failed to create charge: %v", ErrInternal, err)
		}

		// 3.5. Переводим назначение в completed с итоговой стоимостью
		if err := uc.assignmentRepo.Complete(txCtx, assignment.ID, now, created.TotalCharges); err != nil {
			uc.logger.Error("ReleaseAssignment: failed to complete assignment id=%d: %v", assignment.ID, err)
			return fmt.Errorf("%w: failed to complete assignment: %v", ErrInternal, err)
		}

		// 3.6. Возвращаем загрузку в ledger причала
		if err := uc.berthRepo.Release(txCtx, assignment.BerthID, assignment.ContainerCount); err != nil {
			uc.logger.Error("ReleaseAssignment: failed to release capacity on berth id=%d: %v",
				assignment.BerthID, err)
			return fmt.Errorf("%w: failed to release capacity: %v", ErrInternal, err)
		}

		assignment.Status = domain.StatusCompleted
		assignment.ActualDeparture = &now
		assignment.ReleasedAt = &now
		assignment.Cost = &created.TotalCharges

		result = &Response{Assignment: assignment, Charge: created}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReleaseAssignment: assignment id=%d completed, charge id=%d, total=%s",
		result.Assignment.ID, result.Charge.ID, result.Charge.TotalCharges.String())

	return result, nil
}
