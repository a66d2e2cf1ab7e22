package assignments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/assignment"
	chargeRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/charge"
	"github.com/m04kA/SMC-BerthService/internal/service/assignments/models"
)

// Service сервис для чтения назначений и работы с начислениями
type Service struct {
	assignmentRepo AssignmentRepository
	chargeRepo     ChargeRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса назначений
func NewService(
	assignmentRepo AssignmentRepository,
	chargeRepo ChargeRepository,
	logger Logger,
) *Service {
	return &Service{
		assignmentRepo: assignmentRepo,
		chargeRepo:     chargeRepo,
		logger:         logger,
	}
}

// GetByID получает назначение по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AssignmentResponse, error) {
	s.logger.Info("GetByID: fetching assignment id=%d", id)

	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			s.logger.Warn("GetByID: assignment id=%d not found", id)
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("GetByID: repository error for assignment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAssignment(assignment), nil
}

// List получает назначения с гибкой фильтрацией
// Поддерживает фильтрацию по причалу, судну, периоду и статусу
//
// Примеры использования:
// - Назначения причала: указать BerthID
// - Назначения за период: From и To задают полуинтервал [From, To)
// - История судна: указать ShipID и IncludeTerminal = true
// - Только активные: Status = "active"
func (s *Service) List(ctx context.Context, req *models.ListAssignmentsRequest) (*models.AssignmentListResponse, error) {
	s.logger.Info("List: fetching assignments, berth=%v, ship=%v, status=%v, includeTerminal=%v",
		req.BerthID, req.ShipID, req.Status, req.IncludeTerminal)

	if req.From != nil && req.To != nil && !req.To.After(*req.From) {
		s.logger.Warn("List: invalid period, to must be after from")
		return nil, fmt.Errorf("%w: to must be after from", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status=%v", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	assignments, err := s.assignmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d assignments", len(assignments))
	return models.FromDomainAssignmentList(assignments), nil
}

// GetCharge получает начисление по ID назначения
func (s *Service) GetCharge(ctx context.Context, assignmentID int64) (*models.ChargeResponse, error) {
	s.logger.Info("GetCharge: fetching charge for assignment id=%d", assignmentID)

	// Начисление существует только у завершённых назначений
	if _, err := s.assignmentRepo.GetByID(ctx, assignmentID); err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			s.logger.Warn("GetCharge: assignment id=%d not found", assignmentID)
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("GetCharge: repository error for assignment id=%d: %v", assignmentID, err)
		return nil, fmt.Errorf("%w: GetCharge - repository error: %v", ErrInternal, err)
	}

	charge, err := s.chargeRepo.GetByAssignmentID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, chargeRepo.ErrChargeNotFound) {
			s.logger.Warn("GetCharge: no charge for assignment id=%d", assignmentID)
			return nil, ErrChargeNotFound
		}
		s.logger.Error("GetCharge: repository error for assignment id=%d: %v", assignmentID, err)
		return nil, fmt.Errorf("%w: GetCharge - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCharge(charge), nil
}

// UpdateChargePaymentStatus переводит начисление в новый статус оплаты
// Допустимые переходы: pending -> paid, pending -> overdue, overdue -> paid
func (s *Service) UpdateChargePaymentStatus(ctx context.Context, chargeID int64, status string) (*models.ChargeResponse, error) {
	s.logger.Info("UpdateChargePaymentStatus: charge id=%d, status=%s", chargeID, status)

	next := domain.PaymentStatus(status)
	switch next {
	case domain.PaymentStatusPending, domain.PaymentStatusPaid, domain.PaymentStatusOverdue:
	default:
		s.logger.Warn("UpdateChargePaymentStatus: unknown status=%s", status)
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, status)
	}

	charge, err := s.chargeRepo.GetByID(ctx, chargeID)
	if err != nil {
		if errors.Is(err, chargeRepo.ErrChargeNotFound) {
			s.logger.Warn("UpdateChargePaymentStatus: charge id=%d not found", chargeID)
			return nil, ErrChargeNotFound
		}
		s.logger.Error("UpdateChargePaymentStatus: repository error for charge id=%d: %v", chargeID, err)
		return nil, fmt.Errorf("%w: UpdateChargePaymentStatus - repository error: %v", ErrInternal, err)
	}

	if !charge.CanTransitionTo(next) {
		s.logger.Warn("UpdateChargePaymentStatus: transition %s -> %s is not allowed for charge id=%d",
			charge.PaymentStatus, next, chargeID)
		return nil, ErrInvalidTransition
	}

	if err := s.chargeRepo.UpdatePaymentStatus(ctx, chargeID, next); err != nil {
		s.logger.Error("UpdateChargePaymentStatus: failed to update charge id=%d: %v", chargeID, err)
		return nil, fmt.Errorf("%w: UpdateChargePaymentStatus - repository error: %v", ErrInternal, err)
	}

	charge.PaymentStatus = next
	s.logger.Info("UpdateChargePaymentStatus: charge id=%d is now %s", chargeID, next)
	return models.FromDomainCharge(charge), nil
}
