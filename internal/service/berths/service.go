package berths

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BerthService/internal/domain"
	berthRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/berth"
	"github.com/m04kA/SMC-BerthService/internal/service/berths/models"
)

// Service сервис для работы с причалами
type Service struct {
	berthRepo BerthRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса причалов
func NewService(
	berthRepo BerthRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		berthRepo: berthRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Create регистрирует новый причал
// Причал всегда создаётся свободным: загрузка 0, статус available
func (s *Service) Create(ctx context.Context, req *models.CreateBerthRequest) (*models.BerthResponse, error) {
	s.logger.Info("Create: registering berth name=%s", req.Name)

	rate, err := validateCreate(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	berth := &domain.Berth{
		Name:          req.Name,
		Capacity:      req.Capacity,
		MaxShipLength: req.MaxShipLength,
		MaxDraft:      req.MaxDraft,
		HourlyRate:    rate,
	}

	created, err := s.berthRepo.Create(ctx, berth)
	if err != nil {
		s.logger.Error("Create: failed to create berth: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: berth id=%d registered, capacity=%d", created.ID, created.Capacity)
	return models.FromDomainBerth(created), nil
}

// GetByID получает причал по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BerthResponse, error) {
	s.logger.Info("GetByID: fetching berth id=%d", id)

	berth, err := s.berthRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, berthRepo.ErrBerthNotFound) {
			s.logger.Warn("GetByID: berth id=%d not found", id)
			return nil, ErrBerthNotFound
		}
		s.logger.Error("GetByID: repository error for berth id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBerth(berth), nil
}

// Update изменяет атрибуты причала
// Вместимость нельзя уменьшить ниже текущей зарезервированной загрузки,
// поэтому изменение выполняется под блокировкой строки причала
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBerthRequest) (*models.BerthResponse, error) {
	s.logger.Info("Update: updating berth id=%d", id)

	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed for berth id=%d: %v", id, err)
		return nil, err
	}

	var result *domain.Berth

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		berth, err := s.berthRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, berthRepo.ErrBerthNotFound) {
				s.logger.Warn("Update: berth id=%d not found", id)
				return ErrBerthNotFound
			}
			s.logger.Error("Update: repository error for berth id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if err := applyUpdate(berth, req); err != nil {
			return err
		}

		if berth.Capacity < berth.CurrentLoad {
			s.logger.Warn("Update: capacity=%d below current load=%d for berth id=%d",
				berth.Capacity, berth.CurrentLoad, id)
			return ErrCapacityBelowLoad
		}

		updated, err := s.berthRepo.Update(txCtx, id, berth)
		if err != nil {
			s.logger.Error("Update: failed to update berth id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: berth id=%d updated, capacity=%d, status=%s",
		result.ID, result.Capacity, result.Status)
	return models.FromDomainBerth(result), nil
}

func validateCreate(req *models.CreateBerthRequest) (decimal.Decimal, error) {
	if req.Name == "" {
		return decimal.Zero, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return decimal.Zero, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if req.MaxShipLength != nil && *req.MaxShipLength <= 0 {
		return decimal.Zero, fmt.Errorf("%w: maxShipLength must be positive", ErrInvalidInput)
	}
	if req.MaxDraft != nil && *req.MaxDraft <= 0 {
		return decimal.Zero, fmt.Errorf("%w: maxDraft must be positive", ErrInvalidInput)
	}
	rate, err := decimal.NewFromString(req.HourlyRate)
	if err != nil || rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: hourlyRate must be a non-negative decimal", ErrInvalidInput)
	}
	return rate, nil
}

func validateUpdate(req *models.UpdateBerthRequest) error {
	if req.Name == nil && req.Capacity == nil && req.MaxShipLength == nil &&
		req.MaxDraft == nil && req.HourlyRate == nil && req.UnderMaintenance == nil {
		return fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}
	if req.Name != nil && *req.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if req.MaxShipLength != nil && *req.MaxShipLength <= 0 {
		return fmt.Errorf("%w: maxShipLength must be positive", ErrInvalidInput)
	}
	if req.MaxDraft != nil && *req.MaxDraft <= 0 {
		return fmt.Errorf("%w: maxDraft must be positive", ErrInvalidInput)
	}
	return nil
}

func applyUpdate(berth *domain.Berth, req *models.UpdateBerthRequest) error {
	if req.Name != nil {
		berth.Name = *req.Name
	}
	if req.Capacity != nil {
		berth.Capacity = *req.Capacity
	}
	if req.MaxShipLength != nil {
		berth.MaxShipLength = req.MaxShipLength
	}
	if req.MaxDraft != nil {
		berth.MaxDraft = req.MaxDraft
	}
	if req.HourlyRate != nil {
		rate, err := decimal.NewFromString(*req.HourlyRate)
		if err != nil || rate.IsNegative() {
			return fmt.Errorf("%w: hourlyRate must be a non-negative decimal", ErrInvalidInput)
		}
		berth.HourlyRate = rate
	}
	if req.UnderMaintenance != nil {
		berth.UnderMaintenance = *req.UnderMaintenance
	}
	return nil
}
