package record_arrival

import (
	"time"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

// Request модель запроса на фиксацию фактического прибытия
type Request struct {
	AssignmentID int64      // ID назначения
	ArrivalTime  *time.Time // Фактическое прибытие; nil — текущее время
}

// Response модель ответа с активированным назначением
type Response struct {
	Assignment *domain.BerthAssignment
}
