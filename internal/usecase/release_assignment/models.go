package release_assignment

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

// Request модель запроса на освобождение причала
type Request struct {
	AssignmentID   int64            // ID назначения
	ServiceCharges *decimal.Decimal // Надбавка за услуги; nil — значение по умолчанию
}

// Response модель ответа: завершённое назначение и созданное начисление
type Response struct {
	Assignment *domain.BerthAssignment
	Charge     *domain.BerthUsageCharge
}
