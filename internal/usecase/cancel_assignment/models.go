package cancel_assignment

import "github.com/m04kA/SMC-BerthService/internal/domain"

// Request модель запроса на отмену назначения
type Request struct {
	AssignmentID int64 // ID назначения
}

// Response модель ответа с отменённым назначением
type Response struct {
	Assignment *domain.BerthAssignment
}
