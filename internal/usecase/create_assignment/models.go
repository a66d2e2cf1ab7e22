package create_assignment

import (
	"time"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

// Request модель запроса на создание назначения причала
type Request struct {
	BerthID        int64                     // ID причала
	ShipID         *int64                    // ID судна (опционально)
	ContainerID    *int64                    // ID контейнера (опционально)
	Window         domain.Window             // Запрашиваемое окно [arrival, departure)
	AssignmentType domain.AssignmentType     // Тип работ
	Priority       domain.AssignmentPriority // Приоритет (информационный)
	ContainerCount int                       // Резервируемая загрузка, load units
}

// Response модель ответа с созданным назначением
type Response struct {
	Assignment *domain.BerthAssignment
}

// newAssignment собирает доменную модель назначения из запроса
// Статус всегда scheduled, момент назначения фиксируется вызывающим кодом
func newAssignment(req *Request, now time.Time, shipName, containerNumber *string) *domain.BerthAssignment {
	return &domain.BerthAssignment{
		BerthID:            req.BerthID,
		ShipID:             req.ShipID,
		ContainerID:        req.ContainerID,
		AssignmentType:     req.AssignmentType,
		Priority:           req.Priority,
		Status:             domain.StatusScheduled,
		ScheduledArrival:   req.Window.Start,
		ScheduledDeparture: req.Window.End,
		AssignedAt:         now,
		ContainerCount:     req.ContainerCount,
		// Денормализация для истории
		ShipName:        shipName,
		ContainerNumber: containerNumber,
	}
}
