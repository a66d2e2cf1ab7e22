package update_assignment

import (
	"github.com/m04kA/SMC-BerthService/internal/domain"
)

// Request модель запроса на изменение назначения
// nil-поля остаются без изменений
type Request struct {
	AssignmentID   int64                      // ID назначения
	BerthID        *int64                     // Перенос на другой причал
	Window         *domain.Window             // Новое окно [arrival, departure)
	AssignmentType *domain.AssignmentType     // Новый тип работ
	Priority       *domain.AssignmentPriority // Новый приоритет
	ContainerCount *int                       // Новая резервируемая загрузка
}

// Response модель ответа с обновлённым назначением
type Response struct {
	Assignment *domain.BerthAssignment
}

// apply накладывает изменения запроса на копию назначения
func (r *Request) apply(a *domain.BerthAssignment) *domain.BerthAssignment {
	updated := *a
	if r.BerthID != nil {
		updated.BerthID = *r.BerthID
	}
	if r.Window != nil {
		updated.ScheduledArrival = r.Window.Start
		updated.ScheduledDeparture = r.Window.End
	}
	if r.AssignmentType != nil {
		updated.AssignmentType = *r.AssignmentType
	}
	if r.Priority != nil {
		updated.Priority = *r.Priority
	}
	if r.ContainerCount != nil {
		updated.ContainerCount = *r.ContainerCount
	}
	return &updated
}
