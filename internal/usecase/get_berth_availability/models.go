package get_berth_availability

import (
	"time"

	"github.com/m04kA/SMC-BerthService/internal/domain"
)

// Request модель запроса занятости причала за период [From, To)
type Request struct {
	BerthID int64
	From    time.Time
	To      time.Time
}

// OccupiedWindow занятое окно причала
type OccupiedWindow struct {
	AssignmentID   int64
	Window         domain.Window
	Status         domain.AssignmentStatus
	ContainerCount int
}

// Response модель ответа: занятые окна и свободная вместимость
type Response struct {
	Berth             *domain.Berth
	Occupied          []OccupiedWindow
	RemainingCapacity int
}
