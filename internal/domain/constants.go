package domain

// Business validation constants
const (
	MinContainerCount = 0
	MaxContainerCount = 10000

	MaxAssignmentWindowHours = 24 * 30 // месяц — верхняя граница окна брони
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TerminalStatuses список терминальных статусов назначений
// Назначения в этих статусах не занимают причал и не могут быть изменены
var TerminalStatuses = []AssignmentStatus{
	StatusCompleted,
	StatusCancelled,
}

// OccupyingStatuses список статусов, при которых назначение удерживает
// загрузку причала и участвует в проверке пересечений временных окон
var OccupyingStatuses = []AssignmentStatus{
	StatusScheduled,
	StatusActive,
}

// ValidAssignmentTypes допустимые типы назначений
var ValidAssignmentTypes = []AssignmentType{
	TypeLoading,
	TypeUnloading,
	TypeStorage,
	TypeMaintenance,
	TypeInspection,
}

// ValidPriorities допустимые приоритеты назначений
var ValidPriorities = []AssignmentPriority{
	PriorityHigh,
	PriorityMedium,
	PriorityLow,
}

// RequiresLoad возвращает true, если тип назначения подразумевает
// ненулевое количество контейнеров
func (t AssignmentType) RequiresLoad() bool {
	return t == TypeLoading || t == TypeUnloading || t == TypeStorage
}

// IsValidAssignmentType проверяет, что тип назначения допустим
func IsValidAssignmentType(t AssignmentType) bool {
	for _, valid := range ValidAssignmentTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// IsValidPriority проверяет, что приоритет допустим
func IsValidPriority(p AssignmentPriority) bool {
	for _, valid := range ValidPriorities {
		if p == valid {
			return true
		}
	}
	return false
}
