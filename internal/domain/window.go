package domain

import "time"

// Window полуоткрытый временной интервал [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the window has positive length
func (w Window) IsValid() bool {
	return !w.Start.IsZero() && !w.End.IsZero() && w.Start.Before(w.End)
}

// Overlaps проверяет пересечение полуоткрытых интервалов
// Интервалы, касающиеся границами (end одного == start другого), НЕ пересекаются
func (w Window) Overlaps(other Window) bool {
	return other.Start.Before(w.End) && w.Start.Before(other.End)
}

// Contains returns true if t lies within [Start, End)
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Duration returns the length of the window
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
