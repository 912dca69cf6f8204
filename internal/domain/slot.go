package domain

import "time"

// TimeSlot кандидат на бронирование длиной ровно в длительность услуги
type TimeSlot struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Available bool
}

// Interval возвращает полуоткрытый интервал слота
func (s TimeSlot) Interval() Interval {
	return Interval{Start: s.StartTime, End: s.EndTime}
}

// DurationMinutes возвращает длительность слота в минутах
func (s TimeSlot) DurationMinutes() int {
	return int(s.EndTime.Sub(s.StartTime) / time.Minute)
}

// Interval полуоткрытый интервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps проверяет пересечение полуоткрытых интервалов
// [a,b) и [c,d) пересекаются, только если a < d и c < b
// Интервалы, касающиеся только границей, не пересекаются
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}
