package availability

import (
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
)

// Annotate пересчитывает доступность слотов по бронированиям на дату
// Слот недоступен, только если он пересекается хотя бы с одним бронированием той же календарной даты
// Входной срез не изменяется
func Annotate(slots []domain.TimeSlot, date time.Time, appointments []*domain.Appointment) []domain.TimeSlot {
	sameDay := appointmentsOn(date, appointments)

	result := make([]domain.TimeSlot, len(slots))
	for i, slot := range slots {
		slot.Available = !overlapsAny(slot.Interval(), sameDay)
		result[i] = slot
	}

	return result
}

// IsSlotFree проверяет, что слот не пересекается с бронированиями на дату
func IsSlotFree(slot domain.TimeSlot, date time.Time, appointments []*domain.Appointment) bool {
	return !overlapsAny(slot.Interval(), appointmentsOn(date, appointments))
}

// Overlaps проверяет пересечение полуоткрытых интервалов
func Overlaps(a, b domain.Interval) bool {
	return a.Overlaps(b)
}

// appointmentsOn оставляет бронирования, чья календарная дата совпадает с date
// Сравниваются только даты, а не полные отметки времени
func appointmentsOn(date time.Time, appointments []*domain.Appointment) []*domain.Appointment {
	result := make([]*domain.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt != nil && domain.IsSameDay(appt.Date, date) {
			result = append(result, appt)
		}
	}
	return result
}

func overlapsAny(slot domain.Interval, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if Overlaps(slot, appt.Interval()) {
			return true
		}
	}
	return false
}
