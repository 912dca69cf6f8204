package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
)

// GenerateSlots генерирует все возможные слоты услуги на день
// Слоты начинаются с открытия с шагом domain.SlotStepMinutes, длина слота равна длительности услуги
// Слот, выходящий за время закрытия, не генерируется, и дальше генерация не идёт
// Все слоты возвращаются доступными, пересечения с бронированиями здесь не проверяются
func GenerateSlots(date time.Time, durationMinutes int, serviceID string) ([]domain.TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, durationMinutes)
	}

	openTime, closeTime := domain.BusinessHours(date)
	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(domain.SlotStepMinutes) * time.Minute

	slots := make([]domain.TimeSlot, 0)
	for start := openTime; start.Before(closeTime); start = start.Add(step) {
		end := start.Add(duration)
		if end.After(closeTime) {
			break
		}

		slots = append(slots, domain.TimeSlot{
			ID:        SlotID(start, serviceID),
			StartTime: start,
			EndTime:   end,
			Available: true,
		})
	}

	return slots, nil
}

// SlotID формирует идентификатор слота: HHMM-<serviceID>
// Идентификатор уникален только в пределах пары (дата, услуга)
func SlotID(start time.Time, serviceID string) string {
	return start.Format(domain.SlotIDTimeFormat) + "-" + serviceID
}
