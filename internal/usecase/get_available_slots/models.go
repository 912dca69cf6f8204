package get_available_slots

import (
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	ServiceID string    // ID услуги
	Date      time.Time // Дата для получения слотов (время суток игнорируется)
}

// Response модель ответа со списком слотов
type Response struct {
	Date    time.Time         // Дата, на которую запрашивались слоты
	Service domain.Service    // Услуга, для которой строилась сетка
	Slots   []domain.TimeSlot // Все слоты сетки с отметкой доступности
}

// AvailableCount возвращает количество свободных слотов
func (r *Response) AvailableCount() int {
	count := 0
	for _, s := range r.Slots {
		if s.Available {
			count++
		}
	}
	return count
}
