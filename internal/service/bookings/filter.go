package bookings

import (
	"slices"
	"strings"
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
)

// applyFilter отбирает и упорядочивает бронирования по фильтру
// Входной срез должен быть в порядке бронирования
func applyFilter(appointments []*domain.Appointment, filter domain.AppointmentsFilter, now time.Time) []*domain.Appointment {
	query := strings.ToLower(strings.TrimSpace(filter.Search))

	result := make([]*domain.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if !matchesPeriod(appt, filter.Period, now) {
			continue
		}
		if filter.Date != nil && !domain.IsSameDay(appt.Date, *filter.Date) {
			continue
		}
		if query != "" && !matchesSearch(appt, query) {
			continue
		}
		result = append(result, appt)
	}

	if filter.SortBy == domain.SortByStartTime {
		slices.SortStableFunc(result, func(a, b *domain.Appointment) int {
			return a.StartTime.Compare(b.StartTime)
		})
	}

	return result
}

func matchesPeriod(appt *domain.Appointment, period domain.AppointmentPeriod, now time.Time) bool {
	switch period {
	case domain.PeriodUpcoming:
		return appt.IsUpcoming(now)
	case domain.PeriodPast:
		return !appt.IsUpcoming(now)
	default:
		return true
	}
}

// matchesSearch ищет по имени клиента, email, названию услуги и дате в длинном формате
func matchesSearch(appt *domain.Appointment, query string) bool {
	fields := []string{
		appt.CustomerName,
		appt.CustomerEmail,
		appt.ServiceName,
		appt.Date.Format(domain.SearchDateFormat),
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
