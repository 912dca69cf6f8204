package list_appointments

import (
	"net/url"
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
	"github.com/m04kA/AppointEase/internal/service/bookings/models"
)

// ToServiceRequest создает запрос сервиса из query параметров
// period, date (YYYY-MM-DD), q, sort - все опциональны
func ToServiceRequest(query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{
		Period: query.Get("period"),
		Query:  query.Get("q"),
		Sort:   query.Get("sort"),
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}
