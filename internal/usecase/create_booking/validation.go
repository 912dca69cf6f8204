package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/AppointEase/internal/domain"
	"github.com/m04kA/AppointEase/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return validateCustomer(req.Customer)
}

// validateCustomer проверяет обязательные поля клиента
func validateCustomer(c domain.CustomerDetails) error {
	required := []struct {
		field string
		value string
	}{
		{"name", c.Name},
		{"email", c.Email},
		{"phone", c.Phone},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: customer %s is required", ErrInvalidInput, r.field)
		}
	}

	if utf8.RuneCountInString(c.Name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if !strings.Contains(c.Email, "@") {
		return fmt.Errorf("%w: customer email is malformed", ErrInvalidInput)
	}

	if utf8.RuneCountInString(c.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// normalizeCustomer обрезает пробелы по краям полей клиента
func normalizeCustomer(c domain.CustomerDetails) domain.CustomerDetails {
	return domain.CustomerDetails{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
		Notes: strings.TrimSpace(c.Notes),
	}
}

// findSlot ищет в сетке слот, начинающийся в startTime
func findSlot(slots []domain.TimeSlot, date time.Time, startTime types.TimeString) (domain.TimeSlot, error) {
	start, err := startTime.On(date)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	for _, slot := range slots {
		if slot.StartTime.Equal(start) {
			return slot, nil
		}
	}

	return domain.TimeSlot{}, fmt.Errorf("%w: %s is not a bookable start", ErrInvalidTimeSlot, startTime)
}
