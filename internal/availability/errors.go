package availability

import "errors"

var (
	// ErrInvalidDuration возвращается, когда длительность услуги не положительна
	ErrInvalidDuration = errors.New("availability: duration must be a positive number of minutes")
)
