package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrInvalidService возвращается при некорректном описании услуги
	ErrInvalidService = errors.New("catalog: invalid service")

	// ErrDuplicateService возвращается, когда ID услуги повторяется
	ErrDuplicateService = errors.New("catalog: duplicate service id")
)
