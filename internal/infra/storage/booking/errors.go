package booking

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда бронирование не найдено
	ErrAppointmentNotFound = errors.New("booking.repository: appointment not found")

	// ErrDuplicateID возвращается, когда бронирование с таким ID уже есть
	ErrDuplicateID = errors.New("booking.repository: duplicate appointment id")

	// ErrInvalidAppointment возвращается при попытке сохранить некорректное бронирование
	ErrInvalidAppointment = errors.New("booking.repository: invalid appointment")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
