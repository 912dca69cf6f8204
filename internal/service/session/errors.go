package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда черновик не найден
	ErrSessionNotFound = errors.New("session: not found")

	// ErrServiceNotFound возвращается, когда выбранная услуга отсутствует в каталоге
	ErrServiceNotFound = errors.New("session: service not found")

	// ErrNoServiceSelected возвращается при выборе слота до выбора услуги
	ErrNoServiceSelected = errors.New("session: no service selected")

	// ErrSlotNotFound возвращается, когда слота с таким временем нет в сетке
	ErrSlotNotFound = errors.New("session: slot not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("session: slot is not available")

	// ErrIncompleteSelection возвращается при подтверждении без услуги или слота
	ErrIncompleteSelection = errors.New("session: service and slot must be selected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("session: internal error")
)
