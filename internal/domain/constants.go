package domain

import "time"

// Рабочие часы и сетка слотов одинаковы для всех дней
const (
	BusinessOpenHour   = 9
	BusinessCloseHour  = 17
	SlotStepMinutes    = 30
	MaxDurationMinutes = (BusinessCloseHour - BusinessOpenHour) * 60 // 8 hours
)

// Business validation constants
const (
	MaxNotesLength        = 500
	MaxCustomerNameLength = 200
)

// Time format constants
const (
	TimeFormat       = "15:04"           // HH:MM
	DateFormat       = "2006-01-02"      // YYYY-MM-DD
	SlotIDTimeFormat = "1504"            // HHMM, префикс ID слота
	SearchDateFormat = "January 2, 2006" // формат даты в поиске по журналу
)

// DateOnly обнуляет время, оставляя календарную дату в той же локации
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// BusinessHours возвращает границы рабочего дня для даты
func BusinessHours(date time.Time) (openAt, closeAt time.Time) {
	y, m, d := date.Date()
	openAt = time.Date(y, m, d, BusinessOpenHour, 0, 0, 0, date.Location())
	closeAt = time.Date(y, m, d, BusinessCloseHour, 0, 0, 0, date.Location())
	return openAt, closeAt
}
