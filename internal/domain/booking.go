package domain

import "time"

// Appointment запись в журнале бронирований
// После создания не меняется, может быть только удалена (отменена)
type Appointment struct {
	ID        string
	ServiceID string
	Date      time.Time // календарная дата (00:00 локального времени)
	StartTime time.Time
	EndTime   time.Time

	// Denormalized data for history
	ServiceName string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string

	CreatedAt time.Time
}

// Interval возвращает полуоткрытый интервал бронирования
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartTime, End: a.EndTime}
}

// IsUpcoming возвращает true, если бронирование начинается позже now
func (a *Appointment) IsUpcoming(now time.Time) bool {
	return a.StartTime.After(now)
}

// CustomerDetails данные клиента, введённые при бронировании
type CustomerDetails struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// AppointmentPeriod разбиение журнала на предстоящие и прошедшие
type AppointmentPeriod string

const (
	PeriodAll      AppointmentPeriod = "all"
	PeriodUpcoming AppointmentPeriod = "upcoming"
	PeriodPast     AppointmentPeriod = "past"
)

// AppointmentSort порядок выдачи журнала
type AppointmentSort string

const (
	SortByBooking   AppointmentSort = "booking"    // порядок бронирования
	SortByStartTime AppointmentSort = "start_time" // хронологически
)

// AppointmentsFilter фильтр для получения бронирований
type AppointmentsFilter struct {
	Period AppointmentPeriod // Пусто или PeriodAll - без разбиения
	Date   *time.Time        // Календарная дата (опционально)
	Search string            // Поиск по клиенту, email, услуге и дате (опционально)
	SortBy AppointmentSort   // Пусто - порядок бронирования
}
