package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/AppointEase/internal/domain"
	"github.com/m04kA/AppointEase/pkg/txmanager"
)

const appointmentsTable = "appointments"

// Schema схема таблицы бронирований
// seq задаёт порядок бронирования, id - внешний идентификатор
const Schema = `
CREATE TABLE IF NOT EXISTS appointments (
	seq            INTEGER PRIMARY KEY AUTOINCREMENT,
	id             TEXT    NOT NULL UNIQUE,
	service_id     TEXT    NOT NULL,
	service_name   TEXT    NOT NULL,
	booking_date   TEXT    NOT NULL,
	start_time     TEXT    NOT NULL,
	end_time       TEXT    NOT NULL,
	customer_name  TEXT    NOT NULL,
	customer_email TEXT    NOT NULL,
	customer_phone TEXT    NOT NULL,
	notes          TEXT    NOT NULL DEFAULT '',
	created_at     TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_appointments_booking_date ON appointments (booking_date);
`

var appointmentColumns = []string{
	"id",
	"service_id",
	"service_name",
	"booking_date",
	"start_time",
	"end_time",
	"customer_name",
	"customer_email",
	"customer_phone",
	"notes",
	"created_at",
}

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// Repository репозиторий бронирований поверх database/sql
// Время хранится в RFC3339, дата - в формате YYYY-MM-DD
type Repository struct {
	db  DBExecutor
	loc *time.Location
}

// NewRepository создает новый экземпляр репозитория бронирований
// loc - локальный часовой пояс, в котором возвращаются даты и время
func NewRepository(db DBExecutor, loc *time.Location) *Repository {
	if loc == nil {
		loc = time.Local
	}
	return &Repository{db: db, loc: loc}
}

// Migrate создает таблицы, если их нет
func (r *Repository) Migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(Schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: Migrate - execute schema: %v", ErrExecQuery, err)
		}
	}
	return nil
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if err := validateAppointment(appt); err != nil {
		return nil, err
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := builder.Insert(appointmentsTable).
		Columns(appointmentColumns...).
		Values(
			appt.ID,
			appt.ServiceID,
			appt.ServiceName,
			appt.Date.Format(domain.DateFormat),
			formatTime(appt.StartTime),
			formatTime(appt.EndTime),
			appt.CustomerName,
			appt.CustomerEmail,
			appt.CustomerPhone,
			appt.Notes,
			formatTime(appt.CreatedAt),
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, appt.ID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return clone(appt), nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := builder.Select(appointmentColumns...).
		From(appointmentsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetByDate получает бронирования на календарную дату в порядке добавления
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return r.selectAppointments(ctx, "GetByDate", squirrel.Eq{"booking_date": date.Format(domain.DateFormat)})
}

// List получает все бронирования в порядке добавления
func (r *Repository) List(ctx context.Context) ([]*domain.Appointment, error) {
	return r.selectAppointments(ctx, "List", nil)
}

// Count возвращает количество бронирований в журнале
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := builder.Select("COUNT(*)").From(appointmentsTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := builder.Delete(appointmentsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) selectAppointments(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := builder.Select(appointmentColumns...).
		From(appointmentsTable).
		OrderBy("seq ASC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var bookingDate, start, end, createdAt string

	err := row.Scan(
		&appt.ID,
		&appt.ServiceID,
		&appt.ServiceName,
		&bookingDate,
		&start,
		&end,
		&appt.CustomerName,
		&appt.CustomerEmail,
		&appt.CustomerPhone,
		&appt.Notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if appt.Date, err = time.ParseInLocation(domain.DateFormat, bookingDate, r.loc); err != nil {
		return nil, fmt.Errorf("parse booking_date: %w", err)
	}
	if appt.StartTime, err = r.parseTime(start); err != nil {
		return nil, fmt.Errorf("parse start_time: %w", err)
	}
	if appt.EndTime, err = r.parseTime(end); err != nil {
		return nil, fmt.Errorf("parse end_time: %w", err)
	}
	if appt.CreatedAt, err = r.parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	return &appt, nil
}

func (r *Repository) parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(r.loc), nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
