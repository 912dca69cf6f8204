package booking

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/AppointEase/internal/domain"
	"github.com/m04kA/AppointEase/pkg/txmanager"
)

// ledger общий интерфейс обеих реализаций журнала
type ledger interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}

var (
	_ ledger = (*MemoryRepository)(nil)
	_ ledger = (*Repository)(nil)
)

var day = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

func newAppointment(id string, date time.Time, hour, minute, durationMinutes int) *domain.Appointment {
	start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:            id,
		ServiceID:     "haircut",
		ServiceName:   "Haircut & Styling",
		Date:          domain.DateOnly(date),
		StartTime:     start,
		EndTime:       start.Add(time.Duration(durationMinutes) * time.Minute),
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+1 555 0100",
		Notes:         "first visit",
		CreatedAt:     time.Date(2026, 6, 1, 8, 30, 15, 0, time.UTC),
	}
}

func newSQLRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	repo := NewRepository(db, time.UTC)
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func forEachLedger(t *testing.T, fn func(t *testing.T, repo ledger)) {
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryRepository()) })
	t.Run("sql", func(t *testing.T) { fn(t, newSQLRepository(t)) })
}

func ids(list []*domain.Appointment) []string {
	result := make([]string, len(list))
	for i, a := range list {
		result[i] = a.ID
	}
	return result
}

func TestLedger_CreateAndGet(t *testing.T) {
	forEachLedger(t, func(t *testing.T, repo ledger) {
		ctx := context.Background()
		appt := newAppointment("appt-1", day, 10, 0, 60)

		created, err := repo.Create(ctx, appt)
		require.NoError(t, err)
		assert.Equal(t, "appt-1", created.ID)

		got, err := repo.GetByID(ctx, "appt-1")
		require.NoError(t, err)
		assert.Equal(t, appt.ServiceName, got.ServiceName)
		assert.Equal(t, appt.CustomerEmail, got.CustomerEmail)
		assert.Equal(t, appt.Notes, got.Notes)
		assert.True(t, appt.StartTime.Equal(got.StartTime))
		assert.True(t, appt.EndTime.Equal(got.EndTime))
		assert.True(t, appt.CreatedAt.Equal(got.CreatedAt))
		assert.True(t, domain.IsSameDay(appt.Date, got.Date))
	})
}

func TestLedger_ReturnsCopies(t *testing.T) {
	forEachLedger(t, func(t *testing.T, repo ledger) {
		ctx := context.Background()
		_, err := repo.Create(ctx, newAppointment("appt-1", day, 10, 0, 60))
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, "appt-1")
		require.NoError(t, err)
		got.CustomerName = "Mallory"

		again, err := repo.GetByID(ctx, "appt-1")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", again.CustomerName)
	})
}

func TestLedger_DuplicateID(t *testing.T) {
	forEachLedger(t, func(t *testing.T, repo ledger) {
		ctx := context.Background()
		_, err := repo.Create(ctx, newAppointment("appt-1", day, 10, 0, 60))
		require.NoError(t, err)

		_, err = repo.Create(ctx, newAppointment("appt-1", day, 12, 0, 60))
		assert.ErrorIs(t, err, ErrDuplicateID)
	})
}

func TestLedger_InvalidAppointment(t *testing.T) {
	forEachLedger(t, func(t *testing.T, repo ledger) {
		ctx := context.Background()

		_, err := repo.Create(ctx, nil)
		assert.ErrorIs(t, err, ErrInvalidAppointment)

		_, err = repo.Create(ctx, newAppointment("", day, 10, 0, 60))
		assert.ErrorIs(t, err, ErrInvalidAppointment)

		_, err = repo.Create(ctx, newAppointment("appt-0", day, 10, 0, 0))
		assert.ErrorIs(t, err, ErrInvalidAppointment)
	})
}

func TestLedger_ListKeepsBookingOrder(t *testing.T) {
	forEachLedger(t, func(t *testing.T, repo ledger) {
		ctx := context.Background()
		for i, hour := range []int{15, 9, 12} {
			_, err := repo.Create(ctx, newAppointment(fmt.Sprintf("appt-%d", i), day, hour, 0, 60))
			require.NoError(t, err)
		}

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"appt-0", "appt-1", "appt-2"}, ids(list))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}

func TestLedger_GetByDate(t *testing.T) {
	forEachLedger(t, func(t *testing.T, repo ledger) {
		ctx := context.Background()
		tomorrow := day.AddDate(0, 0, 1)

		_, err := repo.Create(ctx, newAppointment("today-1", day, 10, 0, 60))
		require.NoError(t, err)
		_, err = repo.Create(ctx, newAppointment("tomorrow-1", tomorrow, 10, 0, 60))
		require.NoError(t, err)
		_, err = repo.Create(ctx, newAppointment("today-2", day, 14, 0, 60))
		require.NoError(t, err)

		// время суток в запрошенной дате не важно
		got, err := repo.GetByDate(ctx, day.Add(13*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, []string{"today-1", "today-2"}, ids(got))

		empty, err := repo.GetByDate(ctx, day.AddDate(0, 0, 7))
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

func TestLedger_Delete(t *testing.T) {
	forEachLedger(t, func(t *testing.T, repo ledger) {
		ctx := context.Background()
		_, err := repo.Create(ctx, newAppointment("appt-1", day, 10, 0, 60))
		require.NoError(t, err)
		_, err = repo.Create(ctx, newAppointment("appt-2", day, 12, 0, 60))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, "appt-1"))

		_, err = repo.GetByID(ctx, "appt-1")
		assert.ErrorIs(t, err, ErrAppointmentNotFound)

		sameDay, err := repo.GetByDate(ctx, day)
		require.NoError(t, err)
		assert.Equal(t, []string{"appt-2"}, ids(sameDay))

		assert.ErrorIs(t, repo.Delete(ctx, "appt-1"), ErrAppointmentNotFound)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestRepository_UsesTransactionFromContext(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	repo := NewRepository(db, time.UTC)
	require.NoError(t, repo.Migrate(context.Background()))

	txMgr := txmanager.NewSQLManager(db)
	errAbort := fmt.Errorf("abort")

	err = txMgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		if _, err := repo.Create(ctx, newAppointment("appt-1", day, 10, 0, 60)); err != nil {
			return err
		}
		inTx, err := repo.GetByDate(ctx, day)
		if err != nil {
			return err
		}
		assert.Len(t, inTx, 1)
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count, "rolled back insert must not be visible")
}
