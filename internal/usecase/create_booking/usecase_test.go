package create_booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/AppointEase/internal/domain"
	"github.com/m04kA/AppointEase/internal/infra/storage/booking"
	"github.com/m04kA/AppointEase/internal/service/catalog"
	"github.com/m04kA/AppointEase/pkg/logger"
	"github.com/m04kA/AppointEase/pkg/metrics"
	"github.com/m04kA/AppointEase/pkg/txmanager"
	"github.com/m04kA/AppointEase/pkg/types"
)

var (
	testDay = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type sequenceIDs struct{ n atomic.Int64 }

func (g *sequenceIDs) NewID() string { return fmt.Sprintf("appt-%d", g.n.Add(1)) }

type metricsRecorder struct {
	mu       sync.Mutex
	outcomes map[string]int
	size     int
}

func (m *metricsRecorder) IncBooking(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = make(map[string]int)
	}
	m.outcomes[outcome]++
}

func (m *metricsRecorder) SetLedgerSize(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.size = n
}

type ledger interface {
	BookingRepository
	List(ctx context.Context) ([]*domain.Appointment, error)
}

type fixture struct {
	uc      *UseCase
	repo    ledger
	metrics *metricsRecorder
}

func newFixture(t *testing.T, repo ledger, txManager TransactionManager) *fixture {
	t.Helper()
	c, err := catalog.New(catalog.DefaultServices())
	require.NoError(t, err)

	rec := &metricsRecorder{}
	uc := NewUseCase(repo, c, txManager, rec, logger.NewNop())
	uc.timeProvider = &fixedClock{now: testNow}
	uc.idGenerator = &sequenceIDs{}

	return &fixture{uc: uc, repo: repo, metrics: rec}
}

func newMemoryFixture(t *testing.T) *fixture {
	return newFixture(t, booking.NewMemoryRepository(), txmanager.NewLockManager())
}

func newSQLFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	repo := booking.NewRepository(db, time.UTC)
	require.NoError(t, repo.Migrate(context.Background()))

	return newFixture(t, repo, txmanager.NewSQLManager(db))
}

func validRequest(serviceID, start string) *Request {
	return &Request{
		ServiceID: serviceID,
		Date:      testDay,
		StartTime: types.TimeString(start),
		Customer: domain.CustomerDetails{
			Name:  "  Jane Doe ",
			Email: "jane@example.com",
			Phone: "+1 555 0100",
			Notes: "window seat",
		},
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	for name, newF := range map[string]func(*testing.T) *fixture{"memory": newMemoryFixture, "sql": newSQLFixture} {
		t.Run(name, func(t *testing.T) {
			f := newF(t)
			ctx := context.Background()

			resp, err := f.uc.Execute(ctx, validRequest("haircut", "10:00"))
			require.NoError(t, err)

			assert.Equal(t, "appt-1", resp.ID)
			assert.Equal(t, "haircut", resp.ServiceID)
			assert.Equal(t, "Haircut & Styling", resp.ServiceName)
			assert.Equal(t, "Jane Doe", resp.CustomerName)
			assert.True(t, resp.StartTime.Equal(time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)))
			assert.True(t, resp.EndTime.Equal(time.Date(2026, 6, 15, 11, 0, 0, 0, time.UTC)))
			assert.True(t, resp.CreatedAt.Equal(testNow))

			// Созданное бронирование видно в журнале на ту же дату
			sameDay, err := f.repo.GetByDate(ctx, testDay)
			require.NoError(t, err)
			require.Len(t, sameDay, 1)
			assert.Equal(t, resp.ID, sameDay[0].ID)

			assert.Equal(t, 1, f.metrics.outcomes[metrics.OutcomeCreated])
			assert.Equal(t, 1, f.metrics.size)
		})
	}
}

func TestExecute_ConflictLeavesLedgerUnchanged(t *testing.T) {
	f := newMemoryFixture(t)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, validRequest("haircut", "10:00"))
	require.NoError(t, err)

	// 09:30-10:30 пересекается с 10:00-11:00
	_, err = f.uc.Execute(ctx, validRequest("haircut", "09:30"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Граничащие слоты свободны
	_, err = f.uc.Execute(ctx, validRequest("haircut", "09:00"))
	require.NoError(t, err)
	_, err = f.uc.Execute(ctx, validRequest("haircut", "11:00"))
	require.NoError(t, err)

	list, err := f.repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, 1, f.metrics.outcomes[metrics.OutcomeConflict])
}

func TestExecute_ConflictAcrossServices(t *testing.T) {
	f := newMemoryFixture(t)
	ctx := context.Background()

	// Массаж 90 минут 13:00-14:30
	_, err := f.uc.Execute(ctx, validRequest("massage", "13:00"))
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, validRequest("manicure", "14:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	_, err = f.uc.Execute(ctx, validRequest("manicure", "14:30"))
	assert.NoError(t, err)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"empty service", func(r *Request) { r.ServiceID = "" }, ErrInvalidInput},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"empty start", func(r *Request) { r.StartTime = "" }, ErrInvalidInput},
		{"malformed start", func(r *Request) { r.StartTime = "9am" }, ErrInvalidInput},
		{"blank name", func(r *Request) { r.Customer.Name = "   " }, ErrInvalidInput},
		{"blank email", func(r *Request) { r.Customer.Email = "" }, ErrInvalidInput},
		{"blank phone", func(r *Request) { r.Customer.Phone = "\t" }, ErrInvalidInput},
		{"email without at", func(r *Request) { r.Customer.Email = "jane.example.com" }, ErrInvalidInput},
		{"unknown service", func(r *Request) { r.ServiceID = "tattoo" }, ErrServiceNotFound},
		{"off grid", func(r *Request) { r.StartTime = "10:15" }, ErrInvalidTimeSlot},
		{"before opening", func(r *Request) { r.StartTime = "08:30" }, ErrInvalidTimeSlot},
		{"runs past closing", func(r *Request) { r.StartTime = "16:30" }, ErrInvalidTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMemoryFixture(t)
			req := validRequest("haircut", "10:00")
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)

			list, err := f.repo.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, list)
			assert.Equal(t, 1, f.metrics.outcomes[metrics.OutcomeRejected])
		})
	}
}

type failingTx struct{}

func (failingTx) DoSerializable(_ context.Context, _ func(ctx context.Context) error) error {
	return errors.New("begin failed")
}

func TestExecute_TransactionFailure(t *testing.T) {
	f := newFixture(t, booking.NewMemoryRepository(), failingTx{})

	_, err := f.uc.Execute(context.Background(), validRequest("haircut", "10:00"))
	assert.Error(t, err)
	assert.Zero(t, f.metrics.outcomes[metrics.OutcomeCreated])
}

func TestExecute_ConcurrentBookingsOfSameSlot(t *testing.T) {
	for name, newF := range map[string]func(*testing.T) *fixture{"memory": newMemoryFixture, "sql": newSQLFixture} {
		t.Run(name, func(t *testing.T) {
			f := newF(t)
			const workers = 16

			var (
				wg        sync.WaitGroup
				succeeded atomic.Int32
				conflicts atomic.Int32
			)
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := f.uc.Execute(context.Background(), validRequest("haircut", "10:00"))
					switch {
					case err == nil:
						succeeded.Add(1)
					case errors.Is(err, ErrSlotNotAvailable):
						conflicts.Add(1)
					}
				}()
			}
			wg.Wait()

			assert.Equal(t, int32(1), succeeded.Load())
			assert.Equal(t, int32(workers-1), conflicts.Load())

			list, err := f.repo.List(context.Background())
			require.NoError(t, err)
			assert.Len(t, list, 1)
		})
	}
}

func TestExecute_NoTwoAppointmentsOverlap(t *testing.T) {
	f := newMemoryFixture(t)
	ctx := context.Background()

	services := []string{"haircut", "coloring", "facial", "massage", "manicure", "pedicure"}
	for i := 0; i < 60; i++ {
		serviceID := services[i%len(services)]
		minutes := 9*60 + (i*7%16)*30
		start := fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)

		_, err := f.uc.Execute(ctx, validRequest(serviceID, start))
		if err != nil {
			require.True(t, errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrInvalidTimeSlot), err)
		}
	}

	list, err := f.repo.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for i := range list {
		for j := i + 1; j < len(list); j++ {
			assert.False(t, list[i].Interval().Overlaps(list[j].Interval()), "%s overlaps %s", list[i].ID, list[j].ID)
		}
	}
}

type warnRecorder struct {
	mu    sync.Mutex
	warns []string
}

func (l *warnRecorder) Info(string, ...interface{})  {}
func (l *warnRecorder) Error(string, ...interface{}) {}
func (l *warnRecorder) Warn(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

type countFailingRepo struct {
	*booking.MemoryRepository
}

func (countFailingRepo) Count(context.Context) (int, error) {
	return 0, errors.New("count unavailable")
}

func TestExecute_CountFailureIsLoggedNotFatal(t *testing.T) {
	c, err := catalog.New(catalog.DefaultServices())
	require.NoError(t, err)

	repo := countFailingRepo{booking.NewMemoryRepository()}
	rec := &metricsRecorder{size: -1}
	logRec := &warnRecorder{}
	uc := NewUseCase(repo, c, txmanager.NewLockManager(), rec, logRec)

	resp, err := uc.Execute(context.Background(), validRequest("haircut", "10:00"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)

	assert.Equal(t, 1, rec.outcomes[metrics.OutcomeCreated])
	assert.Equal(t, -1, rec.size, "ledger size must not be set from a failed count")
	require.Len(t, logRec.warns, 1)
	assert.Contains(t, logRec.warns[0], "count unavailable")
}
