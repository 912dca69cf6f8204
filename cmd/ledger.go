package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/m04kA/AppointEase/internal/config"
	"github.com/m04kA/AppointEase/internal/domain"
	bookingRepo "github.com/m04kA/AppointEase/internal/infra/storage/booking"
	"github.com/m04kA/AppointEase/pkg/txmanager"
)

// appointmentRepository объединяет методы журнала, нужные use cases и сервисам
type appointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}

type transactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type ledger struct {
	repo      appointmentRepository
	txManager transactionManager
	db        *sql.DB
}

func (l *ledger) Close() error {
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}

// newLedger создает журнал бронирований по настройкам хранилища
func newLedger(ctx context.Context, cfg config.StorageConfig) (*ledger, error) {
	switch cfg.Driver {
	case config.StorageSQLite:
		db, err := sql.Open("sqlite", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// одно соединение: in-memory база живёт, пока оно открыто, а запись сериализуется
		db.SetMaxOpenConns(1)

		repo := bookingRepo.NewRepository(db, time.Local)
		if err := repo.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}

		return &ledger{
			repo:      repo,
			txManager: txmanager.NewSQLManager(db),
			db:        db,
		}, nil

	default:
		return &ledger{
			repo:      bookingRepo.NewMemoryRepository(),
			txManager: txmanager.NewLockManager(),
		}, nil
	}
}
