package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

// ErrTransaction возвращается при ошибках работы с транзакцией
var ErrTransaction = errors.New("txmanager: transaction error")

// DBExecutor общий интерфейс *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type txKey struct{}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok && tx != nil {
		return tx
	}
	return db
}

// SQLManager менеджер транзакций поверх database/sql
type SQLManager struct {
	db *sql.DB
}

// NewSQLManager создает менеджер транзакций
func NewSQLManager(db *sql.DB) *SQLManager {
	return &SQLManager{db: db}
}

// DoSerializable выполняет fn в одной транзакции
// SQLite выполняет транзакции сериализуемо, поэтому уровень изоляции не передаётся драйверу
func (m *SQLManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w: rollback: %v (original error: %w)", ErrTransaction, rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}

	return nil
}

// LockManager менеджер "транзакций" для in-memory хранилища
// Все вызовы DoSerializable выполняются строго последовательно
type LockManager struct {
	mu sync.Mutex
}

// NewLockManager создает менеджер на мьютексе
func NewLockManager() *LockManager {
	return &LockManager{}
}

// DoSerializable выполняет fn под эксклюзивной блокировкой
func (m *LockManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrTransaction, err)
	}

	return fn(ctx)
}
