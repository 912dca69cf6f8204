package booking

import (
	"github.com/m04kA/AppointEase/pkg/txmanager"
)

// Переиспользуем интерфейс из txmanager для работы с БД
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor
