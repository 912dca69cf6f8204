package list_services

import (
	"context"

	"github.com/m04kA/AppointEase/internal/domain"
)

type Catalog interface {
	ListServices(ctx context.Context) []domain.Service
	GetService(ctx context.Context, id string) (*domain.Service, error)
	Search(ctx context.Context, query string) []domain.Service
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
