package booking_session

import (
	"context"
	"time"

	"github.com/m04kA/AppointEase/internal/domain"
	"github.com/m04kA/AppointEase/internal/service/session"
	"github.com/m04kA/AppointEase/internal/usecase/create_booking"
	"github.com/m04kA/AppointEase/pkg/types"
)

type SessionService interface {
	Create(ctx context.Context) *session.Draft
	Get(ctx context.Context, id string) (*session.Draft, error)
	Delete(ctx context.Context, id string) error
	SelectService(ctx context.Context, id, serviceID string) (*session.Draft, error)
	SelectDate(ctx context.Context, id string, date time.Time) (*session.Draft, error)
	SelectSlot(ctx context.Context, id string, startTime types.TimeString) (*session.Draft, error)
	ClearSlot(ctx context.Context, id string) (*session.Draft, error)
	Confirm(ctx context.Context, id string, customer domain.CustomerDetails) (*create_booking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
