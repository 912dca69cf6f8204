package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AppointEase/internal/availability"
	"github.com/m04kA/AppointEase/internal/domain"
	getAvailableSlots "github.com/m04kA/AppointEase/internal/usecase/get_available_slots"
	"github.com/m04kA/AppointEase/pkg/logger"
)

type stubUseCase struct {
	gotReq *getAvailableSlots.Request
	resp   *getAvailableSlots.Response
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

func serve(uc GetAvailableSlotsUseCase, target string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/services/{serviceId}/available-slots", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	date := time.Date(2026, 6, 15, 0, 0, 0, 0, time.Local)
	slots, err := availability.GenerateSlots(date, 60, "haircut")
	require.NoError(t, err)
	slots[2].Available = false

	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Date:    date,
		Service: domain.Service{ID: "haircut", Name: "Haircut & Styling", DurationMinutes: 60},
		Slots:   slots,
	}}

	rec := serve(uc, "/services/haircut/available-slots?date=2026-06-15")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "haircut", uc.gotReq.ServiceID)
	assert.True(t, uc.gotReq.Date.Equal(date))

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-06-15", body.Date)
	assert.Equal(t, 14, body.AvailableCount)
	require.Len(t, body.Slots, 15)
	assert.Equal(t, "09:00", body.Slots[0].Label)
	assert.Equal(t, "0900-haircut", body.Slots[0].ID)
	assert.Equal(t, 60, body.Slots[0].DurationMinutes)
	assert.False(t, body.Slots[2].Available)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"missing date", "/services/haircut/available-slots", nil, http.StatusBadRequest},
		{"bad date", "/services/haircut/available-slots?date=15.06.2026", nil, http.StatusBadRequest},
		{"unknown service", "/services/tattoo/available-slots?date=2026-06-15", getAvailableSlots.ErrServiceNotFound, http.StatusNotFound},
		{"invalid duration", "/services/broken/available-slots?date=2026-06-15", getAvailableSlots.ErrInvalidDuration, http.StatusBadRequest},
		{"internal", "/services/haircut/available-slots?date=2026-06-15", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
