package get_appointments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-GroomingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListFrom(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.AppointmentListResponse)
	return resp, args.Error(1)
}

func TestHandle(t *testing.T) {
	t.Run("defaults to today", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ListFrom", mock.Anything, mock.MatchedBy(func(req *models.ListAppointmentsRequest) bool {
			return req.From == nil
		})).Return(&models.AppointmentListResponse{Appointments: []models.AppointmentResponse{{ID: "a1"}}}, nil).Once()

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"a1"`)
		svc.AssertExpectations(t)
	})

	t.Run("explicit from date", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ListFrom", mock.Anything, mock.MatchedBy(func(req *models.ListAppointmentsRequest) bool {
			return req.From != nil && req.From.Equal(time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC))
		})).Return(&models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil).Once()

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?from=2026-03-12", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc := &mockService{}

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?from=12/03/2026", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "ListFrom", mock.Anything, mock.Anything)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &mockService{}
		svc.On("ListFrom", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
