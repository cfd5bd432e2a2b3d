package create_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubDirectory struct{}

func (stubDirectory) GetEmployee(_ context.Context, id string) (*domain.Employee, error) {
	if id == "A" {
		return &domain.Employee{ID: "A", Name: "Анна"}, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func newHandler() *Handler {
	svc := availability.NewService(memory.NewAvailabilityRepository(), stubDirectory{}, nopLogger{})
	return NewHandler(svc, nopLogger{})
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/availability", strings.NewReader(body)))
	return rec
}

func TestHandler_CreatesOpenWindow(t *testing.T) {
	rec := post(newHandler(), `{"employeeId":"A","date":"2024-06-10","startTime":"09:00","endTime":"13:00"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, "OPEN", body.Status)
	assert.Equal(t, "2024-06-10", body.Date)
	assert.Equal(t, "13:00", body.EndTime)
}

func TestHandler_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"bad json", `{"employeeId":`, http.StatusBadRequest},
		{"missing employee", `{"date":"2024-06-10","startTime":"09:00","endTime":"13:00"}`, http.StatusBadRequest},
		{"bad time", `{"employeeId":"A","date":"2024-06-10","startTime":"9","endTime":"13:00"}`, http.StatusBadRequest},
		{"end before start", `{"employeeId":"A","date":"2024-06-10","startTime":"13:00","endTime":"09:00"}`, http.StatusBadRequest},
		{"unknown employee", `{"employeeId":"Z","date":"2024-06-10","startTime":"09:00","endTime":"13:00"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, post(newHandler(), tt.body).Code)
		})
	}
}
