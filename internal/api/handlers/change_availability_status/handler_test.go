package change_availability_status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
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

func setup(t *testing.T) (*mux.Router, string) {
	repo := memory.NewAvailabilityRepository()
	created, err := repo.Create(context.Background(), &domain.Availability{
		EmployeeID: "A",
		Date:       time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:  "09:00",
		EndTime:    "13:00",
		Status:     domain.AvailabilityOpen,
	})
	require.NoError(t, err)

	router := mux.NewRouter()
	h := NewHandler(availability.NewService(repo, nil, nopLogger{}), nopLogger{})
	router.HandleFunc("/availability/{availabilityId}/status", h.Handle).Methods(http.MethodPatch)
	return router, created.ID
}

func patch(router *mux.Router, id, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/availability/"+id+"/status", strings.NewReader(body)))
	return rec
}

func TestHandler_Lifecycle(t *testing.T) {
	router, id := setup(t)

	rec := patch(router, id, `{"status":"ASSIGNED"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var body models.AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ASSIGNED", body.Status)

	// повторное назначение недопустимо
	assert.Equal(t, http.StatusConflict, patch(router, id, `{"status":"ASSIGNED"}`).Code)

	assert.Equal(t, http.StatusOK, patch(router, id, `{"status":"closed"}`).Code)
	assert.Equal(t, http.StatusConflict, patch(router, id, `{"status":"OPEN"}`).Code)
}

func TestHandler_BadRequests(t *testing.T) {
	router, id := setup(t)

	assert.Equal(t, http.StatusBadRequest, patch(router, id, `{"status":"BUSY"}`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(router, id, `{}`).Code)
	assert.Equal(t, http.StatusNotFound, patch(router, "missing", `{"status":"CLOSED"}`).Code)
}
