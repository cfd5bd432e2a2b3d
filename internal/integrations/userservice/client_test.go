package userservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/internal/employees", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"e1","name":"Анна","email":"anna@example.com"},{"id":"e2","name":"Борис"}]`))
	})
	mux.HandleFunc("/internal/employees/e1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"e1","name":"Анна","email":"anna@example.com","phone":"+7900"}`))
	})
	mux.HandleFunc("/internal/customers/c1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"c1","name":"Вера","email":"vera@example.com"}`))
	})
	mux.HandleFunc("/internal/customers/bad", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":400,"message":"invalid id"}`))
	})
	mux.HandleFunc("/internal/customers/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/internal/customers/garbage", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_ListEmployees(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second, logger.Discard())

	employees, err := client.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, &domain.Employee{ID: "e1", Name: "Анна", Email: "anna@example.com"}, employees[0])
	assert.Equal(t, "Борис", employees[1].Name)
}

func TestClient_GetEmployee(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second, logger.Discard())

	employee, err := client.GetEmployee(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "+7900", employee.Phone)

	_, err = client.GetEmployee(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestClient_GetCustomer(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second, logger.Discard())

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "найден", id: "c1"},
		{name: "не найден", id: "nobody", wantErr: domain.ErrCustomerNotFound},
		{name: "отклонен", id: "bad", wantErr: domain.ErrUpstreamRejected},
		{name: "ошибка сервера", id: "boom", wantErr: domain.ErrUpstreamFailure},
		{name: "битый ответ", id: "garbage", wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer, err := client.GetCustomer(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "vera@example.com", customer.Email)
		})
	}
}

func TestClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second, logger.Discard()).ListEmployees(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
