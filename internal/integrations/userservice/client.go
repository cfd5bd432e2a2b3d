package userservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Client клиент для работы с UserService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListEmployees возвращает всех сотрудников
func (c *Client) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	var employees []Employee
	if err := c.get(ctx, "/internal/employees", &employees, domain.ErrEmployeeNotFound); err != nil {
		return nil, err
	}

	result := make([]*domain.Employee, 0, len(employees))
	for _, e := range employees {
		result = append(result, e.ToDomain())
	}

	c.log.Info("Fetched %d employees from UserService", len(result))
	return result, nil
}

// GetEmployee получает сотрудника по ID
func (c *Client) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	var employee Employee
	path := "/internal/employees/" + url.PathEscape(id)
	if err := c.get(ctx, path, &employee, domain.ErrEmployeeNotFound); err != nil {
		return nil, err
	}

	return employee.ToDomain(), nil
}

// GetCustomer получает клиента по ID
func (c *Client) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	var customer Customer
	path := "/internal/customers/" + url.PathEscape(id)
	if err := c.get(ctx, path, &customer, domain.ErrCustomerNotFound); err != nil {
		return nil, err
	}

	return customer.ToDomain(), nil
}

func (c *Client) get(ctx context.Context, path string, dst interface{}, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("UserService unavailable: GET %s: %v", path, err)
		return fmt.Errorf("%w: GET %s: %v", domain.ErrUpstreamUnavailable, path, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: GET %s", notFound, path)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("%w: userservice: %s", domain.ErrUpstreamRejected, errResp.Message)
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("UserService failure: GET %s, status=%d", path, resp.StatusCode)
		return fmt.Errorf("%w: userservice status %d: %s", domain.ErrUpstreamFailure, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w: failed to decode response: %v", domain.ErrUpstreamFailure, ErrInvalidResponse, err)
	}

	return nil
}
