package datastore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Client HTTP транспорт до хранилища записей.
// Повторов нет: любая ошибка сразу возвращается вызывающему.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента хранилища
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// do выполняет запрос и декодирует ответ в dst (если dst != nil).
// notFound возвращается на 404.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dst interface{}, notFound error) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Datastore unavailable: %s %s: %v", method, path, err)
		return fmt.Errorf("%w: %s %s: %v", domain.ErrUpstreamUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound && notFound != nil:
		return fmt.Errorf("%w: %s %s", notFound, method, path)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		c.log.Warn("Datastore rejected %s %s: status=%d, message=%s", method, path, resp.StatusCode, errResp.text())
		return fmt.Errorf("%w: %s", domain.ErrUpstreamRejected, errResp.text())
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.log.Error("Datastore failure: %s %s, status=%d", method, path, resp.StatusCode)
		return fmt.Errorf("%w: datastore status %d: %s", domain.ErrUpstreamFailure, resp.StatusCode, string(raw))
	}

	if dst == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w: failed to decode response: %v", domain.ErrUpstreamFailure, ErrInvalidResponse, err)
	}
	return nil
}
