package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

const (
	msgInternalError       = "внутренняя ошибка сервера"
	msgUpstreamUnavailable = "сервис хранения временно недоступен"
	msgUpstreamFailure     = "ошибка сервиса хранения"
	msgUpstreamRejected    = "запрос отклонен сервисом хранения"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON пишет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку с произвольным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondNoContent 204 без тела
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondUpstreamError отвечает на ошибки внешних сервисов: недоступен 503, 5xx 502, отклонил 400.
// Возвращает false, если ошибка не относится к внешним сервисам.
func RespondUpstreamError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		RespondError(w, http.StatusServiceUnavailable, msgUpstreamUnavailable)
	case errors.Is(err, domain.ErrUpstreamFailure):
		RespondError(w, http.StatusBadGateway, msgUpstreamFailure)
	case errors.Is(err, domain.ErrUpstreamRejected):
		RespondBadRequest(w, msgUpstreamRejected)
	default:
		return false
	}
	return true
}

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
