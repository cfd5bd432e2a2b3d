package middleware

import (
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// AccessLog пишет строку лога на каждый запрос
func AccessLog(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			requestID := GetRequestID(r.Context())
			switch {
			case rec.status >= 500:
				log.Error("%s %s -> %d (%s) request_id=%s", r.Method, r.URL.Path, rec.status, duration, requestID)
			case rec.status >= 400:
				log.Warn("%s %s -> %d (%s) request_id=%s", r.Method, r.URL.Path, rec.status, duration, requestID)
			default:
				log.Info("%s %s -> %d (%s) request_id=%s", r.Method, r.URL.Path, rec.status, duration, requestID)
			}
		})
	}
}
