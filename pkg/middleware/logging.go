package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/vfg2006/sales-api/pkg/apiErrors"
	"github.com/vfg2006/sales-api/pkg/log"
)

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware gera o ID de correlação da requisição e registra início e fim
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			fields := log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
			}

			if log.IsDevelopment() {
				log.L.WithFields(fields).Info("→ Iniciando requisição")
			} else {
				log.L.WithFields(fields).
					WithFields(log.Fields{
						"remote_addr":    r.RemoteAddr,
						"query":          r.URL.RawQuery,
						"user_agent":     r.UserAgent(),
						"content_length": r.ContentLength,
					}).
					Info("Requisição iniciada")
			}

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			fields["status_code"] = lrw.statusCode
			fields["duration_ms"] = elapsed.Milliseconds()
			logger := log.L.WithFields(fields)

			switch {
			case lrw.statusCode >= 500:
				logger.Errorf("✗ Completada em %s", formatDuration(elapsed))
			case lrw.statusCode >= 400:
				logger.Warnf("✗ Completada em %s", formatDuration(elapsed))
			default:
				logger.Infof("✓ Completada em %s", formatDuration(elapsed))
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("⚠ Requisição lenta: %s %s", r.Method, r.URL.Path)
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware registra panics não tratados com a pilha e responde 500
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stack = stack[:runtime.Stack(stack, false)]

					log.ForContext(r.Context()).WithFields(log.Fields{
						"error":       err,
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(stack),
					}).Error("❌ PANIC na aplicação")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
