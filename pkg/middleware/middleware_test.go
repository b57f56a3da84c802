package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-api/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/sales", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRequireJSON(t *testing.T) {
	handler := RequireJSON()(okHandler())

	tests := []struct {
		name           string
		contentType    string
		expectedStatus int
	}{
		{"JSON", "application/json", http.StatusTeapot},
		{"JSON com charset", "application/json; charset=utf-8", http.StatusTeapot},
		{"Sem cabeçalho", "", http.StatusTeapot},
		{"Formulário", "application/x-www-form-urlencoded", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sales", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, correlationID)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/customers", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
