package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-api/pkg/apiErrors"
	"github.com/vfg2006/sales-api/pkg/log"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 200 enquanto o banco de dados estiver acessível
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Healthcheck falhou ao acessar o banco de dados")
			apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Banco de dados indisponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}
