package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-api/pkg/apiErrors"
	"github.com/vfg2006/sales-api/pkg/log"
)

const CronJobTypeLowStock = "low-stock"

// CronJob é um serviço agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualRun() bool
	GetStatus() map[string]any
}

// CronJobServices indexa os serviços agendados pelo tipo usado na URL
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for t := range s {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, exists := services[cronType]
		if !exists || job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de cron job inválido. Valores aceitos: "+strings.Join(services.types(), ", "), nil)
			return
		}

		if !job.TriggerManualRun() {
			apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "Cron job já está em execução", map[string]string{
				"type": cronType,
			})
			return
		}

		log.ForContext(r.Context()).WithField("cron_type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for cronType, job := range services {
			if job == nil {
				continue
			}
			status[cronType] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
