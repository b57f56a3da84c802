package handler

import (
	"net/http"

	"github.com/vfg2006/sales-api/internal/domain"
	"github.com/vfg2006/sales-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-api/internal/usecases/selling"
	"github.com/vfg2006/sales-api/pkg/apiErrors"
	"github.com/vfg2006/sales-api/pkg/utils"
)

// CreateSale registra uma venda e baixa o estoque do produto
func CreateSale(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateSaleRequest
		if !decodeJSON(w, r, &request) {
			return
		}

		sale, err := service.RecordSale(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, sale)
	})
}

func ListSales(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.ListSales(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, sales)
	})
}

func GetSale(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		sale, err := service.GetSale(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, sale)
	})
}

func DeleteSale(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteSale(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// DailySalesReport atende GET /sales/daily-report?date=YYYY-MM-DD
func DailySalesReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("date")
		if raw == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro date é obrigatório", nil)
			return
		}

		date, err := utils.ParseDate(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro date deve estar no formato YYYY-MM-DD", map[string]string{
				"date": raw,
			})
			return
		}

		report, err := service.DailyReport(r.Context(), date)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}
