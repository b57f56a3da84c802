package handler

import (
	"math"
	"net/http"

	"github.com/vfg2006/sales-api/internal/domain"
	"github.com/vfg2006/sales-api/internal/usecases/cataloging"
	"github.com/vfg2006/sales-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-api/pkg/apiErrors"
	"github.com/vfg2006/sales-api/pkg/utils"
)

func ListProducts(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, products)
	})
}

func GetProduct(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		product, err := service.GetProduct(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, product)
	})
}

func CreateProduct(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var product domain.Product
		if !decodeJSON(w, r, &product) {
			return
		}
		product.ID = 0

		created, err := service.CreateProduct(r.Context(), &product)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	})
}

func UpdateProduct(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var product domain.Product
		if !decodeJSON(w, r, &product) {
			return
		}
		product.ID = id

		if err := service.UpdateProduct(r.Context(), &product); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteProduct(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteProduct(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// LowStockProducts atende GET /products/low-stock?threshold=<int>
func LowStockProducts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("threshold")
		if raw == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro threshold é obrigatório", nil)
			return
		}

		threshold, err := utils.ParseInt(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro threshold deve ser um inteiro", map[string]string{
				"threshold": raw,
			})
			return
		}

		// product_stock é INTEGER; fora dessa faixa o resultado já é todo ou nenhum produto
		threshold = max(min(threshold, math.MaxInt32), math.MinInt32)

		products, err := service.LowStock(r.Context(), threshold)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, products)
	})
}
