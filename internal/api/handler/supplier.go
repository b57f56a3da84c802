package handler

import (
	"net/http"

	"github.com/vfg2006/sales-api/internal/domain"
	"github.com/vfg2006/sales-api/internal/usecases/cataloging"
)

func ListSuppliers(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suppliers, err := service.ListSuppliers(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, suppliers)
	})
}

func GetSupplier(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		supplier, err := service.GetSupplier(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, supplier)
	})
}

func CreateSupplier(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var supplier domain.Supplier
		if !decodeJSON(w, r, &supplier) {
			return
		}
		supplier.ID = 0

		created, err := service.CreateSupplier(r.Context(), &supplier)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	})
}

func UpdateSupplier(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var supplier domain.Supplier
		if !decodeJSON(w, r, &supplier) {
			return
		}
		supplier.ID = id

		if err := service.UpdateSupplier(r.Context(), &supplier); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// DeleteSupplier responde 409 quando ainda há produtos do fornecedor
func DeleteSupplier(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteSupplier(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
