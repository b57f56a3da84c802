package handler

import (
	"net/http"

	"github.com/vfg2006/sales-api/internal/domain"
	"github.com/vfg2006/sales-api/internal/usecases/cataloging"
)

func ListCustomers(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.ListCustomers(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, customers)
	})
}

func GetCustomer(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		customer, err := service.GetCustomer(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, customer)
	})
}

func CreateCustomer(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var customer domain.Customer
		if !decodeJSON(w, r, &customer) {
			return
		}
		customer.ID = 0

		created, err := service.CreateCustomer(r.Context(), &customer)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	})
}

func UpdateCustomer(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var customer domain.Customer
		if !decodeJSON(w, r, &customer) {
			return
		}

		// O ID da URL prevalece sobre o do corpo
		customer.ID = id

		if err := service.UpdateCustomer(r.Context(), &customer); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteCustomer(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteCustomer(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
