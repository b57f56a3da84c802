package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-api/internal/domain"
	"github.com/vfg2006/sales-api/pkg/apiErrors"
	"github.com/vfg2006/sales-api/pkg/log"
	"github.com/vfg2006/sales-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeJSON escreve 400 e retorna false quando o corpo não pode ser lido
func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Corpo da requisição é obrigatório", nil)
		return false
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o corpo da requisição", nil)
		return false
	}

	if len(bytes.TrimSpace(body)) == 0 {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Corpo da requisição é obrigatório", nil)
		return false
	}

	// Unmarshal recusa bytes restantes após o primeiro valor JSON
	if err := json.Unmarshal(body, dest); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}

	return true
}

// pathID lê o parâmetro :id da rota; escreve 400 quando não é um inteiro positivo
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, ok := utils.ParseID(raw)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", map[string]string{"id": raw})
		return 0, false
	}

	return id, true
}

// writeServiceError traduz a categoria do erro no código de API correspondente
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Error(), map[string]string{
				"field": validationErr.Field,
			})
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case domain.KindNotFound:
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case domain.KindConflict:
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			apiErrors.WriteError(w, apiErrors.ErrInsufficientStock, err.Error(), nil)
		case errors.Is(err, domain.ErrInUse):
			apiErrors.WriteError(w, apiErrors.ErrResourceInUse, err.Error(), nil)
		default:
			apiErrors.WriteError(w, apiErrors.ErrResourceConflict, err.Error(), nil)
		}

	case domain.KindTransient:
		log.ForContext(r.Context()).WithError(err).Warn("Falha temporária do banco de dados")
		apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Serviço temporariamente indisponível, tente novamente", nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", map[string]string{
			"correlation_id": log.GetCorrelationID(r.Context()),
		})
	}
}
