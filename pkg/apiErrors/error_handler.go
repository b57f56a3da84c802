package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrMethodNotAllowed    = "VAL_004" // Método HTTP não suportado pela rota

	// Erros de recurso (3000-3999)
	ErrResourceNotFound = "RES_001" // Registro não encontrado
	ErrResourceInUse    = "RES_002" // Registro referenciado por outros
	ErrResourceConflict = "RES_003" // Conflito com o estado atual

	// Erros de venda (4000-4999)
	ErrInsufficientStock = "SAL_001" // Estoque insuficiente

	// Erros do servidor (5000-5999)
	ErrInternalServer     = "SRV_001" // Erro interno do servidor
	ErrServiceUnavailable = "SRV_004" // Falha temporária, tente novamente
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrResourceInUse:       http.StatusConflict,
	ErrResourceConflict:    http.StatusConflict,
	ErrInsufficientStock:   http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrServiceUnavailable:  http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusCode retorna o status HTTP do código; desconhecidos viram 500
func StatusCode(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusCode(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}
