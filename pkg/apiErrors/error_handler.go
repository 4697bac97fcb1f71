package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro para autenticação
const (
	// Erros de autenticação (1000-1999)
	ErrMissingToken          = "AUTH_001" // Cabeçalho Authorization ausente
	ErrTenantMissing         = "AUTH_002" // Token sem tenant
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de anúncio (3000-3999)
	ErrListingNotFound  = "LST_001" // Anúncio não encontrado
	ErrUnknownHack      = "LST_002" // Hack desconhecido
	ErrListingForbidden = "LST_003" // Anúncio de outro tenant

	// Erros de roteamento
	ErrRouteNotFound    = "RTE_001" // Rota inexistente
	ErrMethodNotAllowed = "RTE_002" // Método não suportado pela rota

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingToken:          http.StatusUnauthorized,
	ErrTenantMissing:         http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrListingNotFound:       http.StatusNotFound,
	ErrUnknownHack:           http.StatusBadRequest,
	ErrListingForbidden:      http.StatusNotFound,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiErr)
}

// codedError é implementado por erros de domínio que já carregam o código da API
type codedError interface {
	error
	APICode() string
	APIMessage() string
}

// FromError cria um erro de API a partir de um erro Go.
// Erros com código próprio prevalecem sobre o código padrão informado.
func FromError(err error, fallbackCode string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var coded codedError
	if errors.As(err, &coded) {
		return APIError{
			Code:    coded.APICode(),
			Message: coded.APIMessage(),
		}
	}

	return APIError{
		Code:    fallbackCode,
		Message: err.Error(),
	}
}

// WriteFromError escreve a resposta padronizada para um erro Go
func WriteFromError(w http.ResponseWriter, err error, fallbackCode string, fallbackMessage string) {
	apiErr := FromError(err, fallbackCode)
	if apiErr.Code == fallbackCode && fallbackMessage != "" {
		apiErr.Message = fallbackMessage
	}
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
