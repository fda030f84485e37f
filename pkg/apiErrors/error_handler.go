package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken       = "AUTH_006" // Token inválido
	ErrExpiredToken       = "AUTH_007" // Token expirado

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrValidationFailed    = "VAL_004" // Semana com inconsistências

	// Erros de roteamento
	ErrRouteNotFound    = "HTTP_404" // Caminho sem rota
	ErrMethodNotAllowed = "HTTP_405" // Método não aceito no caminho

	// Erros do painel (3000-3999)
	ErrUnknownMonth    = "DASH_001" // Mês inexistente
	ErrInvalidWeek     = "DASH_002" // Semana fora de 0-3
	ErrNothingToUndo   = "DASH_003" // Nada para desfazer
	ErrUndoExpired     = "DASH_004" // Prazo para desfazer expirado
	ErrSameWeek        = "DASH_005" // Origem e destino iguais
	ErrWeekHasData     = "DASH_006" // Semana destino já tem dados
	ErrInvalidBackup   = "DASH_007" // Backup com formato inválido
	ErrUnknownCronType = "DASH_008" // Tipo de sincronização inexistente
	ErrSyncRunning     = "DASH_009" // Sincronização já em execução

	// Erros do servidor (5000-5999)
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrStorageOperation = "SRV_002" // Erro de operação no armazenamento
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrValidationFailed:    http.StatusUnprocessableEntity,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrUnknownMonth:        http.StatusNotFound,
	ErrInvalidWeek:         http.StatusBadRequest,
	ErrNothingToUndo:       http.StatusNotFound,
	ErrUndoExpired:         http.StatusGone,
	ErrSameWeek:            http.StatusBadRequest,
	ErrWeekHasData:         http.StatusConflict,
	ErrInvalidBackup:       http.StatusBadRequest,
	ErrUnknownCronType:     http.StatusBadRequest,
	ErrSyncRunning:         http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrStorageOperation:    http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
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
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
