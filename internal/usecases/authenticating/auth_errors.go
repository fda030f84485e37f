package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/arizon-dashboard-api/pkg/apiErrors"
)

var (
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrNotConfigured       = errors.New("operador não configurado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
)

// errorCodes associa cada erro de autenticação ao código devolvido pela API
var errorCodes = map[error]string{
	ErrInvalidCredentials:  apiErrors.ErrInvalidCredentials,
	ErrInvalidToken:        apiErrors.ErrInvalidToken,
	ErrExpiredToken:        apiErrors.ErrExpiredToken,
	ErrNotConfigured:       apiErrors.ErrInternalServer,
	ErrMissingRequiredData: apiErrors.ErrMissingRequiredData,
}

// AuthError carrega o código da API e o email informado na tentativa
type AuthError struct {
	Err     error
	Code    string
	Email   string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// newAuthError usa o código do erro base, ou SRV_001 para erros fora da tabela
func newAuthError(err error, details string) *AuthError {
	code, ok := errorCodes[err]
	if !ok {
		code = apiErrors.ErrInternalServer
	}
	return &AuthError{Err: err, Code: code, Details: details}
}

func (e *AuthError) withEmail(email string) *AuthError {
	e.Email = email
	return e
}

// IsCredentialsError verifica se o erro está relacionado às credenciais
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsTokenError verifica se o erro está relacionado ao token
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}
