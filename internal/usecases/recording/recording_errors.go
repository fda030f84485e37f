package recording

import (
	"errors"
	"fmt"
)

// Erros específicos para o registro de semanas
var (
	// Erros de endereçamento
	ErrUnknownMonth     = errors.New("mês inexistente")
	ErrInvalidWeekIndex = errors.New("semana deve estar entre 0 e 3")
	ErrInvalidFilter    = errors.New("filtro de completude deve ter o formato min-max")

	// Erros de commit
	ErrValidationFailed = errors.New("semana com inconsistências de validação")
	ErrSameWeek         = errors.New("não é possível duplicar na mesma semana")
	ErrWeekHasData      = errors.New("a semana destino já tem dados")

	// Erros de desfazer
	ErrNothingToUndo = errors.New("não há alterações para desfazer")
	ErrUndoExpired   = errors.New("o prazo para desfazer expirou")

	// Erros de backup
	ErrInvalidBackup    = errors.New("o arquivo não tem o formato correto de backup")
	ErrStorageOperation = errors.New("erro ao acessar o armazenamento")
)

// RecordError é um erro com contexto adicional sobre a semana envolvida
type RecordError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Month   string // Mês envolvido (quando aplicável)
	Week    *int   // Semana envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RecordError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError cria um novo RecordError
func NewRecordError(err error, code string, details string) *RecordError {
	return &RecordError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewWeekError cria um novo RecordError com o mês e a semana envolvidos
func NewWeekError(err error, code string, month string, week int, details string) *RecordError {
	return &RecordError{
		Err:     err,
		Code:    code,
		Month:   month,
		Week:    &week,
		Details: details,
	}
}
