// Package log encapsula o logrus com ID de correlação por requisição
package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
}

type contextKey string

// CorrelationIDKey guarda o ID de correlação da requisição no contexto
const CorrelationIDKey contextKey = "correlation_id"

// CorrelationIDHeader é aceito na entrada e devolvido na resposta
const CorrelationIDHeader = "X-Correlation-ID"

const correlationIDField = "correlation_id"

type logger struct {
	entry *logrus.Entry
	dev   func() bool
}

// L é o logger global usado pelos pacotes da aplicação
var L Logger = New(logrus.StandardLogger())

// New cria um Logger sobre o logrus informado; APP_ENV é lido a cada campo adicionado
func New(base *logrus.Logger) Logger {
	return &logger{entry: logrus.NewEntry(base), dev: IsDevelopment}
}

// IsDevelopment considera desenvolvimento quando APP_ENV está vazio, development ou dev
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	default:
		return false
	}
}

// devFields sobrevivem ao filtro do formato conciso de desenvolvimento
var devFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"month":            true,
	"week":             true,
	"issues":           true,
}

func isRelevantField(key string) bool {
	return devFields[key] ||
		strings.HasPrefix(key, "user_") ||
		strings.HasPrefix(key, "backup_") ||
		strings.HasPrefix(key, "sync_")
}

func (l *logger) with(entry *logrus.Entry) Logger {
	return &logger{entry: entry, dev: l.dev}
}

func (l *logger) WithField(key string, value any) Logger {
	if l.dev() && !isRelevantField(key) {
		return l
	}
	return l.with(l.entry.WithField(key, value))
}

func (l *logger) WithFields(fields Fields) Logger {
	if !l.dev() {
		return l.with(l.entry.WithFields(logrus.Fields(fields)))
	}

	relevant := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if isRelevantField(k) {
			relevant[k] = v
		}
	}
	if len(relevant) == 0 {
		return l
	}
	return l.with(l.entry.WithFields(relevant))
}

func (l *logger) WithError(err error) Logger {
	return l.with(l.entry.WithError(err))
}

func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return l.WithField(correlationIDField, correlationID)
	}
	return l
}

func (l *logger) Debug(args ...any)                 { l.entry.Debug(args...) }
func (l *logger) Info(args ...any)                  { l.entry.Info(args...) }
func (l *logger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *logger) Warn(args ...any)                  { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...any)                 { l.entry.Error(args...) }
func (l *logger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

// WithCorrelationID reaproveita o ID recebido quando ele é um UUID válido, senão gera outro
func WithCorrelationID(ctx context.Context, incoming string) (context.Context, string) {
	correlationID := incoming
	if _, err := uuid.Parse(incoming); err != nil {
		correlationID = uuid.New().String()
	}
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext retorna o logger global com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
