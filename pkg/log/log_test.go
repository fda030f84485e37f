package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFields_FiltroDeDesenvolvimento(t *testing.T) {
	tests := []struct {
		name       string
		appEnv     string
		wantFields []string
		dropFields []string
	}{
		{
			name:       "Desenvolvimento mantém só campos relevantes",
			appEnv:     "development",
			wantFields: []string{"month", "backup_id", "user_email"},
			dropFields: []string{"payload_size"},
		},
		{
			name:       "Produção mantém todos os campos",
			appEnv:     "production",
			wantFields: []string{"month", "backup_id", "user_email", "payload_size"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.appEnv)
			base, hook := test.NewNullLogger()

			New(base).WithFields(Fields{
				"month":        "Marzo",
				"backup_id":    "bkp_0a1b2c3d4e",
				"user_email":   "operador@arizon.com",
				"payload_size": 2048,
			}).Info("Commit: semana gravada")

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			for _, key := range tt.wantFields {
				assert.Contains(t, entry.Data, key)
			}
			for _, key := range tt.dropFields {
				assert.NotContains(t, entry.Data, key)
			}
		})
	}
}

func TestWithContext_IDDeCorrelacao(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)

	incoming := uuid.New().String()
	ctx, id := WithCorrelationID(context.Background(), incoming)
	assert.Equal(t, incoming, id)
	assert.Equal(t, incoming, GetCorrelationID(ctx))

	New(base).WithContext(ctx).Debug("AutoBackup: verificando intervalo")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, incoming, entry.Data[correlationIDField])

	_, generated := WithCorrelationID(context.Background(), "")
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
	assert.Empty(t, GetCorrelationID(context.Background()))
}
