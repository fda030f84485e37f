package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/arizon-dashboard-api/internal/config"
	"github.com/vfg2006/arizon-dashboard-api/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		AutoBackupSync: config.AutoBackupSync{
			CronSchedule: "0 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestRunBackup(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockBackupRunner(ctrl)
	service := NewAutoBackupService(runner, newTestConfig(true))

	tests := []struct {
		name     string
		force    bool
		setup    func()
		wantErr  bool
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name:  "Backup gravado com sucesso",
			force: true,
			setup: func() {
				runner.EXPECT().AutoBackup(gomock.Any(), true).Return(true, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, true, status["last_backup_written"])
				assert.Equal(t, "", status["last_error"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
		{
			name:  "Backup ignorado dentro do intervalo",
			force: false,
			setup: func() {
				runner.EXPECT().AutoBackup(gomock.Any(), false).Return(false, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, false, status["last_backup_written"])
			},
		},
		{
			name:  "Falha ao gravar backup",
			force: true,
			setup: func() {
				runner.EXPECT().AutoBackup(gomock.Any(), true).Return(false, errors.New("disco cheio"))
			},
			wantErr: true,
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, "disco cheio", status["last_error"])
				assert.Equal(t, false, status["sync_running"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.RunBackup(context.Background(), tt.force)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			tt.validate(t, service.GetStatus())
		})
	}
}

func TestTriggerManualRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockBackupRunner(ctrl)
	service := NewAutoBackupService(runner, newTestConfig(false))

	release := make(chan struct{})
	started := make(chan struct{})
	runner.EXPECT().AutoBackup(gomock.Any(), true).DoAndReturn(func(ctx context.Context, force bool) (bool, error) {
		close(started)
		<-release
		return true, nil
	})

	require.True(t, service.TriggerManualRun())
	<-started

	assert.True(t, service.IsRunning())
	assert.False(t, service.TriggerManualRun(), "segunda solicitação deve ser ignorada")

	close(release)
	assert.Eventually(t, func() bool { return !service.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestStart(t *testing.T) {
	t.Run("Cron desabilitada não agenda tarefas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewAutoBackupService(mocks.NewMockBackupRunner(ctrl), newTestConfig(false))

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cfg := newTestConfig(true)
		cfg.AutoBackupSync.CronSchedule = "não é cron"
		service := NewAutoBackupService(mocks.NewMockBackupRunner(ctrl), cfg)

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Cron habilitada agenda o backup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewAutoBackupService(mocks.NewMockBackupRunner(ctrl), newTestConfig(true))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)

		status := service.GetStatus()
		assert.Equal(t, true, status["sync_enabled"])
		assert.Equal(t, "0 * * * *", status["sync_cron"])
	})
}
