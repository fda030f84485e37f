// Package scheduler contém os serviços de agendamento do painel
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/arizon-dashboard-api/internal/config"
)

//go:generate mockgen -source=auto_backup.go -destination=mocks/mock_backup_runner.go -package=mocks

// BackupRunner grava o backup automático; force ignora o intervalo mínimo
type BackupRunner interface {
	AutoBackup(ctx context.Context, force bool) (bool, error)
}

type AutoBackupConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type AutoBackupService struct {
	scheduler           *gocron.Scheduler
	runner              BackupRunner
	config              AutoBackupConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastBackupWritten   bool
	lastError           string
}

func NewAutoBackupService(runner BackupRunner, cfg *config.Config) *AutoBackupService {
	backupConfig := AutoBackupConfig{
		CronSchedule: cfg.AutoBackupSync.CronSchedule, // Default: a cada hora cheia
		SyncEnabled:  cfg.AutoBackupSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": backupConfig.CronSchedule,
	}).Info("Configuração do agendador de backup automático carregada")

	return &AutoBackupService{
		scheduler: scheduler,
		runner:    runner,
		config:    backupConfig,
	}
}

func (s *AutoBackupService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de backup automático desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de backup automático")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunBackup(ctx, false); err != nil {
			logrus.WithError(err).Error("Erro no backup automático agendado")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar backup automático: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de backup automático")
		s.scheduler.Stop()
	}()

	return nil
}

// RunBackup executa uma rodada de backup; rodadas concorrentes são ignoradas
func (s *AutoBackupService) RunBackup(ctx context.Context, force bool) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Backup automático já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	written, err := s.runner.AutoBackup(ctx, force)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastBackupWritten = written
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"forced":  force,
		"written": written,
	}).Info("Rodada de backup automático concluída")
	return nil
}

// TriggerManualRun inicia um backup forçado em segundo plano.
// Retorna false quando já existe uma rodada em andamento.
func (s *AutoBackupService) TriggerManualRun() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Backup automático já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando backup manual")
	go func() {
		if err := s.RunBackup(context.Background(), true); err != nil {
			logrus.WithError(err).Error("Erro no backup manual")
		}
	}()
	return true
}

// IsRunning informa se há uma rodada de backup em andamento
func (s *AutoBackupService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *AutoBackupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_backup_written":    s.lastBackupWritten,
		"last_error":             s.lastError,
	}
}
