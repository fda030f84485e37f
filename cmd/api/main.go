package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/arizon-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/arizon-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/arizon-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/arizon-dashboard-api/internal/api"
	"github.com/vfg2006/arizon-dashboard-api/internal/config"
	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
	"github.com/vfg2006/arizon-dashboard-api/internal/scheduler"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/classifying"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/validating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var kv storage.KeyValueStore
	if cfg.Database.DSN != "" {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()
		kv = repository.NewBackupStoreRepository(pgConn)
	} else {
		kv = keyValueStore(cfg.Backup)
	}

	recorder := recording.NewService(kv, validating.NewService(), recording.Config{
		UndoTTL:            cfg.Undo.TTL,
		AutoBackupInterval: cfg.Backup.AutoInterval,
	})

	if cfg.Backup.RestoreOnStart {
		restored, err := recorder.RestoreAutoBackup(ctx)
		switch {
		case err != nil:
			logrus.WithError(err).Error("Erro ao restaurar o backup automático")
		case restored:
			logrus.Info("Backup automático restaurado com sucesso")
		default:
			logrus.Info("Nenhum backup automático encontrado para restaurar")
		}
	}

	classifier := classifying.NewClassifier(domain.DefaultKPITargets())
	authenticator := authenticating.NewService(cfg.Auth)

	autoBackupService := scheduler.NewAutoBackupService(recorder, cfg)
	if err := autoBackupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de backup automático")
	} else {
		logrus.Info("Agendador de backup automático iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		recorder,
		classifier,
		authenticator,
		autoBackupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// keyValueStore usa o arquivo configurado ou, sem caminho, um armazenamento em memória
func keyValueStore(backupConfig config.Backup) storage.KeyValueStore {
	if backupConfig.StorePath == "" {
		logrus.Warn("BACKUP_STORE_PATH não configurado, backups automáticos ficam apenas em memória")
		return storage.NewMemoryStore()
	}

	store, err := storage.NewFileStore(backupConfig.StorePath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o armazenamento de backup")
	}

	logrus.WithField("path", backupConfig.StorePath).Info("Armazenamento de backup em arquivo configurado")
	return store
}

// pgconn cria uma conexão com o banco de dados e garante a tabela de backups
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := repository.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar a tabela de backups no PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
