package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/arizon-dashboard-api/internal/api/handler"
	"github.com/vfg2006/arizon-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/arizon-dashboard-api/internal/config"
	"github.com/vfg2006/arizon-dashboard-api/internal/scheduler"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/classifying"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/arizon-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/arizon-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	recorder recording.Recorder,
	classifier classifying.Classifier,
	authenticator authenticating.Authenticator,
	autoBackupService *scheduler.AutoBackupService,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, recorder, classifier, authenticator, autoBackupService),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares global
func NewHandler(
	config *config.Config,
	recorder recording.Recorder,
	classifier classifying.Classifier,
	authenticator authenticating.Authenticator,
	autoBackupService *scheduler.AutoBackupService,
) http.Handler {
	cronJobs := handler.CronJobRegistry{}
	if autoBackupService != nil {
		cronJobs[handler.CronJobTypeBackup] = autoBackupService
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(recorder)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Months(recorder)...),
		router.WithRoutes(handler.Weeks(recorder)...),
		router.WithRoutes(handler.UndoRoutes(recorder)...),
		router.WithRoutes(handler.KPIs(recorder, classifier)...),
		router.WithRoutes(handler.Backup(recorder)...),
		router.WithRoutes(handler.CronJobs(cronJobs)...),
		router.WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", nil)
		})),
		router.WithMethodNotAllowed(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", nil)
		})),
	)

	for _, route := range rt.Routes() {
		logrus.WithFields(logrus.Fields{
			"method": route.Method,
			"path":   route.Path,
		}).Debug("Rota registrada")
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.CorsAllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
