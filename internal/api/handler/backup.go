package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/arizon-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/arizon-dashboard-api/pkg/log"
)

func ExportBackup(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := service.Export(r.Context())
		if err != nil {
			handleServiceError(w, err, "Erro ao exportar backup")
			return
		}

		// arizon-backup-2006-01-02.json
		filename := fmt.Sprintf("arizon-backup-%s.json", payload.ExportDate[:10])
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		writeJSON(w, http.StatusOK, payload)
	}
}

func ImportBackup(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("ImportBackup: falha ao ler o corpo")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o arquivo de backup", nil)
			return
		}

		if err := service.Import(r.Context(), data); err != nil {
			handleServiceError(w, err, "Erro ao importar backup")
			return
		}

		auditLog(r).WithField("backup_size", len(data)).Info("ImportBackup: backup importado")

		writeJSON(w, http.StatusOK, map[string]any{
			"message":  "Backup importado com sucesso",
			"progress": service.Progress(),
		})
	}
}
