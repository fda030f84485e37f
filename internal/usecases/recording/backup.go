package recording

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/vfg2006/arizon-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
	"github.com/vfg2006/arizon-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/arizon-dashboard-api/pkg/log"
	"github.com/vfg2006/arizon-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ExportDateLayout é o formato ISO de data usado nos arquivos de backup
const ExportDateLayout = "2006-01-02T15:04:05.000Z07:00"

// autoBackupSlack é a tolerância descontada do intervalo entre backups automáticos
const autoBackupSlack = time.Minute

// backupFile é a forma bruta do arquivo antes da validação
type backupFile struct {
	DashboardData map[string]backupMonth `json:"dashboardData"`
	Logo          *string                `json:"logo"`
	ExportDate    string                 `json:"exportDate"`
	Version       string                 `json:"version"`
}

type backupMonth struct {
	Weeks []domain.WeekRecord `json:"weeks"`
	Meta  map[string]any      `json:"meta"`
}

func (s *Service) Export(ctx context.Context) (*domain.BackupPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := s.payload()
	if err != nil {
		return nil, err
	}

	if err := s.markBackup(ctx, s.now()); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Export: não foi possível registrar a data do backup")
	}

	log.ForContext(ctx).WithField("backup_id", payload.BackupID).Info("Export: backup gerado")
	return payload, nil
}

func (s *Service) payload() (*domain.BackupPayload, error) {
	id, err := utils.NewBackupID()
	if err != nil {
		return nil, NewRecordError(errors.Wrap(err, "gerar id do backup"), apiErrors.ErrInternalServer, "")
	}

	data := make(map[string]*domain.MonthBucket, len(domain.MonthLabels))
	for _, bucket := range s.store.Months() {
		data[bucket.Name] = bucket.Clone()
	}

	var logo *string
	if s.store.Logo != nil {
		v := *s.store.Logo
		logo = &v
	}

	return &domain.BackupPayload{
		BackupID:      id,
		DashboardData: data,
		Logo:          logo,
		ExportDate:    s.now().UTC().Format(ExportDateLayout),
		Version:       domain.BackupVersion,
	}, nil
}

// Import valida o arquivo inteiro antes de tocar no estado e então troca o armazenamento
func (s *Service) Import(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, file, err := decodeBackup(data)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Import: backup rejeitado")
		return err
	}

	s.store = store
	s.undo = nil
	s.recomputeAll()

	if t, err := utils.ParseTimestamp(file.ExportDate); err == nil {
		if err := s.markBackup(ctx, *t); err != nil {
			log.ForContext(ctx).WithError(err).Warn("Import: não foi possível registrar a data do backup")
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"backup_version": file.Version,
		"backup_date":    file.ExportDate,
		"months":         len(file.DashboardData),
	}).Info("Import: backup restaurado")

	return nil
}

func decodeBackup(data []byte) (*domain.RecordStore, *backupFile, error) {
	var file backupFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, NewRecordError(ErrInvalidBackup, apiErrors.ErrInvalidBackup, errors.Wrap(err, "decodificar backup").Error())
	}

	if file.DashboardData == nil {
		return nil, nil, NewRecordError(ErrInvalidBackup, apiErrors.ErrInvalidBackup, "dashboardData ausente")
	}
	if file.Version == "" {
		return nil, nil, NewRecordError(ErrInvalidBackup, apiErrors.ErrInvalidBackup, "version ausente")
	}

	store := domain.NewRecordStore()
	for name, raw := range file.DashboardData {
		bucket, ok := store.Month(name)
		if !ok {
			return nil, nil, NewRecordError(ErrInvalidBackup, apiErrors.ErrInvalidBackup, fmt.Sprintf("mês desconhecido: %s", name))
		}
		if len(raw.Weeks) > domain.WeeksPerMonth {
			return nil, nil, NewRecordError(ErrInvalidBackup, apiErrors.ErrInvalidBackup,
				fmt.Sprintf("%s tem %d semanas", name, len(raw.Weeks)))
		}

		for i, week := range raw.Weeks {
			if week.Values == nil {
				week = domain.NewWeekRecord()
			}
			bucket.Weeks[i] = week
		}

		meta, err := decodeMeta(raw.Meta)
		if err != nil {
			return nil, nil, NewRecordError(ErrInvalidBackup, apiErrors.ErrInvalidBackup,
				errors.Wrapf(err, "meta de %s", name).Error())
		}
		bucket.Meta = meta
	}

	if file.Logo != nil {
		v := *file.Logo
		store.Logo = &v
	}

	return store, &file, nil
}

func decodeMeta(raw map[string]any) (domain.MonthMeta, error) {
	var meta domain.MonthMeta
	if len(raw) == 0 {
		return meta, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &meta,
	})
	if err != nil {
		return meta, err
	}
	if err := decoder.Decode(raw); err != nil {
		return meta, err
	}
	return meta, nil
}

// AutoBackup grava o backup automático quando o último tem mais que o intervalo configurado.
// force ignora o intervalo.
func (s *Service) AutoBackup(ctx context.Context, force bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.autoBackupLocked(ctx, force)
}

// autoBackup é chamado após cada alteração; falhas são apenas registradas
func (s *Service) autoBackup(ctx context.Context, force bool) {
	if _, err := s.autoBackupLocked(ctx, force); err != nil {
		log.ForContext(ctx).WithError(err).Error("AutoBackup: falha ao gravar backup automático")
	}
}

func (s *Service) autoBackupLocked(ctx context.Context, force bool) (bool, error) {
	if s.kv == nil {
		return false, nil
	}

	now := s.now()
	if !force {
		last, err := s.lastBackup(ctx)
		if err != nil {
			return false, err
		}
		if last != nil && now.Sub(*last) < s.config.AutoBackupInterval-min(autoBackupSlack, s.config.AutoBackupInterval/2) {
			return false, nil
		}
	}

	payload, err := s.payload()
	if err != nil {
		return false, err
	}
	payload.AutoBackup = true

	data, err := json.Marshal(payload)
	if err != nil {
		return false, NewRecordError(errors.Wrap(err, "serializar backup automático"), apiErrors.ErrInternalServer, "")
	}

	if err := s.kv.Set(ctx, storage.AutoBackupKey, data); err != nil {
		return false, NewRecordError(ErrStorageOperation, apiErrors.ErrStorageOperation, errors.Wrap(err, storage.AutoBackupKey).Error())
	}
	if err := s.markBackup(ctx, now); err != nil {
		return false, err
	}

	log.ForContext(ctx).WithField("backup_id", payload.BackupID).Info("AutoBackup: backup automático gravado")
	return true, nil
}

// RestoreAutoBackup carrega o backup automático, se existir
func (s *Service) RestoreAutoBackup(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv == nil {
		return false, nil
	}

	data, err := s.kv.Get(ctx, storage.AutoBackupKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, NewRecordError(ErrStorageOperation, apiErrors.ErrStorageOperation, errors.Wrap(err, storage.AutoBackupKey).Error())
	}

	store, file, err := decodeBackup(data)
	if err != nil {
		return false, err
	}

	s.store = store
	s.undo = nil
	s.recomputeAll()

	log.ForContext(ctx).WithField("backup_date", file.ExportDate).Info("RestoreAutoBackup: backup automático restaurado")
	return true, nil
}

func (s *Service) LastBackupAt(ctx context.Context) (*time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastBackup(ctx)
}

func (s *Service) lastBackup(ctx context.Context) (*time.Time, error) {
	if s.kv == nil {
		return nil, nil
	}

	data, err := s.kv.Get(ctx, storage.LastBackupDateKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, NewRecordError(ErrStorageOperation, apiErrors.ErrStorageOperation, errors.Wrap(err, storage.LastBackupDateKey).Error())
	}

	t, err := utils.ParseTimestamp(string(data))
	if err != nil {
		// data ilegível conta como nunca feito
		return nil, nil
	}
	return t, nil
}

func (s *Service) markBackup(ctx context.Context, at time.Time) error {
	if s.kv == nil {
		return nil
	}

	value := []byte(at.UTC().Format(time.RFC3339Nano))
	if err := s.kv.Set(ctx, storage.LastBackupDateKey, value); err != nil {
		return NewRecordError(ErrStorageOperation, apiErrors.ErrStorageOperation, errors.Wrap(err, storage.LastBackupDateKey).Error())
	}
	return nil
}
