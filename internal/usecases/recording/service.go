// Package recording é a raiz do estado do painel: grava semanas validadas, mantém o
// desfazer e recalcula os consolidados mensal e anual após cada alteração.
package recording

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/vfg2006/arizon-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/consolidating"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/validating"
	"github.com/vfg2006/arizon-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/arizon-dashboard-api/pkg/log"
)

const (
	DefaultUndoTTL            = 30 * time.Second
	DefaultAutoBackupInterval = time.Hour
)

type Recorder interface {
	Validate(candidate domain.Candidate) []domain.ValidationIssue
	SubmitWeek(ctx context.Context, month string, week int, candidate domain.Candidate) (*domain.WeekRecord, []domain.ValidationIssue, error)
	Commit(ctx context.Context, month string, week int, candidate domain.Candidate) (*domain.WeekRecord, error)
	DuplicateWeek(ctx context.Context, source, target domain.WeekSlot, overwrite bool) (*domain.WeekRecord, error)
	UpdateMeta(ctx context.Context, month string, meta domain.MonthMeta) (*domain.MonthBucket, error)

	Month(name string) (*domain.MonthBucket, error)
	Months() []*domain.MonthBucket
	Consolidated(name string) (*domain.Consolidated, error)
	Year() *domain.Consolidated

	Undo(ctx context.Context) (domain.WeekSlot, *domain.WeekRecord, error)
	UndoStatus() domain.UndoStatus

	Export(ctx context.Context) (*domain.BackupPayload, error)
	Import(ctx context.Context, data []byte) error
	AutoBackup(ctx context.Context, force bool) (bool, error)
	RestoreAutoBackup(ctx context.Context) (bool, error)
	LastBackupAt(ctx context.Context) (*time.Time, error)

	Progress() domain.DataProgress
	PendingWeeks() int
	WeekSummaries(filter domain.WeekFilter) ([]domain.WeekSummary, error)
}

type Config struct {
	UndoTTL            time.Duration
	AutoBackupInterval time.Duration
}

type Option func(*Service)

// WithClock substitui o relógio usado no desfazer e nos backups
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service serializa todos os métodos públicos: existe um único escritor lógico por vez
type Service struct {
	mu        sync.Mutex
	store     *domain.RecordStore
	validator validating.Validator
	kv        storage.KeyValueStore
	config    Config
	undo      *domain.UndoSnapshot
	now       func() time.Time
}

func NewService(kv storage.KeyValueStore, validator validating.Validator, cfg Config, opts ...Option) Recorder {
	if cfg.UndoTTL <= 0 {
		cfg.UndoTTL = DefaultUndoTTL
	}
	if cfg.AutoBackupInterval <= 0 {
		cfg.AutoBackupInterval = DefaultAutoBackupInterval
	}

	s := &Service{
		store:     domain.NewRecordStore(),
		validator: validator,
		kv:        kv,
		config:    cfg,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.recomputeAll()
	return s
}

func (s *Service) Validate(candidate domain.Candidate) []domain.ValidationIssue {
	return s.validator.Validate(candidate)
}

func (s *Service) SubmitWeek(ctx context.Context, month string, week int, candidate domain.Candidate) (*domain.WeekRecord, []domain.ValidationIssue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, err := s.slot(month, week)
	if err != nil {
		return nil, nil, err
	}

	issues := s.validator.Validate(candidate)
	if len(issues) > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"month":  month,
			"week":   week,
			"issues": len(issues),
		}).Info("SubmitWeek: semana rejeitada pela validação")

		return nil, issues, NewWeekError(ErrValidationFailed, apiErrors.ErrValidationFailed, month, week,
			fmt.Sprintf("%d erro(s) de validação", len(issues)))
	}

	record := s.commit(ctx, bucket, week, candidate)
	return record, issues, nil
}

func (s *Service) Commit(ctx context.Context, month string, week int, candidate domain.Candidate) (*domain.WeekRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, err := s.slot(month, week)
	if err != nil {
		return nil, err
	}

	return s.commit(ctx, bucket, week, candidate), nil
}

// commit mescla os campos informados na semana existente. Sobrescrever uma semana com
// dados captura o valor anterior para desfazer.
func (s *Service) commit(ctx context.Context, bucket *domain.MonthBucket, week int, candidate domain.Candidate) *domain.WeekRecord {
	prior := bucket.Weeks[week]
	if !prior.IsEmpty() {
		s.undo = &domain.UndoSnapshot{
			Month:      bucket.Name,
			Week:       week,
			Prior:      prior.Clone(),
			CapturedAt: s.now(),
		}
	}

	updated := prior.Clone()
	updated.Merge(candidate.ToWeekRecord())
	bucket.Weeks[week] = updated

	s.recompute(bucket)

	log.ForContext(ctx).WithFields(log.Fields{
		"month":       bucket.Name,
		"week":        week,
		"overwritten": !prior.IsEmpty(),
	}).Info("Commit: semana gravada")

	s.autoBackup(ctx, false)

	record := updated.Clone()
	return &record
}

func (s *Service) DuplicateWeek(ctx context.Context, source, target domain.WeekSlot, overwrite bool) (*domain.WeekRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, err := s.slot(source.Month, source.Week)
	if err != nil {
		return nil, err
	}
	dst, err := s.slot(target.Month, target.Week)
	if err != nil {
		return nil, err
	}

	if source == target {
		return nil, NewWeekError(ErrSameWeek, apiErrors.ErrSameWeek, target.Month, target.Week, "")
	}
	if !dst.Weeks[target.Week].IsEmpty() && !overwrite {
		return nil, NewWeekError(ErrWeekHasData, apiErrors.ErrWeekHasData, target.Month, target.Week,
			"use overwrite para sobrescrever")
	}

	dst.Weeks[target.Week] = src.Weeks[source.Week].Clone()
	s.recompute(dst)

	log.ForContext(ctx).WithFields(log.Fields{
		"month":        target.Month,
		"week":         target.Week,
		"source_month": source.Month,
		"source_week":  source.Week,
	}).Info("DuplicateWeek: semana duplicada")

	s.autoBackup(ctx, false)

	record := dst.Weeks[target.Week].Clone()
	return &record, nil
}

func (s *Service) UpdateMeta(ctx context.Context, month string, meta domain.MonthMeta) (*domain.MonthBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.store.Month(month)
	if !ok {
		return nil, NewRecordError(ErrUnknownMonth, apiErrors.ErrUnknownMonth, month)
	}

	bucket.Meta = meta.Clone()
	s.recompute(bucket)

	log.ForContext(ctx).WithField("month", month).Info("UpdateMeta: meta do mês atualizado")

	s.autoBackup(ctx, false)
	return bucket.Clone(), nil
}

func (s *Service) Month(name string) (*domain.MonthBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.store.Month(name)
	if !ok {
		return nil, NewRecordError(ErrUnknownMonth, apiErrors.ErrUnknownMonth, name)
	}
	return bucket.Clone(), nil
}

func (s *Service) Months() []*domain.MonthBucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	months := make([]*domain.MonthBucket, 0, len(domain.MonthLabels))
	for _, bucket := range s.store.Months() {
		months = append(months, bucket.Clone())
	}
	return months
}

func (s *Service) Consolidated(name string) (*domain.Consolidated, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.store.Month(name)
	if !ok {
		return nil, NewRecordError(ErrUnknownMonth, apiErrors.ErrUnknownMonth, name)
	}
	c := *bucket.Consolidated
	return &c, nil
}

func (s *Service) Year() *domain.Consolidated {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *s.store.Year
	return &c
}

func (s *Service) Undo(ctx context.Context) (domain.WeekSlot, *domain.WeekRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.undo == nil {
		return domain.WeekSlot{}, nil, NewRecordError(ErrNothingToUndo, apiErrors.ErrNothingToUndo, "")
	}

	snapshot := s.undo
	slot := domain.WeekSlot{Month: snapshot.Month, Week: snapshot.Week}
	if s.expired(snapshot) {
		s.undo = nil
		return slot, nil, NewWeekError(ErrUndoExpired, apiErrors.ErrUndoExpired, snapshot.Month, snapshot.Week, "")
	}

	bucket, _ := s.store.Month(snapshot.Month)
	bucket.Weeks[snapshot.Week] = snapshot.Prior.Clone()
	s.undo = nil
	s.recompute(bucket)

	log.ForContext(ctx).WithFields(log.Fields{
		"month": snapshot.Month,
		"week":  snapshot.Week,
	}).Info("Undo: alteração desfeita")

	s.autoBackup(ctx, false)

	record := bucket.Weeks[snapshot.Week].Clone()
	return slot, &record, nil
}

func (s *Service) UndoStatus() domain.UndoStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.undo == nil {
		return domain.UndoStatus{}
	}
	if s.expired(s.undo) {
		s.undo = nil
		return domain.UndoStatus{}
	}

	week := s.undo.Week
	expiresAt := s.undo.CapturedAt.Add(s.config.UndoTTL)
	return domain.UndoStatus{
		Available:        true,
		Month:            s.undo.Month,
		Week:             &week,
		ExpiresAt:        &expiresAt,
		RemainingSeconds: int(math.Ceil(expiresAt.Sub(s.now()).Seconds())),
	}
}

func (s *Service) expired(snapshot *domain.UndoSnapshot) bool {
	return !s.now().Before(snapshot.CapturedAt.Add(s.config.UndoTTL))
}

func (s *Service) slot(month string, week int) (*domain.MonthBucket, error) {
	bucket, ok := s.store.Month(month)
	if !ok {
		return nil, NewWeekError(ErrUnknownMonth, apiErrors.ErrUnknownMonth, month, week, month)
	}
	if week < 0 || week >= domain.WeeksPerMonth {
		return nil, NewWeekError(ErrInvalidWeekIndex, apiErrors.ErrInvalidWeek, month, week, fmt.Sprintf("semana %d", week))
	}
	return bucket, nil
}

// recompute refaz o mês e depois o ano, nessa ordem
func (s *Service) recompute(bucket *domain.MonthBucket) {
	bucket.Consolidated = consolidating.Month(bucket)
	s.store.Year = consolidating.Year(s.store.Months())
}

func (s *Service) recomputeAll() {
	for _, bucket := range s.store.Months() {
		bucket.Consolidated = consolidating.Month(bucket)
	}
	s.store.Year = consolidating.Year(s.store.Months())
}
