package recording

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
	"github.com/vfg2006/arizon-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/arizon-dashboard-api/pkg/utils"
)

func (s *Service) Progress() domain.DataProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	months := s.store.Months()
	progress := domain.DataProgress{
		Total:            len(months) * domain.WeeksPerMonth,
		MonthlyBreakdown: make(map[string]domain.MonthProgress, len(months)),
	}

	for _, bucket := range months {
		loaded := 0
		for _, week := range bucket.Weeks {
			if !week.IsEmpty() {
				loaded++
			}
		}

		progress.Loaded += loaded
		progress.MonthlyBreakdown[bucket.Name] = domain.MonthProgress{
			Loaded:     loaded,
			Total:      domain.WeeksPerMonth,
			Percentage: utils.Percentage(float64(loaded), domain.WeeksPerMonth),
		}
	}

	progress.Pending = progress.Total - progress.Loaded
	progress.Percentage = utils.Percentage(float64(progress.Loaded), float64(progress.Total))
	return progress
}

func (s *Service) PendingWeeks() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := 0
	for _, bucket := range s.store.Months() {
		for _, week := range bucket.Weeks {
			if week.IsEmpty() {
				pending++
			}
		}
	}
	return pending
}

type completenessRange struct {
	min, max float64
}

func parseCompleteness(raw string) (*completenessRange, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return nil, NewRecordError(ErrInvalidFilter, apiErrors.ErrInvalidFormat, raw)
	}

	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, NewRecordError(ErrInvalidFilter, apiErrors.ErrInvalidFormat, raw)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, NewRecordError(ErrInvalidFilter, apiErrors.ErrInvalidFormat, raw)
	}

	return &completenessRange{min: lo, max: hi}, nil
}

// WeekSummaries monta a tabela de gestão de dados, aplicando os filtros em ordem de calendário
func (s *Service) WeekSummaries(filter domain.WeekFilter) ([]domain.WeekSummary, error) {
	bounds, err := parseCompleteness(filter.Completeness)
	if err != nil {
		return nil, err
	}
	if filter.Month != "" && domain.MonthIndex(filter.Month) < 0 {
		return nil, NewRecordError(ErrUnknownMonth, apiErrors.ErrUnknownMonth, filter.Month)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(filter.Search)
	rows := make([]domain.WeekSummary, 0, len(domain.MonthLabels)*domain.WeeksPerMonth)

	for _, bucket := range s.store.Months() {
		if filter.Month != "" && bucket.Name != filter.Month {
			continue
		}

		for i, week := range bucket.Weeks {
			if filter.Week != nil && *filter.Week != i {
				continue
			}

			row := summarize(bucket.Name, i, week)
			if bounds != nil && (float64(row.Completeness) < bounds.min || float64(row.Completeness) > bounds.max) {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(fmt.Sprintf("%s semana %d", bucket.Name, row.WeekNumber)), search) {
				continue
			}

			rows = append(rows, row)
		}
	}

	return rows, nil
}

func summarize(month string, index int, week domain.WeekRecord) domain.WeekSummary {
	total := len(domain.CompletenessFields)
	filled := week.FilledCount(domain.CompletenessFields)

	row := domain.WeekSummary{
		Month:        month,
		Week:         index,
		WeekNumber:   index + 1,
		HasData:      !week.IsEmpty(),
		FilledFields: filled,
		TotalFields:  total,
		Completeness: utils.Percentage(float64(filled), float64(total)),
	}

	if !row.HasData {
		return row
	}

	if v, ok := week.Get(domain.FieldLeadsRecibidos); ok {
		row.LeadsRecibidos = &v
	} else {
		// sem total informado, soma os canais
		ads, _ := week.Get(domain.FieldLeadsAds)
		organico, _ := week.Get(domain.FieldLeadsOrganico)
		referido, _ := week.Get(domain.FieldLeadsReferido)
		sum := ads + organico + referido
		row.LeadsRecibidos = &sum
	}
	if v, ok := week.Get(domain.FieldCobranzaUSD); ok {
		row.CobranzaUSD = &v
	}

	return row
}
