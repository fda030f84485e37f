// Package classifying classifica KPIs contra as metas e monta o quadro de indicadores
package classifying

import (
	"fmt"
	"math"

	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/consolidating"
	"github.com/vfg2006/arizon-dashboard-api/pkg/utils"
)

// Linha de base sintética usada na visão anual
const yearBaselineFactor = 0.8

type Classifier interface {
	Classify(name string, value float64) domain.KPIStatus
	TargetProgress(name string, value float64) *domain.TargetProgress
	Board(view domain.PeriodView, current, previous *domain.Consolidated) (*domain.KPIBoard, error)
}

type Service struct {
	targets map[string]domain.KPITarget
}

func NewClassifier(targets map[string]domain.KPITarget) Classifier {
	if targets == nil {
		targets = domain.DefaultKPITargets()
	}
	return &Service{targets: targets}
}

func (s *Service) Classify(name string, value float64) domain.KPIStatus {
	status := domain.KPIStatus{Name: name, Value: value, Band: domain.BandNeutral}

	target, ok := s.targets[name]
	if !ok {
		return status
	}

	status.Band = band(target, value)
	status.Progress = progress(target, value)
	return status
}

func (s *Service) TargetProgress(name string, value float64) *domain.TargetProgress {
	target, ok := s.targets[name]
	if !ok {
		return nil
	}
	return progress(target, value)
}

func band(target domain.KPITarget, value float64) domain.KPIBand {
	if target.Inverse {
		switch {
		case value <= target.Excellent:
			return domain.BandExcellent
		case value <= target.Good:
			return domain.BandGood
		case value <= target.Warning:
			return domain.BandWarning
		}
		return domain.BandCritical
	}

	switch {
	case value >= target.Excellent:
		return domain.BandExcellent
	case value >= target.Good:
		return domain.BandGood
	case value >= target.Warning:
		return domain.BandWarning
	}
	return domain.BandCritical
}

func progress(target domain.KPITarget, value float64) *domain.TargetProgress {
	pct := consolidating.SafeDivide(value, target.Good) * 100
	return &domain.TargetProgress{
		Percentage: int(utils.RoundHalfUp(pct)),
		Achieved:   pct >= 100,
		Close:      pct >= 90 && pct < 100,
	}
}

// ContextLabel descreve a variação do valor atual contra a linha de base do período anterior
func ContextLabel(current float64, previous *float64, lessIsBetter bool, view domain.PeriodView) domain.ContextLabel {
	if previous == nil || *previous == 0 {
		if current > 0 {
			return domain.ContextLabel{Text: "Nuevos datos", Tone: domain.ToneNeutral}
		}
		return domain.ContextLabel{Text: "Sin datos previos", Tone: domain.ToneNeutral}
	}
	if current == *previous {
		return domain.ContextLabel{Text: "Sin cambios", Tone: domain.ToneNeutral}
	}

	diff := current - *previous
	change := math.Abs(consolidating.SafeDivide(diff, *previous) * 100)

	positive := diff > 0
	if lessIsBetter {
		positive = !positive
	}

	arrow := "↓"
	if diff > 0 {
		arrow = "↑"
	}

	versus := "vs. mes ant."
	if view == domain.YearView {
		versus = "vs. año ant."
	}

	tone := domain.ToneNegative
	if positive {
		tone = domain.TonePositive
	}

	return domain.ContextLabel{
		Text: fmt.Sprintf("%s %s%% %s", arrow, utils.FormatFixed(change, 0), versus),
		Tone: tone,
	}
}
