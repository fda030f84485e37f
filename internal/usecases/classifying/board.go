package classifying

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
	"github.com/vfg2006/arizon-dashboard-api/internal/usecases/consolidating"
	"github.com/vfg2006/arizon-dashboard-api/pkg/utils"
)

// Métricas calculadas no quadro, sem campo no consolidado
const (
	metricConversationRate = "conversacionesLeads"
	metricResolutionRate   = "tasaResolucion"
)

type formatter func(float64) string

func percent(places int32) formatter {
	return func(v float64) string { return utils.FormatFixed(v, places) + "%" }
}

func fixed(places int32) formatter {
	return func(v float64) string { return utils.FormatFixed(v, places) }
}

func days(v float64) string {
	return utils.FormatFixed(v, 1) + " días"
}

func times(v float64) string {
	return utils.FormatFixed(v, 1) + "x"
}

type cardDef struct {
	id           string
	metric       string
	lessIsBetter bool
	format       formatter
	noBaseline   bool
}

var cards = []cardDef{
	{id: "clientes-100", metric: domain.FieldClientesActivos100, format: utils.FormatNumber},
	{id: "clientes-50", metric: domain.FieldClientesActivos50, format: utils.FormatNumber},
	{id: "clientes-morosos", metric: domain.FieldClientesMorosos, lessIsBetter: true, format: utils.FormatNumber},
	{id: "clientes-perdidos", metric: domain.FieldClientesPerdidos, lessIsBetter: true, format: utils.FormatNumber},

	{id: "leads-recibidos", metric: domain.FieldLeadsRecibidos, format: utils.FormatNumber},
	{id: "leads-calificados", metric: domain.FieldLeadsCalificados, format: utils.FormatNumber},
	{id: "leads-convertidos", metric: domain.FieldLeadsConvertidos, format: utils.FormatNumber},
	{id: "conversaciones-leads", metric: metricConversationRate, format: percent(0)},

	{id: "demos-realizados", metric: domain.FieldDemosRealizados, format: utils.FormatNumber},
	{id: "demos-exitosos", metric: domain.FieldDemosExitosos, format: utils.FormatNumber},
	{id: "influvideos-vendidos", metric: domain.FieldInfluvideosVendidos, format: utils.FormatNumber},
	{id: "demos-influvideos", metric: domain.FieldDemosInfluvideos, format: utils.FormatNumber},

	{id: "cobranza-usd", metric: domain.FieldCobranzaUSD, format: utils.FormatUSD},
	{id: "cobranza-bcv", metric: domain.FieldCobranzaBCV, format: utils.FormatVES},
	{id: "cxc", metric: domain.FieldCxc, lessIsBetter: true, format: utils.FormatUSD},
	{id: "inversion-ads", metric: domain.FieldInversionAds, lessIsBetter: true, format: utils.FormatUSD},
	{id: "gastos-fijos", metric: domain.FieldGastosFijos, lessIsBetter: true, format: utils.FormatUSD},
	{id: "deuda-socios", metric: "deudaSocios", lessIsBetter: true, format: utils.FormatUSD},

	{id: "formas-leads", metric: domain.FieldFormasLeads, format: utils.FormatNumber},
	{id: "inversion-total", metric: domain.FieldInversionTotal, format: utils.FormatUSD, noBaseline: true},

	{id: "influvideos-cola", metric: domain.FieldInfluvideosEnCola, lessIsBetter: true, format: utils.FormatNumber},
	{id: "influvideos-entregados", metric: domain.FieldInfluvideosEntregados, format: utils.FormatNumber},
	{id: "conversaciones-ari", metric: domain.FieldConversacionesAri, format: utils.FormatNumber},
	{id: "tiempo-onboarding", metric: domain.FieldTiempoPromedioOnboarding, lessIsBetter: true, format: days},

	{id: "mrr-total", metric: "mrrTotal", format: utils.FormatUSD},
	{id: "arr", metric: "arr", format: utils.FormatUSD},
	{id: "mrr-pro", metric: domain.FieldMrrPro, format: utils.FormatUSD},
	{id: "mrr-max", metric: domain.FieldMrrMax, format: utils.FormatUSD},

	{id: "clientes-nuevos", metric: domain.FieldClientesNuevosActivados, format: utils.FormatNumber},
	{id: "churn-semanal", metric: domain.FieldChurnSemanal, lessIsBetter: true, format: utils.FormatNumber},
	{id: "churn-rate", metric: "churnRate", lessIsBetter: true, format: percent(1)},
	{id: "ciclo-venta", metric: domain.FieldCicloVentaTotal, lessIsBetter: true, format: days},

	{id: "nps", metric: domain.FieldNpsSemanal, format: fixed(0)},
	{id: "health-score", metric: domain.FieldHealthScorePromedio, format: fixed(0)},
	{id: "csat", metric: domain.FieldCsatScore, format: fixed(1)},
	{id: "uptime", metric: domain.FieldUptimeAri, format: percent(1)},

	{id: "ltv", metric: "ltv", format: utils.FormatUSD},
	{id: "ltv-cac-ratio", metric: "ltvCacRatio", format: times},
	{id: "cac-payback", metric: "cacPaybackPeriod", lessIsBetter: true, format: fixed(1)},
	{id: "gross-margin", metric: domain.FieldGrossMargin, format: percent(0)},
	{id: "nrr", metric: "nrr", format: percent(0)},
	{id: "quick-ratio", metric: "quickRatio", format: times},
	{id: "rule-of-40", metric: "ruleOf40", format: percent(0)},
	{id: "cac-facebook", metric: "cacFacebook", lessIsBetter: true, format: utils.FormatUSD},

	{id: "tickets-abiertos", metric: domain.FieldTicketsAbiertos, format: utils.FormatNumber},
	{id: "tickets-resueltos", metric: domain.FieldTicketsResueltos, format: utils.FormatNumber},
	{id: "tasa-resolucion", metric: metricResolutionRate, format: percent(0)},
	{id: "error-rate", metric: domain.FieldErrorRateAri, lessIsBetter: true, format: percent(1)},
}

// Board monta os indicadores do período. Na visão anual a linha de base é 80% do próprio
// valor; na mensal, o mês anterior quando existir.
func (s *Service) Board(view domain.PeriodView, current, previous *domain.Consolidated) (*domain.KPIBoard, error) {
	if current == nil {
		return nil, errors.New("consolidated data is required")
	}

	values, err := current.Values()
	if err != nil {
		return nil, errors.Wrap(err, "reading current values")
	}
	addComputed(values)

	var baseline map[string]float64
	switch {
	case view == domain.YearView:
		baseline = make(map[string]float64, len(values))
		for k, v := range values {
			baseline[k] = v * yearBaselineFactor
		}
		delete(baseline, metricConversationRate)
		delete(baseline, metricResolutionRate)
	case previous != nil:
		baseline, err = previous.Values()
		if err != nil {
			return nil, errors.Wrap(err, "reading previous values")
		}
	}
	addComputedBaseline(baseline)

	board := &domain.KPIBoard{Period: current.Period, Cards: make([]domain.KPICard, 0, len(cards))}
	for _, card := range cards {
		value := values[card.metric]

		var prev *float64
		if v, ok := baseline[card.metric]; ok && !card.noBaseline {
			prev = &v
		}

		board.Cards = append(board.Cards, domain.KPICard{
			ID:           card.id,
			Metric:       card.metric,
			Value:        value,
			Formatted:    card.format(value),
			Previous:     prev,
			LessIsBetter: card.lessIsBetter,
			Context:      ContextLabel(value, prev, card.lessIsBetter, view),
			Status:       s.Classify(card.metric, value),
		})
	}

	return board, nil
}

func addComputed(values map[string]float64) {
	values[metricConversationRate] = consolidating.SafeDivide(values[domain.FieldConversacionesGeneradas], values[domain.FieldLeadsRecibidos]) * 100
	values[metricResolutionRate] = consolidating.SafeDivide(values[domain.FieldTicketsResueltos], values[domain.FieldTicketsAbiertos]) * 100
}

// Sem conversas nem leads, ou sem tickets abertos, a taxa anterior não existe
func addComputedBaseline(baseline map[string]float64) {
	if baseline == nil {
		return
	}

	if baseline[domain.FieldConversacionesGeneradas] != 0 || baseline[domain.FieldLeadsRecibidos] != 0 {
		baseline[metricConversationRate] = consolidating.SafeDivide(baseline[domain.FieldConversacionesGeneradas], baseline[domain.FieldLeadsRecibidos]) * 100
	}
	if baseline[domain.FieldTicketsAbiertos] != 0 {
		baseline[metricResolutionRate] = consolidating.SafeDivide(baseline[domain.FieldTicketsResueltos], baseline[domain.FieldTicketsAbiertos]) * 100
	}
}
