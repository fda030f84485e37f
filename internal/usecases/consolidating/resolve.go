// Package consolidating transforma as semanas informadas nos consolidados mensal e anual
package consolidating

import (
	"math"

	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
)

// Resolve retorna o valor de um campo da semana. Quando a semana não informa o campo
// e existe uma regra de derivação, o valor é calculado a partir de outros campos da
// própria semana. O segundo retorno indica se o valor foi informado ou derivado.
func Resolve(week domain.WeekRecord, field string) (float64, bool) {
	if v, ok := week.Get(field); ok {
		return v, true
	}

	switch field {
	case domain.FieldLeadsRecibidos:
		return sumOf(week, domain.FieldLeadsAds, domain.FieldLeadsOrganico, domain.FieldLeadsReferido), true
	case domain.FieldLeadsConvertidos:
		return sumOf(week, domain.FieldConvertidosAds, domain.FieldConvertidosOrganico, domain.FieldConvertidosReferido), true
	case domain.FieldConversacionesGeneradas:
		received, _ := Resolve(week, domain.FieldLeadsRecibidos)
		return math.Floor(received * 1.5), true
	case domain.FieldInfluvideosVendidos:
		successful, _ := week.Get(domain.FieldDemosExitosos)
		return math.Floor(successful * 0.1), true
	case domain.FieldDemosInfluvideos:
		performed, _ := week.Get(domain.FieldDemosRealizados)
		return math.Floor(performed * 0.2), true
	}

	return 0, false
}

func sumOf(week domain.WeekRecord, fields ...string) float64 {
	total := 0.0
	for _, f := range fields {
		v, _ := week.Get(f)
		total += v
	}
	return total
}
