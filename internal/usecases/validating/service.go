// Package validating aplica as regras de negócio sobre uma semana candidata antes do commit
package validating

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
)

// Tolerância entre a inversão total em Ads e a soma dos canais
const investmentTolerance = 50

type Validator interface {
	Validate(candidate domain.Candidate) []domain.ValidationIssue
}

type Service struct {
	rules []rule
}

// rule acrescenta as inconsistências encontradas; nenhuma regra interrompe as demais
type rule func(c domain.Candidate, issues []domain.ValidationIssue) []domain.ValidationIssue

func NewService() Validator {
	return &Service{
		rules: []rule{
			leadHierarchy,
			channelConversions,
			demos,
			mrr,
			churn,
			investments,
			collections,
			nps,
			csat,
			uptime,
			tickets,
			healthScore,
		},
	}
}

// Validate nunca altera o candidato. Lista vazia significa que a semana pode ser gravada.
func (s *Service) Validate(candidate domain.Candidate) []domain.ValidationIssue {
	issues := []domain.ValidationIssue{}
	for _, r := range s.rules {
		issues = r(candidate, issues)
	}
	return issues
}

func issue(field, format string, args ...any) domain.ValidationIssue {
	return domain.ValidationIssue{Field: field, Message: fmt.Sprintf(format, args...)}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func leadHierarchy(c domain.Candidate, issues []domain.ValidationIssue) []domain.ValidationIssue {
	received := c.Number(domain.FieldLeadsRecibidos)
	qualified := c.Number(domain.FieldLeadsCalificados)
	converted := c.Number(domain.FieldLeadsConvertidos)
	byChannel := c.Number(domain.FieldLeadsAds) + c.Number(domain.FieldLeadsOrganico) + c.Number(domain.FieldLeadsReferido)

	if received > 0 && byChannel > 0 && byChannel != received {
		issues = append(issues, issue(domain.FieldLeadsRecibidos,
			"Leads Recibidos (%s) debe ser igual a la suma de Leads por canal (%s = Ads + Orgánico + Referido)",
			num(received), num(byChannel)))
	}

	if qualified > received && received > 0 {
		issues = append(issues, issue(domain.FieldLeadsCalificados,
			"Leads Calificados (%s) no puede ser mayor que Leads Recibidos (%s)", num(qualified), num(received)))
	}

	if converted > qualified && qualified > 0 {
		issues = append(issues, issue(domain.FieldLeadsConvertidos,
			"Leads Convertidos (%s) no puede ser mayor que Leads Calificados (%s)", num(converted), num(qualified)))
	}

	return issues
}

var channels = []struct {
	label     string
	leads     string
	converted string
}{
	{label: "Ads", leads: domain.FieldLeadsAds, converted: domain.FieldConvertidosAds},
	{label: "Orgánico", leads: domain.FieldLeadsOrganico, converted: domain.FieldConvertidosOrganico},
	{label: "Referido", leads: domain.FieldLeadsReferido, converted: domain.FieldConvertidosReferido},
}

func channelConversions(c domain.Candidate, issues []domain.ValidationIssue) []domain.ValidationIssue {
	for _, ch := range channels {
		leads := c.Number(ch.leads)
		converted := c.Number(ch.converted)
		if converted > leads && leads > 0 {
			issues = append(issues, issue(ch.converted,
				"Convertidos %s (%s) no puede superar Leads %s (%s)", ch.label, num(converted), ch.label, num(leads)))
		}
	}
	return issues
}

func demos(c domain.Candidate, issues []domain.ValidationIssue) []domain.ValidationIssue {
	performed := c.Number(domain.FieldDemosRealizados)
	successful := c.Number(domain.FieldDemosExitosos)

	if successful > performed && performed > 0 {
		issues = append(issues, issue(domain.FieldDemosExitosos,
			"Demos Exitosos (%s) no puede ser mayor que Demos Realizados (%s)", num(successful), num(performed)))
	}

	if performed > 0 && successful > 0 {
		if rate := successful / performed * 100; rate > 100 {
			issues = append(issues, issue(domain.FieldDemosExitosos,
				"Tasa de éxito de demos es %s%% (imposible superar 100%%)", strconv.FormatFloat(rate, 'f', 1, 64)))
		}
	}

	return issues
}

var mrrComponents = []struct {
	field string
	label string
}{
	{field: domain.FieldMrrMini, label: "MRR Mini"},
	{field: domain.FieldMrrPro, label: "MRR Pro"},
	{field: domain.FieldMrrMax, label: "MRR Max"},
	{field: domain.FieldMrrWariMini, label: "MRR Wari Mini"},
	{field: domain.FieldMrrWariPro, label: "MRR Wari Pro"},
}

func mrr(c domain.Candidate, issues []domain.ValidationIssue) []domain.ValidationIssue {
	total := 0.0
	for _, m := range mrrComponents {
		total += c.Number(m.field)
	}
	if total < 0 {
		issues = append(issues, issue(domain.FieldMrrMini, "El MRR total no puede ser negativo"))
	}

	for _, m := range mrrComponents {
		if c.Number(m.field) < 0 {
			issues = append(issues, issue(m.field, "%s no puede ser negativo", m.label))
		}
	}
	return issues
}

func churn(c domain.Candidate, issues []domain.ValidationIssue) []domain.ValidationIssue {
	weekly := c.Number(domain.FieldChurnSemanal)

	if weekly < 0 {
		issues = append(issues, issue(domain.FieldChurnSemanal, "Churn semanal no puede ser negativo"))
	}
	if weekly > 100 {
		issues = append(issues, issue(domain.FieldChurnSemanal,
			"Churn semanal (%s) parece muy alto. Verifica si es un porcentaje o número de clientes.", num(weekly)))
	}
	return issues
}

var investmentLabels = []struct {
	field string
	label string
}{
	{field: domain.FieldInversionAds, label: "Ads"},
	{field: domain.FieldInversionFacebook, label: "Facebook"},
	{field: domain.FieldInversionInstagram, label: "Instagram"},
	{field: domain.FieldInversionTikTok, label: "TikTok"},
}

func investments(c domain.Candidate, issues []domain.ValidationIssue) []domain.ValidationIssue {
	ads := c.Number(domain.FieldInversionAds)
	byChannel := c.Number(domain.FieldInversionFacebook) + c.Number(domain.FieldInversionInstagram) + c.Number(domain.FieldInversionTikTok)

	if ads > 0 && byChannel > 0 && math.Abs(ads-byChannel) > investmentTolerance {
		issues = append(issues, issue(domain.FieldInversionAds,
			"Inversión Ads Total ($%s) debería ser similar a la suma de inversiones por canal ($%s)",
			num(ads), strconv.FormatFloat(byChannel, 'f', 2, 64)))
	}

	for _, inv := range investmentLabels {
		if c.Number(inv.field) < 0 {
			issues = append(issues, issue(inv.field, "Inversión en %s no puede ser negativa", inv.label))
		}
	}
	return issues
}

func collections(c domain.Candidate, issues []domain.ValidationIssue) []domain.ValidationIssue {
	if c.Number(domain.FieldCobranzaUSD) < 0 {
		issues = append(issues, issue(domain.FieldCobranzaUSD, "Cobranza USD no puede ser negativa"))
	}
	if c.Number(domain.FieldCxc) < 0 {
		issues = append(issues, issue(domain.FieldCxc, "Cuentas por Cobrar no puede ser negativa"))
	}
	return issues
}

// As faixas abaixo só valem para campos informados: um CSAT ausente não é um CSAT zero.

func nps(c domain.Candidate, issues []domain.ValidationIssue) []domain.ValidationIssue {
	if v, ok := c.Lookup(domain.FieldNpsSemanal); ok && (v < -100 || v > 100) {
		issues = append(issues, issue(domain.FieldNpsSemanal, "NPS (%s) debe estar entre -100 y 100", num(v)))
	}
	return issues
}

func csat(c domain.Candidate, issues []domain.ValidationIssue) []domain.ValidationIssue {
	if v, ok := c.Lookup(domain.FieldCsatScore); ok && (v < 1 || v > 5) {
		issues = append(issues, issue(domain.FieldCsatScore, "CSAT Score (%s) debe estar entre 1 y 5", num(v)))
	}
	return issues
}

func uptime(c domain.Candidate, issues []domain.ValidationIssue) []domain.ValidationIssue {
	if v, ok := c.Lookup(domain.FieldUptimeAri); ok && (v < 0 || v > 100) {
		issues = append(issues, issue(domain.FieldUptimeAri, "Uptime Ari (%s%%) debe estar entre 0%% y 100%%", num(v)))
	}
	return issues
}

func tickets(c domain.Candidate, issues []domain.ValidationIssue) []domain.ValidationIssue {
	if c.Number(domain.FieldTicketsAbiertos) < 0 {
		issues = append(issues, issue(domain.FieldTicketsAbiertos, "Tickets Abiertos no puede ser negativo"))
	}
	if c.Number(domain.FieldTicketsResueltos) < 0 {
		issues = append(issues, issue(domain.FieldTicketsResueltos, "Tickets Resueltos no puede ser negativo"))
	}
	return issues
}

func healthScore(c domain.Candidate, issues []domain.ValidationIssue) []domain.ValidationIssue {
	if v, ok := c.Lookup(domain.FieldHealthScorePromedio); ok && (v < 0 || v > 100) {
		issues = append(issues, issue(domain.FieldHealthScorePromedio, "Health Score (%s) debe estar entre 0 y 100", num(v)))
	}
	return issues
}
