package consolidating

import "github.com/vfg2006/arizon-dashboard-api/internal/domain"

// Participação de cada canal nas conversões de Ads
const (
	facebookShare  = 0.40
	instagramShare = 0.35
	tiktokShare    = 0.25
)

// Frações fixas do churn geral por plano
const (
	churnShareMini     = 0.30
	churnSharePro      = 0.25
	churnShareMax      = 0.15
	churnShareWariMini = 0.20
	churnShareWariPro  = 0.10
)

// SafeDivide retorna 0 quando o denominador é zero
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// Derive calcula todas as métricas derivadas a partir dos campos acumulados.
// É usado tanto no consolidado mensal quanto no anual.
func Derive(c *domain.Consolidated) {
	// Funil e custos primeiro: as métricas de unit economics dependem do CAC e da margem
	c.TasaConversionCalificados = SafeDivide(c.LeadsCalificados, c.LeadsRecibidos) * 100
	c.TasaConversionCierre = SafeDivide(c.LeadsConvertidos, c.LeadsCalificados) * 100
	c.TasaExitoDemos = SafeDivide(c.DemosExitosos, c.DemosRealizados) * 100
	c.CostoPorLead = SafeDivide(c.InversionAds, c.LeadsRecibidos)
	c.CostoPorAdquisicion = SafeDivide(c.InversionAds, c.LeadsConvertidos)
	c.MargenNeto = c.CobranzaUSD - c.GastosFijos - c.InversionAds
	c.Aov = SafeDivide(c.CobranzaUSD, c.LeadsConvertidos)
	c.CpaAds = SafeDivide(c.InversionAds, c.ConvertidosAds)
	// sem dados de investimento para orgânico e referido
	c.CpaOrganico = 0
	c.CpaReferido = 0

	c.MrrTotal = c.MrrMini + c.MrrPro + c.MrrMax + c.MrrWariMini + c.MrrWariPro
	c.Arr = c.MrrTotal * 12

	activeClients := c.ClientesActivosTotales
	if activeClients == 0 {
		activeClients = c.ClientesActivos100 + c.ClientesActivos50
	}
	c.ChurnRate = SafeDivide(c.ChurnSemanal, activeClients) * 100

	c.MrrPorCliente = SafeDivide(c.MrrTotal, c.ClientesActivosTotales)
	marginPerClient := c.MrrPorCliente * (c.GrossMargin / 100)

	c.Ltv = 0
	if monthlyChurn := c.ChurnRate / 100; monthlyChurn > 0 {
		c.Ltv = marginPerClient / monthlyChurn
	}

	c.CacPaybackPeriod = 0
	if marginPerClient > 0 {
		c.CacPaybackPeriod = SafeDivide(c.CostoPorAdquisicion, marginPerClient)
	}

	// mrrInicio é aproximado: não existe saldo de abertura informado
	c.MrrNuevosClientes = c.ClientesNuevosActivados * c.MrrPorCliente
	c.MrrInicio = c.MrrTotal - c.MrrNuevosClientes
	c.MrrFin = c.MrrTotal + c.ExpansionMRR - c.ContractionMRR
	c.Nrr = 100
	if c.MrrInicio > 0 {
		c.Nrr = (c.MrrFin - c.MrrNuevosClientes) / c.MrrInicio * 100
	}

	c.ChurnMRR = c.ChurnSemanal * c.MrrPorCliente
	c.QuickRatio = 0
	if lost := c.ChurnMRR + c.ContractionMRR; lost > 0 {
		c.QuickRatio = (c.MrrNuevosClientes + c.ExpansionMRR) / lost
	}

	c.LtvCacRatio = 0
	if c.CostoPorAdquisicion > 0 {
		c.LtvCacRatio = c.Ltv / c.CostoPorAdquisicion
	}

	c.ProfitMargin = SafeDivide(c.MargenNeto, c.CobranzaUSD) * 100
	c.MrrGrowthRate = SafeDivide(c.ExpansionMRR-c.ContractionMRR, c.MrrTotal) * 100
	c.RuleOf40 = c.MrrGrowthRate + c.ProfitMargin

	c.CacFacebook = SafeDivide(c.InversionFacebook, c.ConvertidosAds*facebookShare)
	c.CacInstagram = SafeDivide(c.InversionInstagram, c.ConvertidosAds*instagramShare)
	c.CacTikTok = SafeDivide(c.InversionTikTok, c.ConvertidosAds*tiktokShare)

	c.ChurnRateMini = c.ChurnRate * churnShareMini
	c.ChurnRatePro = c.ChurnRate * churnSharePro
	c.ChurnRateMax = c.ChurnRate * churnShareMax
	c.ChurnRateWariMini = c.ChurnRate * churnShareWariMini
	c.ChurnRateWariPro = c.ChurnRate * churnShareWariPro
}
