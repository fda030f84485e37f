package domain

import (
	"github.com/mitchellh/mapstructure"
)

// Consolidated é o resultado derivado de um mês ou do ano.
// Nunca é editado diretamente: é recalculado a partir das semanas e do meta.
type Consolidated struct {
	Period string `json:"period"`

	// Campos de fluxo
	LeadsAds                float64 `json:"leadsAds"`
	LeadsOrganico           float64 `json:"leadsOrganico"`
	LeadsReferido           float64 `json:"leadsReferido"`
	ConvertidosAds          float64 `json:"convertidosAds"`
	ConvertidosOrganico     float64 `json:"convertidosOrganico"`
	ConvertidosReferido     float64 `json:"convertidosReferido"`
	LeadsRecibidos          float64 `json:"leadsRecibidos"`
	LeadsCalificados        float64 `json:"leadsCalificados"`
	LeadsConvertidos        float64 `json:"leadsConvertidos"`
	ConversacionesGeneradas float64 `json:"conversacionesGeneradas"`
	DemosRealizados         float64 `json:"demosRealizados"`
	DemosExitosos           float64 `json:"demosExitosos"`
	ClientesMorosos         float64 `json:"clientesMorosos"`
	ClientesPerdidos        float64 `json:"clientesPerdidos"`
	InfluvideosVendidos     float64 `json:"influvideosVendidos"`
	DemosInfluvideos        float64 `json:"demosInfluvideos"`
	InfluvideosEnCola       float64 `json:"influvideosEnCola"`
	InfluvideosEntregados   float64 `json:"influvideosEntregados"`
	ConversacionesAri       float64 `json:"conversacionesAri"`
	ClientesNuevosActivados float64 `json:"clientesNuevosActivados"`
	ChurnSemanal            float64 `json:"churnSemanal"`
	TicketsAbiertos         float64 `json:"ticketsAbiertos"`
	TicketsResueltos        float64 `json:"ticketsResueltos"`
	CobranzaUSD             float64 `json:"cobranzaUSD"`
	CobranzaBCV             float64 `json:"cobranzaBCV"`
	InversionAds            float64 `json:"inversionAds"`
	MrrMini                 float64 `json:"mrrMini"`
	MrrPro                  float64 `json:"mrrPro"`
	MrrMax                  float64 `json:"mrrMax"`
	MrrWariMini             float64 `json:"mrrWariMini"`
	MrrWariPro              float64 `json:"mrrWariPro"`
	ExpansionMRR            float64 `json:"expansionMRR"`
	ContractionMRR          float64 `json:"contractionMRR"`
	InversionFacebook       float64 `json:"inversionFacebook"`
	InversionInstagram      float64 `json:"inversionInstagram"`
	InversionTikTok         float64 `json:"inversionTikTok"`
	GastosFijos             float64 `json:"gastosFijos"`

	// Campos de snapshot
	ClientesActivos100       float64                   `json:"clientesActivos100"`
	ClientesActivos50        float64                   `json:"clientesActivos50"`
	ClientesActivosTotales   float64                   `json:"clientesActivosTotales"`
	Cxc                      float64                   `json:"cxc"`
	FormasLeads              float64                   `json:"formasLeads"`
	InversionTotal           float64                   `json:"inversionTotal"`
	NpsSemanal               float64                   `json:"npsSemanal"`
	TiempoPromedioOnboarding float64                   `json:"tiempoPromedioOnboarding"`
	CicloVentaTotal          float64                   `json:"cicloVentaTotal"`
	GrossMargin              float64                   `json:"grossMargin"`
	CsatScore                float64                   `json:"csatScore"`
	UptimeAri                float64                   `json:"uptimeAri"`
	ErrorRateAri             float64                   `json:"errorRateAri"`
	HealthScorePromedio      float64                   `json:"healthScorePromedio"`
	DeudasSociosDetalle      [PartnerDebtSlots]float64 `json:"deudasSociosDetalle"`
	DeudaSocios              float64                   `json:"deudaSocios"`

	// Funil e custos
	TasaConversionCalificados float64 `json:"tasaConversionCalificados"`
	TasaConversionCierre      float64 `json:"tasaConversionCierre"`
	TasaExitoDemos            float64 `json:"tasaExitoDemos"`
	CostoPorLead              float64 `json:"costoPorLead"`
	CostoPorAdquisicion       float64 `json:"costoPorAdquisicion"`
	MargenNeto                float64 `json:"margenNeto"`
	Aov                       float64 `json:"aov"`
	CpaAds                    float64 `json:"cpaAds"`
	CpaOrganico               float64 `json:"cpaOrganico"`
	CpaReferido               float64 `json:"cpaReferido"`

	// Métricas estratégicas
	MrrTotal          float64 `json:"mrrTotal"`
	Arr               float64 `json:"arr"`
	ChurnRate         float64 `json:"churnRate"`
	MrrPorCliente     float64 `json:"mrrPorCliente"`
	Ltv               float64 `json:"ltv"`
	CacPaybackPeriod  float64 `json:"cacPaybackPeriod"`
	MrrNuevosClientes float64 `json:"mrrNuevosClientes"`
	MrrInicio         float64 `json:"mrrInicio"`
	MrrFin            float64 `json:"mrrFin"`
	Nrr               float64 `json:"nrr"`
	ChurnMRR          float64 `json:"churnMRR"`
	QuickRatio        float64 `json:"quickRatio"`
	LtvCacRatio       float64 `json:"ltvCacRatio"`
	MrrGrowthRate     float64 `json:"mrrGrowthRate"`
	ProfitMargin      float64 `json:"profitMargin"`
	RuleOf40          float64 `json:"ruleOf40"`
	CacFacebook       float64 `json:"cacFacebook"`
	CacInstagram      float64 `json:"cacInstagram"`
	CacTikTok         float64 `json:"cacTikTok"`
	ChurnRateMini     float64 `json:"churnRateMini"`
	ChurnRatePro      float64 `json:"churnRatePro"`
	ChurnRateMax      float64 `json:"churnRateMax"`
	ChurnRateWariMini float64 `json:"churnRateWariMini"`
	ChurnRateWariPro  float64 `json:"churnRateWariPro"`
}

// Field retorna o ponteiro para um campo semanal do consolidado, ou nil se o nome não existe
func (c *Consolidated) Field(name string) *float64 {
	switch name {
	case FieldLeadsAds:
		return &c.LeadsAds
	case FieldLeadsOrganico:
		return &c.LeadsOrganico
	case FieldLeadsReferido:
		return &c.LeadsReferido
	case FieldConvertidosAds:
		return &c.ConvertidosAds
	case FieldConvertidosOrganico:
		return &c.ConvertidosOrganico
	case FieldConvertidosReferido:
		return &c.ConvertidosReferido
	case FieldLeadsRecibidos:
		return &c.LeadsRecibidos
	case FieldLeadsCalificados:
		return &c.LeadsCalificados
	case FieldLeadsConvertidos:
		return &c.LeadsConvertidos
	case FieldConversacionesGeneradas:
		return &c.ConversacionesGeneradas
	case FieldDemosRealizados:
		return &c.DemosRealizados
	case FieldDemosExitosos:
		return &c.DemosExitosos
	case FieldClientesMorosos:
		return &c.ClientesMorosos
	case FieldClientesPerdidos:
		return &c.ClientesPerdidos
	case FieldInfluvideosVendidos:
		return &c.InfluvideosVendidos
	case FieldDemosInfluvideos:
		return &c.DemosInfluvideos
	case FieldInfluvideosEnCola:
		return &c.InfluvideosEnCola
	case FieldInfluvideosEntregados:
		return &c.InfluvideosEntregados
	case FieldConversacionesAri:
		return &c.ConversacionesAri
	case FieldClientesNuevosActivados:
		return &c.ClientesNuevosActivados
	case FieldChurnSemanal:
		return &c.ChurnSemanal
	case FieldTicketsAbiertos:
		return &c.TicketsAbiertos
	case FieldTicketsResueltos:
		return &c.TicketsResueltos
	case FieldCobranzaUSD:
		return &c.CobranzaUSD
	case FieldCobranzaBCV:
		return &c.CobranzaBCV
	case FieldInversionAds:
		return &c.InversionAds
	case FieldMrrMini:
		return &c.MrrMini
	case FieldMrrPro:
		return &c.MrrPro
	case FieldMrrMax:
		return &c.MrrMax
	case FieldMrrWariMini:
		return &c.MrrWariMini
	case FieldMrrWariPro:
		return &c.MrrWariPro
	case FieldExpansionMRR:
		return &c.ExpansionMRR
	case FieldContractionMRR:
		return &c.ContractionMRR
	case FieldInversionFacebook:
		return &c.InversionFacebook
	case FieldInversionInstagram:
		return &c.InversionInstagram
	case FieldInversionTikTok:
		return &c.InversionTikTok
	case FieldGastosFijos:
		return &c.GastosFijos
	case FieldClientesActivos100:
		return &c.ClientesActivos100
	case FieldClientesActivos50:
		return &c.ClientesActivos50
	case FieldCxc:
		return &c.Cxc
	case FieldFormasLeads:
		return &c.FormasLeads
	case FieldInversionTotal:
		return &c.InversionTotal
	case FieldNpsSemanal:
		return &c.NpsSemanal
	case FieldTiempoPromedioOnboarding:
		return &c.TiempoPromedioOnboarding
	case FieldCicloVentaTotal:
		return &c.CicloVentaTotal
	case FieldGrossMargin:
		return &c.GrossMargin
	case FieldCsatScore:
		return &c.CsatScore
	case FieldUptimeAri:
		return &c.UptimeAri
	case FieldErrorRateAri:
		return &c.ErrorRateAri
	case FieldHealthScorePromedio:
		return &c.HealthScorePromedio
	}
	return nil
}

// Values achata o consolidado em um mapa indexado pelas chaves JSON
func (c *Consolidated) Values() (map[string]float64, error) {
	raw := map[string]any{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &raw,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(c); err != nil {
		return nil, err
	}

	values := make(map[string]float64, len(raw))
	for k, v := range raw {
		if f, ok := v.(float64); ok {
			values[k] = f
		}
	}
	return values, nil
}
