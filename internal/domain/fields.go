package domain

// FieldKind define como um campo se comporta na consolidação
type FieldKind int

const (
	// FlowField é somado entre semanas e meses
	FlowField FieldKind = iota
	// SnapshotField usa o último valor conhecido
	SnapshotField
)

// NumericType indica como o valor bruto do formulário é interpretado
type NumericType int

const (
	Integer NumericType = iota
	Decimal
)

// DefaultSource indica de onde vem o valor quando nenhuma semana informou o campo
type DefaultSource int

const (
	DefaultLiteral DefaultSource = iota
	DefaultMeta
	DefaultDerived
)

// Nomes dos campos semanais, iguais às chaves usadas no backup JSON
const (
	FieldLeadsAds                 = "leadsAds"
	FieldLeadsOrganico            = "leadsOrganico"
	FieldLeadsReferido            = "leadsReferido"
	FieldConvertidosAds           = "convertidosAds"
	FieldConvertidosOrganico      = "convertidosOrganico"
	FieldConvertidosReferido      = "convertidosReferido"
	FieldLeadsRecibidos           = "leadsRecibidos"
	FieldLeadsCalificados         = "leadsCalificados"
	FieldLeadsConvertidos         = "leadsConvertidos"
	FieldConversacionesGeneradas  = "conversacionesGeneradas"
	FieldDemosRealizados          = "demosRealizados"
	FieldDemosExitosos            = "demosExitosos"
	FieldClientesMorosos          = "clientesMorosos"
	FieldClientesPerdidos         = "clientesPerdidos"
	FieldInfluvideosVendidos      = "influvideosVendidos"
	FieldDemosInfluvideos         = "demosInfluvideos"
	FieldInfluvideosEnCola        = "influvideosEnCola"
	FieldInfluvideosEntregados    = "influvideosEntregados"
	FieldConversacionesAri        = "conversacionesAri"
	FieldClientesNuevosActivados  = "clientesNuevosActivados"
	FieldChurnSemanal             = "churnSemanal"
	FieldTicketsAbiertos          = "ticketsAbiertos"
	FieldTicketsResueltos         = "ticketsResueltos"
	FieldCobranzaUSD              = "cobranzaUSD"
	FieldCobranzaBCV              = "cobranzaBCV"
	FieldInversionAds             = "inversionAds"
	FieldMrrMini                  = "mrrMini"
	FieldMrrPro                   = "mrrPro"
	FieldMrrMax                   = "mrrMax"
	FieldMrrWariMini              = "mrrWariMini"
	FieldMrrWariPro               = "mrrWariPro"
	FieldExpansionMRR             = "expansionMRR"
	FieldContractionMRR           = "contractionMRR"
	FieldInversionFacebook        = "inversionFacebook"
	FieldInversionInstagram       = "inversionInstagram"
	FieldInversionTikTok          = "inversionTikTok"
	FieldGastosFijos              = "gastosFijos"
	FieldClientesActivos100       = "clientesActivos100"
	FieldClientesActivos50        = "clientesActivos50"
	FieldCxc                      = "cxc"
	FieldFormasLeads              = "formasLeads"
	FieldInversionTotal           = "inversionTotal"
	FieldNpsSemanal               = "npsSemanal"
	FieldTiempoPromedioOnboarding = "tiempoPromedioOnboarding"
	FieldCicloVentaTotal          = "cicloVentaTotal"
	FieldGrossMargin              = "grossMargin"
	FieldCsatScore                = "csatScore"
	FieldUptimeAri                = "uptimeAri"
	FieldErrorRateAri             = "errorRateAri"
	FieldHealthScorePromedio      = "healthScorePromedio"

	// FieldDeudasSocios é a lista posicional de dívidas com sócios
	FieldDeudasSocios = "deudasSocios"
)

// PartnerDebtSlots é a quantidade fixa de sócios
const PartnerDebtSlots = 4

// PartnerDebtInputs são os nomes dos campos de formulário das dívidas, por posição
var PartnerDebtInputs = [PartnerDebtSlots]string{"deudaSocio1", "deudaSocio2", "deudaSocio3", "deudaSocio4"}

// Field descreve um campo métrico semanal
type Field struct {
	Name    string
	Kind    FieldKind
	Type    NumericType
	Source  DefaultSource
	Default float64
}

var weekFields = []Field{
	{Name: FieldLeadsAds, Kind: FlowField, Type: Integer},
	{Name: FieldLeadsOrganico, Kind: FlowField, Type: Integer},
	{Name: FieldLeadsReferido, Kind: FlowField, Type: Integer},
	{Name: FieldConvertidosAds, Kind: FlowField, Type: Integer},
	{Name: FieldConvertidosOrganico, Kind: FlowField, Type: Integer},
	{Name: FieldConvertidosReferido, Kind: FlowField, Type: Integer},
	{Name: FieldLeadsRecibidos, Kind: FlowField, Type: Integer, Source: DefaultDerived},
	{Name: FieldLeadsCalificados, Kind: FlowField, Type: Integer},
	{Name: FieldLeadsConvertidos, Kind: FlowField, Type: Integer, Source: DefaultDerived},
	{Name: FieldConversacionesGeneradas, Kind: FlowField, Type: Integer, Source: DefaultDerived},
	{Name: FieldDemosRealizados, Kind: FlowField, Type: Integer},
	{Name: FieldDemosExitosos, Kind: FlowField, Type: Integer},
	{Name: FieldClientesMorosos, Kind: FlowField, Type: Integer},
	{Name: FieldClientesPerdidos, Kind: FlowField, Type: Integer},
	{Name: FieldInfluvideosVendidos, Kind: FlowField, Type: Integer, Source: DefaultDerived},
	{Name: FieldDemosInfluvideos, Kind: FlowField, Type: Integer, Source: DefaultDerived},
	{Name: FieldInfluvideosEnCola, Kind: FlowField, Type: Integer},
	{Name: FieldInfluvideosEntregados, Kind: FlowField, Type: Integer},
	{Name: FieldConversacionesAri, Kind: FlowField, Type: Integer},
	{Name: FieldClientesNuevosActivados, Kind: FlowField, Type: Integer},
	{Name: FieldChurnSemanal, Kind: FlowField, Type: Integer},
	{Name: FieldTicketsAbiertos, Kind: FlowField, Type: Integer},
	{Name: FieldTicketsResueltos, Kind: FlowField, Type: Integer},
	{Name: FieldCobranzaUSD, Kind: FlowField, Type: Decimal},
	{Name: FieldCobranzaBCV, Kind: FlowField, Type: Decimal},
	{Name: FieldInversionAds, Kind: FlowField, Type: Decimal},
	{Name: FieldMrrMini, Kind: FlowField, Type: Decimal},
	{Name: FieldMrrPro, Kind: FlowField, Type: Decimal},
	{Name: FieldMrrMax, Kind: FlowField, Type: Decimal},
	{Name: FieldMrrWariMini, Kind: FlowField, Type: Decimal},
	{Name: FieldMrrWariPro, Kind: FlowField, Type: Decimal},
	{Name: FieldExpansionMRR, Kind: FlowField, Type: Decimal},
	{Name: FieldContractionMRR, Kind: FlowField, Type: Decimal},
	{Name: FieldInversionFacebook, Kind: FlowField, Type: Decimal},
	{Name: FieldInversionInstagram, Kind: FlowField, Type: Decimal},
	{Name: FieldInversionTikTok, Kind: FlowField, Type: Decimal},
	// gastosFijos é somado quando alguma semana informa; senão vale o meta integral
	{Name: FieldGastosFijos, Kind: FlowField, Type: Decimal, Source: DefaultMeta},

	{Name: FieldClientesActivos100, Kind: SnapshotField, Type: Integer, Source: DefaultDerived},
	{Name: FieldClientesActivos50, Kind: SnapshotField, Type: Integer, Source: DefaultDerived},
	{Name: FieldCxc, Kind: SnapshotField, Type: Decimal, Source: DefaultDerived},
	{Name: FieldFormasLeads, Kind: SnapshotField, Type: Integer, Source: DefaultMeta},
	{Name: FieldInversionTotal, Kind: SnapshotField, Type: Decimal, Source: DefaultMeta},
	{Name: FieldNpsSemanal, Kind: SnapshotField, Type: Integer, Default: 0},
	{Name: FieldTiempoPromedioOnboarding, Kind: SnapshotField, Type: Decimal, Default: 5},
	{Name: FieldCicloVentaTotal, Kind: SnapshotField, Type: Decimal, Default: 11},
	{Name: FieldGrossMargin, Kind: SnapshotField, Type: Decimal, Default: 75},
	{Name: FieldCsatScore, Kind: SnapshotField, Type: Decimal, Default: 4.5},
	{Name: FieldUptimeAri, Kind: SnapshotField, Type: Decimal, Default: 99.5},
	{Name: FieldErrorRateAri, Kind: SnapshotField, Type: Decimal, Default: 0.2},
	{Name: FieldHealthScorePromedio, Kind: SnapshotField, Type: Integer, Default: 85},
}

var fieldsByName = func() map[string]Field {
	index := make(map[string]Field, len(weekFields))
	for _, f := range weekFields {
		index[f.Name] = f
	}
	return index
}()

// WeekFields retorna o esquema ordenado de campos semanais
func WeekFields() []Field {
	fields := make([]Field, len(weekFields))
	copy(fields, weekFields)
	return fields
}

// LookupField busca o descritor pelo nome
func LookupField(name string) (Field, bool) {
	f, ok := fieldsByName[name]
	return f, ok
}

// CompletenessFields é a lista de campos usada no cálculo de completude da semana
var CompletenessFields = []string{
	FieldLeadsRecibidos, FieldLeadsCalificados, FieldLeadsConvertidos, FieldConversacionesGeneradas,
	FieldDemosRealizados, FieldClientesActivos100, FieldClientesActivos50, FieldClientesMorosos,
	FieldClientesPerdidos, FieldCobranzaUSD, FieldGastosFijos, FieldInversionAds,
	FieldInversionFacebook, FieldInversionInstagram, FieldInversionTikTok,
	FieldLeadsAds, FieldLeadsOrganico, FieldLeadsReferido,
	FieldMrrMini, FieldMrrPro, FieldMrrMax, FieldMrrWariMini, FieldMrrWariPro,
	FieldInfluvideosEnCola, FieldInfluvideosEntregados, FieldConversacionesAri,
	FieldTicketsAbiertos, FieldTicketsResueltos, FieldCsatScore, FieldNpsSemanal,
	FieldUptimeAri, FieldErrorRateAri, FieldGrossMargin, FieldExpansionMRR,
	FieldContractionMRR, FieldHealthScorePromedio, FieldClientesNuevosActivados,
}
