package domain

// MonthLabels são os rótulos dos meses, em ordem de calendário
var MonthLabels = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// YearViewLabel identifica a visão consolidada do ano
const YearViewLabel = "Consolidado Año"

// Valores padrão do meta mensal
const (
	DefaultGastosFijos    = 15000.0
	DefaultFormasLeads    = 5.0
	DefaultInversionTotal = 1250000.0
	DefaultDeudaSocio     = 12500.0
)

// MonthMeta é a configuração manual do mês, usada apenas quando nenhuma semana informa o campo
type MonthMeta struct {
	GastosFijos    *float64  `json:"gastosFijos,omitempty"`
	FormasLeads    *float64  `json:"formasLeads,omitempty"`
	InversionTotal *float64  `json:"inversionTotal,omitempty"`
	DeudasSocios   []float64 `json:"deudasSocios,omitempty"`
}

// MergedMeta é o meta com os padrões aplicados campo a campo
type MergedMeta struct {
	GastosFijos    float64
	FormasLeads    float64
	InversionTotal float64
	DeudasSocios   [PartnerDebtSlots]float64
}

// Merge aplica os valores padrão. A lista de dívidas é truncada ou completada com 0 até 4 posições.
func (m MonthMeta) Merge() MergedMeta {
	merged := MergedMeta{
		GastosFijos:    DefaultGastosFijos,
		FormasLeads:    DefaultFormasLeads,
		InversionTotal: DefaultInversionTotal,
		DeudasSocios:   [PartnerDebtSlots]float64{DefaultDeudaSocio, DefaultDeudaSocio, DefaultDeudaSocio, DefaultDeudaSocio},
	}

	if m.GastosFijos != nil {
		merged.GastosFijos = *m.GastosFijos
	}
	if m.FormasLeads != nil {
		merged.FormasLeads = *m.FormasLeads
	}
	if m.InversionTotal != nil {
		merged.InversionTotal = *m.InversionTotal
	}
	if len(m.DeudasSocios) > 0 {
		merged.DeudasSocios = [PartnerDebtSlots]float64{}
		for i := 0; i < PartnerDebtSlots && i < len(m.DeudasSocios); i++ {
			merged.DeudasSocios[i] = m.DeudasSocios[i]
		}
	}

	return merged
}

// Clone faz uma cópia profunda do meta
func (m MonthMeta) Clone() MonthMeta {
	clone := MonthMeta{}
	if m.GastosFijos != nil {
		v := *m.GastosFijos
		clone.GastosFijos = &v
	}
	if m.FormasLeads != nil {
		v := *m.FormasLeads
		clone.FormasLeads = &v
	}
	if m.InversionTotal != nil {
		v := *m.InversionTotal
		clone.InversionTotal = &v
	}
	if m.DeudasSocios != nil {
		clone.DeudasSocios = append([]float64(nil), m.DeudasSocios...)
	}
	return clone
}

// MonthBucket agrupa as 4 semanas do mês, o meta e o consolidado em cache
type MonthBucket struct {
	Name         string                    `json:"-"`
	Weeks        [WeeksPerMonth]WeekRecord `json:"weeks"`
	Meta         MonthMeta                 `json:"meta"`
	Consolidated *Consolidated             `json:"consolidated,omitempty"`
}

// NewMonthBucket cria um mês com todas as semanas vazias
func NewMonthBucket(name string) *MonthBucket {
	bucket := &MonthBucket{Name: name}
	for i := range bucket.Weeks {
		bucket.Weeks[i] = NewWeekRecord()
	}
	return bucket
}

// Clone faz uma cópia profunda do mês, incluindo o consolidado em cache
func (b *MonthBucket) Clone() *MonthBucket {
	clone := &MonthBucket{Name: b.Name, Meta: b.Meta.Clone()}
	for i, w := range b.Weeks {
		clone.Weeks[i] = w.Clone()
	}
	if b.Consolidated != nil {
		c := *b.Consolidated
		clone.Consolidated = &c
	}
	return clone
}

// RecordStore é o estado do painel: 12 meses em ordem e o consolidado anual
type RecordStore struct {
	months []*MonthBucket
	byName map[string]*MonthBucket
	Year   *Consolidated
	Logo   *string
}

// NewRecordStore cria o armazenamento com todos os meses vazios
func NewRecordStore() *RecordStore {
	store := &RecordStore{
		months: make([]*MonthBucket, 0, len(MonthLabels)),
		byName: make(map[string]*MonthBucket, len(MonthLabels)),
	}
	for _, label := range MonthLabels {
		bucket := NewMonthBucket(label)
		store.months = append(store.months, bucket)
		store.byName[label] = bucket
	}
	return store
}

// Month busca um mês pelo rótulo
func (s *RecordStore) Month(name string) (*MonthBucket, bool) {
	bucket, ok := s.byName[name]
	return bucket, ok
}

// Months retorna os meses em ordem de calendário
func (s *RecordStore) Months() []*MonthBucket {
	return s.months
}

// MonthIndex retorna a posição do mês no calendário, ou -1
func MonthIndex(name string) int {
	for i, label := range MonthLabels {
		if label == name {
			return i
		}
	}
	return -1
}

// WeekSlot identifica uma semana dentro do armazenamento
type WeekSlot struct {
	Month string `json:"month"`
	Week  int    `json:"week"`
}
