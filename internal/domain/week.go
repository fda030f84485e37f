package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WeeksPerMonth é o número fixo de semanas por mês
const WeeksPerMonth = 4

// WeekRecord guarda os valores brutos informados para uma semana.
// A presença da chave em Values indica que o campo foi informado.
type WeekRecord struct {
	Values       map[string]float64
	PartnerDebts [PartnerDebtSlots]*float64
}

// NewWeekRecord cria uma semana vazia
func NewWeekRecord() WeekRecord {
	return WeekRecord{Values: map[string]float64{}}
}

// Get retorna o valor do campo e se ele foi informado
func (w WeekRecord) Get(name string) (float64, bool) {
	if w.Values == nil {
		return 0, false
	}
	v, ok := w.Values[name]
	return v, ok
}

// Set define o valor de um campo
func (w *WeekRecord) Set(name string, value float64) {
	if w.Values == nil {
		w.Values = map[string]float64{}
	}
	w.Values[name] = value
}

// SetPartnerDebt define a dívida de um sócio por posição
func (w *WeekRecord) SetPartnerDebt(index int, value float64) {
	if index < 0 || index >= PartnerDebtSlots {
		return
	}
	v := value
	w.PartnerDebts[index] = &v
}

// IsEmpty indica semana pendente: nenhum campo ou dívida informados
func (w WeekRecord) IsEmpty() bool {
	if len(w.Values) > 0 {
		return false
	}
	for _, d := range w.PartnerDebts {
		if d != nil {
			return false
		}
	}
	return true
}

// FilledCount conta quantos dos campos informados estão preenchidos
func (w WeekRecord) FilledCount(names []string) int {
	count := 0
	for _, name := range names {
		if _, ok := w.Get(name); ok {
			count++
		}
	}
	return count
}

// Clone faz uma cópia profunda da semana
func (w WeekRecord) Clone() WeekRecord {
	clone := NewWeekRecord()
	for k, v := range w.Values {
		clone.Values[k] = v
	}
	for i, d := range w.PartnerDebts {
		if d != nil {
			v := *d
			clone.PartnerDebts[i] = &v
		}
	}
	return clone
}

// Merge sobrescreve com os campos informados em other, preservando os demais
func (w *WeekRecord) Merge(other WeekRecord) {
	for k, v := range other.Values {
		w.Set(k, v)
	}
	for i, d := range other.PartnerDebts {
		if d != nil {
			w.SetPartnerDebt(i, *d)
		}
	}
}

// MarshalJSON serializa a semana como objeto plano no formato do backup
func (w WeekRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(w.Values)+1)
	for k, v := range w.Values {
		out[k] = v
	}

	hasDebt := false
	debts := make([]*float64, PartnerDebtSlots)
	for i, d := range w.PartnerDebts {
		debts[i] = d
		if d != nil {
			hasDebt = true
		}
	}
	if hasDebt {
		out[FieldDeudasSocios] = debts
	}

	return json.Marshal(out)
}

// UnmarshalJSON aceita números ou strings numéricas; chaves desconhecidas são ignoradas
func (w *WeekRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*w = NewWeekRecord()
	if raw == nil {
		return nil
	}

	for key, value := range raw {
		if key == FieldDeudasSocios {
			list, ok := value.([]any)
			if !ok {
				continue
			}
			for i := 0; i < len(list) && i < PartnerDebtSlots; i++ {
				if v, ok := toNumber(list[i]); ok {
					w.SetPartnerDebt(i, v)
				}
			}
			continue
		}

		if _, known := LookupField(key); !known {
			continue
		}
		if v, ok := toNumber(value); ok {
			w.Set(key, v)
		}
	}

	return nil
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		return ParseNumber(v)
	default:
		return 0, false
	}
}

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber interpreta o texto de um campo. Vazio ou não numérico retorna false;
// um prefixo numérico válido é aceito ("12abc" vale 12).
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	}

	prefix := numericPrefix.FindString(s)
	if prefix == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

var integerPrefix = regexp.MustCompile(`^[+-]?\d+`)

// ParseInteger lê só os dígitos iniciais ("10.9" e "1e1" valem 10 e 1)
func ParseInteger(raw string) (float64, bool) {
	digits := integerPrefix.FindString(strings.TrimSpace(raw))
	if digits == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Candidate é o conjunto de valores brutos vindos do formulário
type Candidate map[string]string

// UnmarshalJSON aceita valores numéricos ou texto; null descarta o campo
func (c *Candidate) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Candidate, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			out[key] = v
		case float64:
			out[key] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	*c = out
	return nil
}

// Number lê o campo como número; ausente ou inválido vale 0
func (c Candidate) Number(name string) float64 {
	v, _ := c.Lookup(name)
	return v
}

// Lookup lê o campo e indica se ele foi informado com um número válido
func (c Candidate) Lookup(name string) (float64, bool) {
	raw, ok := c[name]
	if !ok {
		return 0, false
	}
	return ParseNumber(raw)
}

// ToWeekRecord converte o candidato em semana usando o esquema de campos.
// Campos inteiros aproveitam só os dígitos iniciais.
func (c Candidate) ToWeekRecord() WeekRecord {
	week := NewWeekRecord()

	for _, field := range weekFields {
		raw, ok := c[field.Name]
		if !ok {
			continue
		}
		parse := ParseNumber
		if field.Type == Integer {
			parse = ParseInteger
		}
		if v, ok := parse(raw); ok {
			week.Set(field.Name, v)
		}
	}

	for i, input := range PartnerDebtInputs {
		if v, ok := c.Lookup(input); ok {
			week.SetPartnerDebt(i, v)
		}
	}

	return week
}

// CandidateFromWeek é o inverso de ToWeekRecord, usado para pré-preencher formulários
func CandidateFromWeek(w WeekRecord) Candidate {
	c := make(Candidate, len(w.Values)+PartnerDebtSlots)
	for k, v := range w.Values {
		c[k] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	for i, d := range w.PartnerDebts {
		if d != nil {
			c[PartnerDebtInputs[i]] = strconv.FormatFloat(*d, 'f', -1, 64)
		}
	}
	return c
}
