package domain

// KPIBand é a faixa qualitativa de um KPI
type KPIBand string

const (
	BandExcellent KPIBand = "excellent"
	BandGood      KPIBand = "good"
	BandWarning   KPIBand = "warning"
	BandCritical  KPIBand = "critical"
	BandNeutral   KPIBand = "neutral"
)

// KPITarget são os limites de um KPI. Inverse indica que valores menores são melhores.
type KPITarget struct {
	Excellent float64 `json:"excellent"`
	Good      float64 `json:"good"`
	Warning   float64 `json:"warning"`
	Critical  float64 `json:"critical"`
	Inverse   bool    `json:"inverse"`
}

// TargetProgress é o percentual atingido em relação ao limite "good"
type TargetProgress struct {
	Percentage int  `json:"percentage"`
	Achieved   bool `json:"achieved"`
	Close      bool `json:"close"`
}

// KPIStatus é o resultado da classificação de um valor
type KPIStatus struct {
	Name     string          `json:"name"`
	Value    float64         `json:"value"`
	Band     KPIBand         `json:"band"`
	Progress *TargetProgress `json:"progress,omitempty"`
}

// ContextTone indica a leitura da variação em relação ao período anterior
type ContextTone string

const (
	TonePositive ContextTone = "positive"
	ToneNegative ContextTone = "negative"
	ToneNeutral  ContextTone = "neutral"
)

// ContextLabel é o texto de comparação exibido abaixo do KPI
type ContextLabel struct {
	Text string      `json:"text"`
	Tone ContextTone `json:"tone"`
}

// PeriodView indica se a comparação é entre meses ou contra o ano
type PeriodView int

const (
	MonthView PeriodView = iota
	YearView
)

// KPICard é um indicador pronto para exibição
type KPICard struct {
	ID           string       `json:"id"`
	Metric       string       `json:"metric"`
	Value        float64      `json:"value"`
	Formatted    string       `json:"formatted"`
	Previous     *float64     `json:"previous,omitempty"`
	LessIsBetter bool         `json:"lessIsBetter"`
	Context      ContextLabel `json:"context"`
	Status       KPIStatus    `json:"status"`
}

// KPIBoard é o conjunto de indicadores de um período
type KPIBoard struct {
	Period string    `json:"period"`
	Cards  []KPICard `json:"cards"`
}

// DefaultKPITargets retorna a tabela estática de metas
func DefaultKPITargets() map[string]KPITarget {
	return map[string]KPITarget{
		"ltv":                      {Excellent: 5000, Good: 3000, Warning: 2000, Critical: 1000},
		"ltvCacRatio":              {Excellent: 4, Good: 3, Warning: 2, Critical: 1},
		"cacPaybackPeriod":         {Excellent: 6, Good: 12, Warning: 18, Critical: 24, Inverse: true},
		"grossMargin":              {Excellent: 80, Good: 75, Warning: 70, Critical: 65},
		"churnRate":                {Excellent: 2, Good: 5, Warning: 8, Critical: 10, Inverse: true},
		"nrr":                      {Excellent: 110, Good: 100, Warning: 95, Critical: 90},
		"quickRatio":               {Excellent: 4, Good: 2, Warning: 1, Critical: 0.5},
		"mrrTotal":                 {Excellent: 10000, Good: 5000, Warning: 3000, Critical: 1500},
		"arr":                      {Excellent: 120000, Good: 60000, Warning: 36000, Critical: 18000},
		"npsSemanal":               {Excellent: 50, Good: 40, Warning: 30, Critical: 20},
		"healthScorePromedio":      {Excellent: 85, Good: 75, Warning: 65, Critical: 55},
		"csatScore":                {Excellent: 4.5, Good: 4.0, Warning: 3.5, Critical: 3.0},
		"uptimeAri":                {Excellent: 99.9, Good: 99.5, Warning: 99.0, Critical: 98.0},
		"errorRateAri":             {Excellent: 0.1, Good: 0.3, Warning: 0.5, Critical: 1.0, Inverse: true},
		"tiempoPromedioOnboarding": {Excellent: 3, Good: 5, Warning: 7, Critical: 10, Inverse: true},
		"ruleOf40":                 {Excellent: 50, Good: 40, Warning: 30, Critical: 20},
		"tasaConversionCierre":     {Excellent: 30, Good: 20, Warning: 15, Critical: 10},
		"tasaExitoDemos":           {Excellent: 80, Good: 70, Warning: 60, Critical: 50},
	}
}
