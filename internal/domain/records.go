package domain

import "time"

// ValidationIssue aponta o campo com problema e a mensagem para o usuário
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UndoSnapshot guarda o valor anterior de uma semana sobrescrita
type UndoSnapshot struct {
	Month      string
	Week       int
	Prior      WeekRecord
	CapturedAt time.Time
}

// UndoStatus informa se há desfazer disponível
type UndoStatus struct {
	Available        bool       `json:"available"`
	Month            string     `json:"month,omitempty"`
	Week             *int       `json:"week,omitempty"`
	ExpiresAt        *time.Time `json:"expiresAt,omitempty"`
	RemainingSeconds int        `json:"remainingSeconds"`
}

// BackupVersion é a versão do formato de backup
const BackupVersion = "1.0"

// BackupPayload é o formato do arquivo de backup
type BackupPayload struct {
	BackupID      string                  `json:"backupId,omitempty"`
	DashboardData map[string]*MonthBucket `json:"dashboardData"`
	Logo          *string                 `json:"logo,omitempty"`
	ExportDate    string                  `json:"exportDate"`
	Version       string                  `json:"version"`
	AutoBackup    bool                    `json:"autoBackup,omitempty"`
}

// MonthProgress é o progresso de carga de um mês
type MonthProgress struct {
	Loaded     int `json:"loaded"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// DataProgress é o progresso global de carga das semanas
type DataProgress struct {
	Loaded           int                      `json:"loaded"`
	Total            int                      `json:"total"`
	Percentage       int                      `json:"percentage"`
	Pending          int                      `json:"pending"`
	MonthlyBreakdown map[string]MonthProgress `json:"monthlyBreakdown"`
}

// WeekSummary é uma linha da tabela de gestão de dados
type WeekSummary struct {
	Month          string   `json:"month"`
	Week           int      `json:"week"`
	WeekNumber     int      `json:"weekNumber"`
	HasData        bool     `json:"hasData"`
	FilledFields   int      `json:"filledFields"`
	TotalFields    int      `json:"totalFields"`
	Completeness   int      `json:"completeness"`
	LeadsRecibidos *float64 `json:"leadsRecibidos,omitempty"`
	CobranzaUSD    *float64 `json:"cobranzaUSD,omitempty"`
}

// WeekFilter são os filtros da tabela de gestão de dados
type WeekFilter struct {
	Month        string
	Week         *int
	Completeness string // "min-max"
	Search       string
}
