package consolidating

import (
	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
)

// Year consolida os meses em ordem de calendário. Só entram nas somas os meses com
// leadsCalificados > 0; os snapshots vêm do último desses meses.
func Year(months []*domain.MonthBucket) *domain.Consolidated {
	fields := domain.WeekFields()
	year := &domain.Consolidated{Period: domain.YearViewLabel}

	var last *domain.Consolidated
	for _, bucket := range months {
		month := bucket.Consolidated
		if month == nil {
			month = Month(bucket)
		}
		if month.LeadsCalificados <= 0 {
			continue
		}

		for _, field := range fields {
			if field.Kind == domain.FlowField {
				*year.Field(field.Name) += *month.Field(field.Name)
			}
		}
		last = month
	}

	if last == nil {
		// sem meses com dados: mesmos padrões de um mês vazio
		last = Month(domain.NewMonthBucket(""))
	}
	copySnapshots(year, last, fields)

	if year.LeadsRecibidos == 0 {
		year.LeadsRecibidos = year.LeadsAds + year.LeadsOrganico + year.LeadsReferido
	}
	if year.LeadsConvertidos == 0 {
		year.LeadsConvertidos = year.ConvertidosAds + year.ConvertidosOrganico + year.ConvertidosReferido
	}

	Derive(year)
	return year
}

func copySnapshots(dst, src *domain.Consolidated, fields []domain.Field) {
	for _, field := range fields {
		if field.Kind == domain.SnapshotField {
			*dst.Field(field.Name) = *src.Field(field.Name)
		}
	}
	dst.ClientesActivosTotales = src.ClientesActivosTotales
	dst.DeudasSociosDetalle = src.DeudasSociosDetalle
	dst.DeudaSocios = src.DeudaSocios
}
