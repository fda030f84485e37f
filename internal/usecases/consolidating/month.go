package consolidating

import (
	"math"

	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
)

// Month consolida as 4 semanas de um mês com o meta e os valores padrão.
// Não altera o mês recebido; o chamador substitui o consolidado em cache.
func Month(bucket *domain.MonthBucket) *domain.Consolidated {
	meta := bucket.Meta.Merge()
	fields := domain.WeekFields()

	c := &domain.Consolidated{Period: bucket.Name}

	snapshots := make(map[string]float64)
	var debts [domain.PartnerDebtSlots]float64
	var debtProvided [domain.PartnerDebtSlots]bool
	fixedCostsProvided := false

	for _, week := range bucket.Weeks {
		if week.IsEmpty() {
			continue
		}

		for _, field := range fields {
			switch field.Kind {
			case domain.FlowField:
				v, ok := Resolve(week, field.Name)
				if !ok {
					continue
				}
				if field.Source == domain.DefaultMeta {
					fixedCostsProvided = true
				}
				*c.Field(field.Name) += v
			case domain.SnapshotField:
				if v, ok := week.Get(field.Name); ok {
					snapshots[field.Name] = v
				}
			}
		}

		for i, debt := range week.PartnerDebts {
			if debt != nil {
				debts[i] = *debt
				debtProvided[i] = true
			}
		}
	}

	if !fixedCostsProvided {
		c.GastosFijos = meta.GastosFijos
	}

	for i := range debts {
		if !debtProvided[i] {
			debts[i] = meta.DeudasSocios[i]
		}
	}
	c.DeudasSociosDetalle = debts
	c.DeudaSocios = 0
	for _, d := range debts {
		c.DeudaSocios += d
	}

	applySnapshots(c, fields, snapshots, meta)

	Derive(c)
	return c
}

func applySnapshots(c *domain.Consolidated, fields []domain.Field, snapshots map[string]float64, meta domain.MergedMeta) {
	for _, field := range fields {
		if field.Kind != domain.SnapshotField {
			continue
		}
		target := c.Field(field.Name)
		if v, ok := snapshots[field.Name]; ok {
			*target = v
			continue
		}

		switch field.Source {
		case domain.DefaultMeta:
			*target = metaValue(meta, field.Name)
		case domain.DefaultLiteral:
			*target = field.Default
		}
	}

	// padrões derivados dependem dos fluxos e uns dos outros, nessa ordem
	if _, ok := snapshots[domain.FieldClientesActivos100]; !ok {
		c.ClientesActivos100 = c.LeadsConvertidos * 3
	}
	if _, ok := snapshots[domain.FieldClientesActivos50]; !ok {
		c.ClientesActivos50 = math.Floor(c.ClientesActivos100 * 0.3)
	}
	c.ClientesActivosTotales = c.ClientesActivos100 + c.ClientesActivos50

	if _, ok := snapshots[domain.FieldCxc]; !ok {
		c.Cxc = c.CobranzaUSD * 0.15
	}
}

func metaValue(meta domain.MergedMeta, field string) float64 {
	switch field {
	case domain.FieldFormasLeads:
		return meta.FormasLeads
	case domain.FieldInversionTotal:
		return meta.InversionTotal
	case domain.FieldGastosFijos:
		return meta.GastosFijos
	}
	return 0
}
