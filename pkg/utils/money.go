package utils

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Cobrança BCV é exibida em bolívares no formato es-VE, sem conversão
var vesFormatter = money.NewFormatter(2, ",", ".", "Bs.", "$ 1")

// FormatUSD formata em dólares sem casas decimais: 1234.56 vira "$1,235"
func FormatUSD(v float64) string {
	cur := money.GetCurrency(money.USD)
	return formatAmount(v, money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template))
}

// FormatVES formata em bolívares com duas casas: 1234.5 vira "Bs. 1.234,50"
func FormatVES(v float64) string {
	return formatAmount(v, vesFormatter)
}

// FormatNumber agrupa milhares e mantém até 3 casas decimais significativas
func FormatNumber(v float64) string {
	d := decimal.NewFromFloat(v).Round(3)

	fraction := 0
	if s := d.String(); strings.Contains(s, ".") {
		fraction = len(s) - strings.Index(s, ".") - 1
	}

	return formatAmount(v, money.NewFormatter(fraction, ".", ",", "", "1"))
}

// FormatFixed formata com um número fixo de casas decimais
func FormatFixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

func formatAmount(v float64, f *money.Formatter) string {
	fraction := int32(f.Fraction)
	minor := decimal.NewFromFloat(v).Round(fraction).Shift(fraction)
	return f.Format(minor.IntPart())
}
