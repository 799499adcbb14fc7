package dashboard

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders a value as pt-BR currency: R$ 15.000,00
func FormatCurrency(v float64) string {
	return ptBR.Sprintf("R$ %.2f", v)
}

// FormatNumber renders an integer with pt-BR grouping: 15.000
func FormatNumber(v int64) string {
	return ptBR.Sprintf("%d", v)
}

// FormatAxisValue abbreviates large values for chart axis labels:
// 1500000 -> "1,5 mi", 15000 -> "15 mil", 950 -> "950"
func FormatAxisValue(v int64) string {
	switch {
	case v >= 1_000_000:
		return ptBR.Sprintf("%.1f mi", float64(v)/1_000_000)
	case v >= 1_000:
		return ptBR.Sprintf("%.0f mil", float64(v)/1_000)
	default:
		return ptBR.Sprintf("%d", v)
	}
}
