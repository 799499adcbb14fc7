package dashboard

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// periodLabels names the selector options as shown to the user
var periodLabels = map[string]string{
	"7d":    "Últimos 7 dias",
	"30d":   "Últimos 30 dias",
	"month": "Mês atual",
	"6m":    "Últimos 6 meses",
}

// Render produces the dashboard's text surface from a snapshot. Exactly
// one of three states renders: skeleton while any resource is still
// loading, an error banner (plus whatever partial data resolved) when a
// fetch failed, or the full dashboard.
func Render(snap Snapshot, tableSort TableSort) string {
	var b strings.Builder

	label := periodLabels[string(snap.Period)]
	fmt.Fprintf(&b, "NOLA ANALYTICS — %s\n\n", label)

	if snap.Loading {
		renderSkeleton(&b)
		return b.String()
	}

	if snap.Err != nil {
		fmt.Fprintf(&b, "!! %s\n\n", snap.Err.Error())
	}

	renderCards(&b, snap)
	renderRevenue(&b, snap)
	renderProducts(&b, snap, tableSort)

	return b.String()
}

func renderSkeleton(b *strings.Builder) {
	b.WriteString("  ░░░░░░░░░░  ░░░░░░░░░░  ░░░░░░░░░░\n")
	b.WriteString("  ░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░\n")
	b.WriteString("  carregando...\n")
}

func renderCards(b *strings.Builder, snap Snapshot) {
	if snap.General.Data != nil {
		g := snap.General.Data
		fmt.Fprintf(b, "Faturamento Total  %s\n", FormatCurrency(float64(g.TotalRevenue)))
		fmt.Fprintf(b, "Total de Vendas    %s\n", FormatNumber(g.TotalSales))
		fmt.Fprintf(b, "Ticket Médio       %s\n", FormatCurrency(g.AvgTicket))
	}
	fmt.Fprintf(b, "Horário de Pico    %s\n\n", snap.PeakHour)
}

func renderRevenue(b *strings.Builder, snap Snapshot) {
	if len(snap.OrderedRevenue) == 0 {
		return
	}
	b.WriteString("Faturamento por dia da semana\n")
	for _, p := range snap.OrderedRevenue {
		fmt.Fprintf(b, "  %-4s %s\n", p.Name, FormatAxisValue(p.Revenue))
	}
	b.WriteString("\n")
}

func renderProducts(b *strings.Builder, snap Snapshot, tableSort TableSort) {
	if len(snap.Products.Data) == 0 {
		return
	}
	b.WriteString("Produtos mais vendidos\n")
	w := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  %s\t%s\t%s\n",
		header("Produto", ColumnName, tableSort),
		header("Vendas", ColumnSales, tableSort),
		header("Faturamento", ColumnRevenue, tableSort),
	)
	for _, p := range tableSort.Apply(snap.Products.Data) {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", p.Name, FormatNumber(p.Sales), FormatCurrency(float64(p.Revenue)))
	}
	w.Flush()
}

// header marks the active sort column with a direction arrow
func header(label string, col Column, s TableSort) string {
	if s.Key != col {
		return label
	}
	if s.Direction == SortAsc {
		return label + " ↑"
	}
	return label + " ↓"
}
