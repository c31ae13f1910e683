package view

import (
	"context"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/garagemleilao/caixa/internal/transaction"
)

const extractTimeout = time.Minute

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatAmount renders an amount as Brazilian reais, e.g. "-R$ 1.234,50".
func FormatAmount(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}

	return sign + brl.Sprintf("R$ %.2f", d.Abs().Round(2).InexactFloat64())
}

// RecordsTable lays records out the way they would land in the table.
func RecordsTable(records []transaction.Record) string {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{r.Car, FormatAmount(r.Amount), string(r.Type), string(r.Category), r.Description, string(r.CarStatus)}
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	amount := cell.Align(lipgloss.Right)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("CARRO", "VALOR", "TIPO", "CATEGORIA", "DESCRICAO", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 1:
				return amount
			default:
				return cell
			}
		}).
		String()
}

// extractCtx returns a context with a standard timeout for model calls.
func extractCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), extractTimeout)
}
