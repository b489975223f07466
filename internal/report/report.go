// Package report renders breakdowns for display.
package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tabsplit/internal/models"
)

// FormatAmount formats an amount with 2 decimals. NaN and infinities render as "0.00".
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// WriteTable writes the results table for a breakdown.
// Rows are independently rounded; their sum may differ from the bill by a cent.
func WriteTable(w io.Writer, b models.Breakdown) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Name\tItems Total\tTax\tService\tTotal\t")
	for _, a := range b.Allocations {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			a.Name,
			FormatAmount(a.Subtotal),
			FormatAmount(a.Tax),
			FormatAmount(a.Service),
			FormatAmount(a.Total),
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
