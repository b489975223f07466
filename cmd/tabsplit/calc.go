package main

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/tabsplit/internal/receipt"
	"github.com/mmynk/tabsplit/internal/report"
)

func newCalcCmd() *cobra.Command {
	var tax, service, total string

	cmd := &cobra.Command{
		Use:   "calc FILE",
		Short: "Print each person's share of a bill described in a JSON file (- for stdin)",
		Example: `  tabsplit calc dinner.json
  tabsplit calc --tax 8.5 --service 12 dinner.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bill, err := loadBill(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("tax") {
				bill.Tax = text(tax)
			}
			if cmd.Flags().Changed("service") {
				bill.Service = text(service)
			}
			if cmd.Flags().Changed("total") {
				bill.Total = text(total)
			}

			return report.WriteTable(cmd.OutOrStdout(), receipt.Calculate(bill.toReceipt()))
		},
	}

	cmd.Flags().StringVar(&tax, "tax", "", "tax percent (overrides the file)")
	cmd.Flags().StringVar(&service, "service", "", "service percent (overrides the file)")
	cmd.Flags().StringVar(&total, "total", "", "declared bill total (overrides the file)")
	return cmd
}
