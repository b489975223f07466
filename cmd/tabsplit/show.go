package main

import (
	"fmt"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/tabsplit/internal/models"
	"github.com/mmynk/tabsplit/internal/report"
	"github.com/mmynk/tabsplit/pkg/api"
	"github.com/mmynk/tabsplit/pkg/api/apiconnect"
)

func newShowCmd() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "show RECEIPT_ID",
		Short: "Fetch a stored receipt from a tabsplit server and print its split",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := apiconnect.NewReceiptServiceClient(&http.Client{Timeout: 10 * time.Second}, server)
			resp, err := client.GetReceipt(cmd.Context(), connect.NewRequest(&api.GetReceiptRequest{
				ReceiptId: args[0],
			}))
			if err != nil {
				return fmt.Errorf("failed to get receipt: %w", err)
			}

			if r := resp.Msg.Receipt; r != nil && r.Title != "" {
				fmt.Fprintln(cmd.OutOrStdout(), r.Title)
			}
			return report.WriteTable(cmd.OutOrStdout(), fromAPIBreakdown(resp.Msg.Breakdown))
		},
	}

	cmd.Flags().StringVar(&server, "server", "http://localhost:8080", "tabsplit server URL")
	return cmd
}

func fromAPIBreakdown(b *api.Breakdown) models.Breakdown {
	if b == nil {
		return models.Breakdown{}
	}
	out := models.Breakdown{Subtotal: b.Subtotal, Base: b.Base}
	for _, a := range b.Allocations {
		out.Allocations = append(out.Allocations, models.Allocation{
			ParticipantID: a.ParticipantId,
			Name:          a.Name,
			Subtotal:      a.ItemsTotal,
			Tax:           a.Tax,
			Service:       a.Service,
			Total:         a.Total,
		})
	}
	return out
}
