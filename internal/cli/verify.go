package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/camoo/payment-api/api"
	"github.com/camoo/payment-api/domain"
)

func verifyCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <id>",
		Short: "Fetch the current state of a payment by its identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}

			payment, err := api.NewPaymentAPI(client).Verify(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if flags.format == "pretty" {
				printPayment(payment)
				return nil
			}
			return printJSON(os.Stdout, payment.Map())
		},
	}
}

func printPayment(p *domain.Payment) {
	fmt.Printf("Payment:   %s\n", p.ID)
	fmt.Printf("Amount:    %s %s\n", p.Amount.Amount, p.Amount.Currency)
	fmt.Printf("Network:   %s\n", p.Network)
	fmt.Printf("Status:    %s\n", p.Status)
	fmt.Printf("Created:   %s\n", p.CreatedAt.Format(time.RFC3339))
	if p.Fees != nil {
		fmt.Printf("Fees:      %s\n", p.Fees)
	}
	if p.NetAmount != nil {
		fmt.Printf("Net:       %s\n", p.NetAmount)
	}
	if p.CompletedAt != nil {
		fmt.Printf("Completed: %s\n", p.CompletedAt.Format(time.RFC3339))
	}
	if p.PhoneNumber != "" {
		fmt.Printf("Phone:     %s\n", p.PhoneNumber)
	}
}

func printJSON(w io.Writer, payload map[string]any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
