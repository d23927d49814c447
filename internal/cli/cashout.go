package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/camoo/payment-api/api"
)

func cashoutCmd(flags *rootFlags) *cobra.Command {
	var amount float64
	var phone string
	var network string
	var country string
	var notifyURL string

	c := &cobra.Command{
		Use:   "cashout",
		Short: "Initiate a cash-out to a mobile money number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}

			payload := map[string]any{
				"amount":       amount,
				"phone_number": phone,
				"network":      network,
			}
			if country != "" {
				payload["country"] = country
			}
			if notifyURL != "" {
				payload["notification_url"] = notifyURL
			}

			payment, err := api.NewPaymentAPI(client).Cashout(cmd.Context(), payload)
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

	c.Flags().Float64Var(&amount, "amount", 0, "amount to pay out (required)")
	c.Flags().StringVar(&phone, "phone", "", "recipient phone number (required)")
	c.Flags().StringVar(&network, "network", "", "mobile money network, e.g. MTN (required)")
	c.Flags().StringVar(&country, "country", "", "recipient country code (optional)")
	c.Flags().StringVar(&notifyURL, "notify-url", "", "webhook notified on completion (optional)")

	_ = c.MarkFlagRequired("amount")
	_ = c.MarkFlagRequired("phone")
	_ = c.MarkFlagRequired("network")
	return c
}
