package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/camoo/payment-api/api"
	"github.com/camoo/payment-api/domain"
)

func balanceCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current account balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}

			account, err := api.NewAccountAPI(client).Get(cmd.Context())
			if err != nil {
				return err
			}

			if flags.format == "pretty" {
				printAccount(account)
				return nil
			}
			return printJSON(os.Stdout, account.Map())
		},
	}
}

func printAccount(a *domain.Account) {
	fmt.Printf("Balance:   %s %s\n", a.Balance.Amount, a.Balance.Currency)
	fmt.Printf("Viewed at: %s\n", a.ViewedAt.Format(time.RFC3339))
}
