// Package cli wires the payment facades into the camoo-payment command.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/camoo/payment-api/api"
	"github.com/camoo/payment-api/internal/buildinfo"
	"github.com/camoo/payment-api/internal/config"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	debug      bool
	configPath string
	format     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "camoo-payment",
		Short:        "camoo-payment — Camoo Payment API client",
		Version:      buildinfo.String(),
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable verbose request logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a YAML profile file (credentials also read from CAMOO_* env vars)")
	cmd.PersistentFlags().StringVar(&flags.format, "format", "json", "output format: json|pretty")

	cmd.AddCommand(
		balanceCmd(flags),
		cashoutCmd(flags),
		verifyCmd(flags),
	)
	return cmd
}

// newClient resolves credentials and builds the API client shared by every
// subcommand.
func (f *rootFlags) newClient() (*api.Client, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if f.debug || cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []api.ClientOption{
		api.WithDebug(f.debug || cfg.Debug),
		api.WithLogger(logger),
	}
	if cfg.APIVersion != "" {
		opts = append(opts, api.WithVersion(cfg.APIVersion))
	}
	return api.NewClient(cfg.APIKey, cfg.APISecret, opts...), nil
}
