package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"console-currency/internal/clients/nbp"
	"console-currency/internal/console"
	ratessvc "console-currency/internal/service/rates"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(ctx).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(ctx context.Context) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:          "currency",
		Short:        "NBP table A exchange rate viewer",
		Version:      "v1.0.0",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(ctx, cmd, days)
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "number of days to fetch (1-10); prompted for when omitted")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, days int) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client := nbp.New(cfg.HTTPTimeout)
	if cfg.BaseURL != "" {
		client.BaseURL = cfg.BaseURL
	}

	it := console.NewInteraction(cmd.InOrStdin(), cmd.OutOrStdout(), ratessvc.New(client))

	// Invalid input ends the run gracefully, before any network call.
	if days == 0 {
		days, err = it.PromptDays()
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
			return nil
		}
	} else if days < 1 || days > ratessvc.MaxDays {
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", ratessvc.ErrInvalidDays)
		return nil
	}

	return it.Run(ctx, days)
}
