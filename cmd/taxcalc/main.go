// Command taxcalc runs the CIT estimator offline against an expense file.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "taxcalc",
		Short: "Offline Nigerian CIT estimator",
		Long: `taxcalc estimates Companies Income Tax and safe-to-spend cash from a revenue
figure and a YAML or JSON list of expense records, using the same rulesets as the API.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("ruleset", "", "ruleset version (default: the embedded default, or $TAXCALC_RULESET)")
	_ = viper.BindPFlag("ruleset", root.PersistentFlags().Lookup("ruleset"))
	viper.SetEnvPrefix("TAXCALC")
	_ = viper.BindEnv("ruleset")

	root.AddCommand(assessCmd())
	root.AddCommand(rulesetsCmd())
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
