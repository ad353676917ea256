package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"schemasync/internal/comparator"
	"schemasync/internal/config"
	"schemasync/internal/database"
	"schemasync/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "schemasync",
	Short: "Compare the development and production schemas",
	Long: `schemasync probes the development and production databases of the
vacation-planning app, records table and storage-bucket structure, and
writes timestamped comparison reports plus a reviewable SQL sync script.
It never modifies either environment.

Connection URLs are read from DEV_DATABASE_URL and PROD_DATABASE_URL
(a .env file is honored). An optional schemasync.yaml can override the
candidate-table catalog, the fallback bucket catalog and the output
directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Interactive runs may narrow the probe set; CI runs probe everything.
	if isatty.IsTerminal(os.Stdin.Fd()) {
		tables, err := ui.SelectTables(cfg.CandidateTables)
		if err != nil {
			return err
		}
		cfg.CandidateTables = tables
	}

	devDB, err := database.Connect(cfg.Development)
	if err != nil {
		return fmt.Errorf("connecting to development: %w", err)
	}
	defer devDB.Close()
	color.Green("Connected to development")

	prodDB, err := database.Connect(cfg.Production)
	if err != nil {
		return fmt.Errorf("connecting to production: %w", err)
	}
	defer prodDB.Close()
	color.Green("Connected to production")

	comp := comparator.New(devDB, prodDB, cfg, comparator.ConsoleObserver{})
	return comp.Run(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("schemasync: %v", err)
		os.Exit(1)
	}
}
