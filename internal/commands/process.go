package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/humblebees/bankjournal/internal/domain/categorization"
	journalexport "github.com/humblebees/bankjournal/internal/domain/export/journal"
	"github.com/humblebees/bankjournal/internal/domain/export/tally"
	"github.com/humblebees/bankjournal/internal/domain/ledger"
	"github.com/humblebees/bankjournal/internal/domain/statement/service"
	"github.com/humblebees/bankjournal/internal/domain/statement/source"
	"github.com/humblebees/bankjournal/pkg/config"
)

func newProcessCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "process [file or directory]",
		Short: "Process statement text files into journal and voucher exports",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			input := cfg.Paths.InputDir
			if len(args) > 0 {
				input = args[0]
			}
			if outputDir == "" {
				outputDir = cfg.Paths.OutputDir
			}

			paths, err := collectStatements(input)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no statement text files under %s", input)
			}

			return runProcess(cmd.Context(), cfg, paths, outputDir, newLogger())
		},
	}

	cmd.Flags().StringVar(&outputDir, "output", "", "output directory (defaults to OUTPUT_DIR)")

	return cmd
}

// collectStatements resolves the input argument to statement text files: a
// file is taken as-is, a directory contributes its .txt entries.
func collectStatements(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input %s: %w", input, err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("read input dir %s: %w", input, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !strings.EqualFold(ext, ".txt") && !strings.EqualFold(ext, ".xlsx") {
			continue
		}
		// Never re-ingest our own voucher exports.
		if strings.HasSuffix(entry.Name(), " Tally.xlsx") {
			continue
		}
		paths = append(paths, filepath.Join(input, entry.Name()))
	}
	return paths, nil
}

// runProcess runs the pipeline over every statement and writes the export
// pair for each result.
func runProcess(ctx context.Context, cfg *config.Config, paths []string, outputDir string, logger *slog.Logger) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	rules, err := categorization.RulesByName(cfg.Rules.RuleSet)
	if err != nil {
		return err
	}

	svc := service.NewService(source.NewAutoSource(), rules, configuredLedgers(cfg), logger)
	svc.OverrideBankLedgers(cfg.Ledgers.BankOverrides)
	result := svc.ProcessBatch(ctx, paths)

	for _, stmt := range result.Statements {
		stem := strings.TrimSuffix(filepath.Base(stmt.Path), filepath.Ext(stmt.Path))

		csvPath := filepath.Join(outputDir, stem+" Journal.csv")
		if err := journalexport.Write(stmt, csvPath); err != nil {
			return err
		}

		xlsxPath := filepath.Join(outputDir, stem+" Tally.xlsx")
		if err := tally.Write(stmt, xlsxPath); err != nil {
			return err
		}

		fmt.Printf("Processed %s: %d transactions (%s, %s)\n",
			stmt.Path, len(stmt.Classified), stmt.Context.Bank, stmt.Context.AccountHolder)
	}

	for _, msg := range result.Errors {
		fmt.Fprintf(os.Stderr, "skipped: %s\n", msg)
	}

	if len(result.Statements) == 0 {
		return fmt.Errorf("all %d statements failed", len(result.Errors))
	}
	return nil
}

// configuredLedgers applies environment overrides on top of the stock
// ledger names.
func configuredLedgers(cfg *config.Config) ledger.Ledgers {
	ledgers := ledger.DefaultLedgers()
	ledgers.Bank = cfg.Ledgers.Bank
	ledgers.Sales = cfg.Ledgers.Sales
	ledgers.Purchase = cfg.Ledgers.Purchase
	for key, name := range cfg.Ledgers.Overrides {
		ledgers.Categories[categorization.Category(key)] = name
	}
	return ledgers
}
