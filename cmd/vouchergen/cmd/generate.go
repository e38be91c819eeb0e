package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/onnk5188-hash/Bank-statement-generation/pkg/config"
	"github.com/onnk5188-hash/Bank-statement-generation/pkg/layout"
	"github.com/onnk5188-hash/Bank-statement-generation/pkg/mapping"
	"github.com/onnk5188-hash/Bank-statement-generation/pkg/pathutil"
	"github.com/onnk5188-hash/Bank-statement-generation/pkg/render"
	"github.com/onnk5188-hash/Bank-statement-generation/pkg/statement"
	"github.com/onnk5188-hash/Bank-statement-generation/pkg/voucher"
)

var (
	inputPath   string
	outputPath  string
	mappingPath string
	single      bool
	startNumber int
	perPage     int
	dryRun      bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate voucher PDFs from a bank statement",
	Long: `Generate journal vouchers from a bank-statement export.

This command:
1. Reads and normalizes the statement (CSV or XLSX)
2. Classifies each transaction into a debit/credit account pair
3. Builds sequentially numbered vouchers
4. Renders a paginated summary PDF, optionally one PDF per voucher

Example:
  vouchergen generate --input statement.csv
  vouchergen generate --input statement.csv --vouchers-per-page 2 --single
  vouchergen generate --input statement.csv --dry-run`,
	Run: runGenerate,
}

func init() {
	// Flags
	generateCmd.Flags().StringVar(&inputPath, "input", "", "bank statement file, CSV or XLSX (required)")
	generateCmd.Flags().StringVar(&outputPath, "output", "output/vouchers.pdf", "summary PDF output path")
	generateCmd.Flags().StringVar(&mappingPath, "mapping", "mapping.yaml", "summary-to-account mapping rules file")
	generateCmd.Flags().BoolVar(&single, "single", false, "also write one PDF per voucher")
	generateCmd.Flags().IntVar(&startNumber, "start-number", 0, "starting voucher number (overrides config)")
	generateCmd.Flags().IntVar(&perPage, "vouchers-per-page", 0, "vouchers per summary page, 2 or 3 (overrides config)")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "run the pipeline without writing any files")

	generateCmd.MarkFlagRequired("input")
}

func runGenerate(cmd *cobra.Command, args []string) {
	// Load configuration; explicit flags win over file values.
	cfg, err := config.Load(cfgFile)
	exitOnError(err, "failed to load configuration")

	if cmd.Flags().Changed("start-number") {
		cfg.StartNumber = startNumber
	}
	if cmd.Flags().Changed("vouchers-per-page") {
		cfg.VouchersPerPage = perPage
	}
	exitOnError(cfg.Validate(), "invalid configuration")

	rules, err := mapping.LoadRules(mappingPath)
	exitOnError(err, "failed to load mapping rules")
	slog.Debug("loaded mapping rules", "count", len(rules))

	rows, err := statement.Load(inputPath, cfg.FilterZero())
	exitOnError(err, "failed to read statement")
	slog.Info("normalized statement", "rows", len(rows))

	vouchers := voucher.Build(rows, rules, cfg.StartNumber, cfg.FallbackDebitAccount, cfg.FallbackCreditAccount)
	if len(vouchers) == 0 {
		fmt.Println("No vouchers to generate; check the statement content or the zero-amount filter.")
		return
	}
	slog.Info("built vouchers",
		"count", len(vouchers),
		"first", vouchers[0].Number,
		"last", vouchers[len(vouchers)-1].Number,
	)

	// Compute both layouts up front so configuration errors surface before
	// any file is written.
	margin := layout.MmToPt(cfg.MarginMM)
	spacing := layout.MmToPt(cfg.SpacingMM)

	placements, err := layout.Paginate(len(vouchers), cfg.VouchersPerPage, layout.A4Width, layout.A4Height, margin, spacing)
	exitOnError(err, "invalid page layout")

	singleBox, err := layout.SinglePage(layout.A4Width, layout.A4Height, margin)
	exitOnError(err, "invalid page layout")

	if dryRun {
		pages := placements[len(placements)-1].Page + 1
		fmt.Printf("Dry run: %d voucher(s) across %d page(s); no files written.\n", len(vouchers), pages)
		return
	}

	paths := pathutil.New(outputPath)
	exitOnError(paths.EnsureParentDir(paths.SummaryPath()), "failed to create output directory")

	renderer := render.New(cfg.CompanyName, cfg.FontPath)
	exitOnError(renderer.WriteSummary(vouchers, placements, paths.SummaryPath()), "failed to render summary document")
	fmt.Printf("Summary PDF written: %s\n", paths.SummaryPath())

	if single {
		exitOnError(paths.EnsureDir(paths.SingleDir()), "failed to create single-voucher directory")
		for _, v := range vouchers {
			exitOnError(renderer.WriteSingle(v, singleBox, paths.SinglePath(v.Number)), "failed to render voucher document")
		}
		fmt.Printf("Single voucher PDFs written: %s\n", paths.SingleDir())
	}
}
