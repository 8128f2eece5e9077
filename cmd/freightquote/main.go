package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"freightquote/internal/config"
	"freightquote/internal/logging"
	"freightquote/internal/ratesheet"
)

// skipStrict marks commands that must run even when the rate sheet fails the
// zero-rate audit.
const skipStrict = "skip-strict"

var (
	verbose   bool
	sheetPath string
	cardName  string

	cfg   config.Config
	log   *zap.Logger
	sheet *ratesheet.Sheet
)

var rootCmd = &cobra.Command{
	Use:   "freightquote",
	Short: "Price transloading and drayage quote requests",
	Long: `freightquote turns an inbound quote request and its extracted fields into
a priced quote, or a clarification draft when required fields are missing.

Examples:
  freightquote quote --reply reply.json request.eml
  freightquote reprocess --out results.json requests.json
  freightquote rates check`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&sheetPath, "rates", "", "rate sheet file, JSON or YAML (default RATE_SHEET_PATH or the embedded card)")
	rootCmd.PersistentFlags().StringVar(&cardName, "card", "", "rate card name (default RATE_CARD_NAME)")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(reprocessCmd)
	rootCmd.AddCommand(ratesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfg, err = config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logCfg := cfg.Logging()
	if verbose {
		logCfg.Level = "debug"
	}
	if log, err = logging.New(logCfg); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	if sheetPath == "" {
		sheetPath = cfg.RateSheetPath
	}
	if cardName == "" {
		cardName = cfg.RateCardName
	}
	if sheet, err = ratesheet.LoadFile(sheetPath, cardName); err != nil {
		return err
	}
	log.Debug("rate sheet loaded", zap.String("card", sheet.Name), zap.String("path", sheetPath))

	zeros := sheet.ZeroRates()
	if len(zeros) == 0 {
		return nil
	}
	log.Warn("rate sheet has zero-valued entries", zap.Strings("entries", zeros))
	if cfg.StrictRates && cmd.Annotations[skipStrict] == "" {
		return fmt.Errorf("STRICT_RATES: %d zero-valued rate entries: %s", len(zeros), strings.Join(zeros, ", "))
	}
	return nil
}
