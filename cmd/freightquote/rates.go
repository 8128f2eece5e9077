package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Inspect the active rate sheet",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var ratesCheckCmd = &cobra.Command{
	Use:         "check",
	Short:       "List rate entries that parsed to zero",
	Annotations: map[string]string{skipStrict: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		zeros := sheet.ZeroRates()
		w := cmd.OutOrStdout()
		if len(zeros) == 0 {
			fmt.Fprintf(w, "%s: all rate entries parsed\n", sheet.Name)
			return nil
		}
		for _, entry := range zeros {
			fmt.Fprintln(w, entry)
		}
		return fmt.Errorf("%d zero-valued rate entries in %q", len(zeros), sheet.Name)
	},
}

var ratesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the rate card terms",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), sheet.TermsText())
	},
}

func init() {
	ratesCmd.AddCommand(ratesCheckCmd)
	ratesCmd.AddCommand(ratesShowCmd)
}
