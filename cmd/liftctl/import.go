package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/liftdesk/internal/bulk"
)

var importCmd = &cobra.Command{
	Use:   "import <kind> <file>",
	Short: "Import a CSV or XLSX file",
	Long: `Import creates one record per spreadsheet row. Rows that fail are reported
with their row number and column; the remaining rows are still imported.

Kinds: ` + kindList(),
	Example: `  liftctl import customers customers.xlsx
  liftctl import payments "April receipts.csv" --strict`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().Bool("strict", false, "Exit with an error when any row failed")
}

func kindList() string {
	kinds := bulk.Kinds()

	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}

	return strings.Join(names, ", ")
}

func runImport(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")

	kind, err := bulk.ParseKind(args[0])
	if err != nil {
		return fmt.Errorf("%w (kinds: %s)", err, kindList())
	}

	f, err := os.Open(args[1])
	if err != nil {
		return err
	}
	defer f.Close()

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	report, err := a.Import.Import(cmd.Context(), kind, filepath.Base(args[1]), f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d rows: %d imported, %d failed\n", report.Total, report.Succeeded, report.Failed)

	if len(report.Errors) > 0 {
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ROW\tCOLUMN\tCODE\tMESSAGE")

		for _, e := range report.Errors {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Row, e.Column, e.Code, e.Message)
		}

		tw.Flush()

		if report.Truncated {
			fmt.Fprintln(out, "(more errors not shown)")
		}
	}

	if strict && report.Failed > 0 {
		return fmt.Errorf("%d rows failed", report.Failed)
	}

	return nil
}
