package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/liftdesk/internal/sweep"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Recompute date-driven statuses of AMCs, invoices and quotations",
	Example: `  # One pass, then exit
  liftctl sweep

  # Keep sweeping every 30 minutes until interrupted
  liftctl sweep --every 30m`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().Duration("every", 0, "Repeat at this interval until interrupted")
}

func runSweep(cmd *cobra.Command, _ []string) error {
	every, _ := cmd.Flags().GetDuration("every")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if every > 0 {
		sweep.NewRunner(a.Sweep, every).Start(ctx)
		return nil
	}

	summary, err := a.Sweep.RunOnce(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if summary.Skipped {
		fmt.Fprintln(out, "skipped: another sweep is running")
		return nil
	}

	names := make([]string, 0, len(summary.Updated))
	for name := range summary.Updated {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(out, "%-10s %d updated\n", name, summary.Updated[name])
	}

	return nil
}
