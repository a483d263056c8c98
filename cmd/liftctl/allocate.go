package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

var allocateCmd = &cobra.Command{
	Use:   "allocate <entity>",
	Short: "Allocate the next reference for an entity",
	Long: `Allocate consumes and prints the next reference, e.g. INV042. With --peek
the reference is only previewed and the counter is left untouched.`,
	Example: `  liftctl allocate invoice
  liftctl allocate amc --peek`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: entityNames(),
	RunE:      runAllocate,
}

func init() {
	rootCmd.AddCommand(allocateCmd)

	allocateCmd.Flags().Bool("peek", false, "Preview without consuming")
}

func entityNames() []string {
	entities := reference.Entities()

	names := make([]string, len(entities))
	for i, e := range entities {
		names[i] = string(e)
	}

	return names
}

func runAllocate(cmd *cobra.Command, args []string) error {
	peek, _ := cmd.Flags().GetBool("peek")
	entity := reference.Entity(args[0])

	if _, err := reference.SchemeFor(entity); err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	var ref string
	if peek {
		ref, err = a.References.Peek(cmd.Context(), entity)
	} else {
		ref, err = a.References.Allocate(cmd.Context(), entity)
	}

	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ref)

	return nil
}
