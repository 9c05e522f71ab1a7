// SPDX-License-Identifier: MIT

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopblocks/codec"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [snapshot.cbor]",
	Short: "Summarize a CBOR snapshot",
	Long:  `Decodes and validates a snapshot, prints its summary and, with --rows, the CSR rows.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

// inspectRows limits how many CSR rows are printed (0 prints none).
var inspectRows int

func init() {
	inspectCmd.Flags().IntVar(&inspectRows, "rows", 0, "Print the first N rows in CSR form")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	store, err := codec.Read(f)
	if err != nil {
		return err
	}
	printSummary(cmd, store, nil)

	if inspectRows > 0 {
		m := store.ToCSR()
		for i := 0; i < min(inspectRows, m.N); i++ {
			cols, families := m.Row(i)
			cmd.Printf("  row %d: cols=%v families=%v\n", i, cols, families)
		}
	}

	return nil
}
