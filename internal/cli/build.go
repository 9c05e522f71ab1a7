// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopblocks/codec"
	"github.com/katalvlaran/hopblocks/hopping"
	"github.com/katalvlaran/hopblocks/lattice"
)

var buildCmd = &cobra.Command{
	Use:   "build [config.toml]",
	Short: "Assemble hopping blocks from a lattice config",
	Long: `Reads a TOML lattice description, assembles the hopping blocks over the
configured box and prints a per-family summary. With --out the store is
written as a CBOR snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

// Flags for the build command.
var (
	buildOut       string
	buildValidate  bool
	buildNoReserve bool
)

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "Write a CBOR snapshot to this file")
	buildCmd.Flags().BoolVar(&buildValidate, "validate", false, "Check index bounds and duplicate coordinates")
	buildCmd.Flags().BoolVar(&buildNoReserve, "no-reserve", false, "Skip per-family reservation")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	log := logger(cmd)

	cfg, err := LoadConfig(args[0])
	if err != nil {
		return err
	}
	lat, shape, err := cfg.Lattice()
	if err != nil {
		return err
	}

	store, err := lattice.Build(lat, shape,
		lattice.WithLogger(log),
		lattice.WithValidate(buildValidate),
		lattice.WithReserve(!buildNoReserve),
	)
	if err != nil {
		return err
	}

	printSummary(cmd, store, lat.Energies())

	if buildOut != "" {
		if err := writeSnapshot(buildOut, store); err != nil {
			return err
		}
		log.Info().Str("path", buildOut).Msg("snapshot written")
	}

	return nil
}

// writeSnapshot encodes store into path. A failed Close is reported, since
// it can be the first sign of an unflushed write.
func writeSnapshot(path string, store *hopping.Store) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close snapshot %s: %w", path, cerr)
		}
	}()

	return codec.Write(f, store)
}

// printSummary writes the store shape and per-family entry counts.
// energies may be nil when unknown (snapshots carry no energies).
func printSummary(cmd *cobra.Command, store *hopping.Store, energies []float64) {
	cmd.Printf("sites:    %d\n", store.NumSites())
	cmd.Printf("families: %d\n", store.NumFamilies())
	cmd.Printf("nnz:      %d\n", store.NNZ())
	for id, block := range store.All() {
		line := fmt.Sprintf("  family %d: %d entries", id, len(block))
		if id < len(energies) {
			line += fmt.Sprintf(" (energy %g)", energies[id])
		}
		cmd.Println(line)
	}
}
