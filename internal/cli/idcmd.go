package cli

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/id"
)

func newIDCmd() *cobra.Command {
	var (
		count int
		seed  int64
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "id",
		Short: "Generate vertex identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("id: --count must be >= 1 (got %d)", count)
			}

			next := id.New
			if cmd.Flags().Changed("seed") {
				r := rand.New(rand.NewSource(seed))
				next = func() id.ID { return id.FromRand(r) }
			}

			w := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				writeID(w, next(), debug)
			}
			loggerFromContext(cmd.Context()).Debug("generated identifiers", "count", count)

			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for reproducible identifiers")
	cmd.Flags().BoolVar(&debug, "debug", false, "print the bracketed byte form")

	cmd.AddCommand(&cobra.Command{
		Use:   "parse <hex>",
		Short: "Decode an identifier and print both forms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := id.Parse(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			writeID(w, x, false)
			writeID(w, x, true)

			return nil
		},
	})

	return cmd
}

func writeID(w io.Writer, x id.ID, debug bool) {
	if debug {
		fmt.Fprintf(w, "%#v\n", x)
		return
	}
	fmt.Fprintln(w, x)
}
