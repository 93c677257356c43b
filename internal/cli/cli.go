// Package cli implements the lvmesh command-line interface.
//
// The CLI is a thin driver over the library packages: it builds named
// vertices, links them at random and prints the result, and it can mint and
// parse identifiers. It is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - demo: build vertices from names, link them at random, print vertices,
//     links and the total edge count (or a Graphviz DOT document with --dot)
//   - id: generate identifiers (--count, --seed, --debug); id parse decodes one
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the command tree. Log output goes to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "lvmesh",
		Short:         "lvmesh builds and inspects concurrent in-memory vertex graphs",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lvmesh %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDemoCmd())
	root.AddCommand(newIDCmd())

	return root
}

// Execute runs the CLI with ctx and the given arguments.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}
