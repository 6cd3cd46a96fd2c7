// Command yxdbtool inspects and converts YXDB files from the shell: it can
// print a file's schema, and convert between YXDB and the pipe-delimited
// textual form (optionally gzip-compressed).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "yxdbtool",
		Short:         "Inspect and convert YXDB files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSchemaCmd())
	root.AddCommand(newToCSVCmd())
	root.AddCommand(newFromCSVCmd())

	return root
}
