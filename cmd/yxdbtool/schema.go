package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/yxdb/csv"
	"github.com/arloliu/yxdb/stream"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <file.yxdb>",
		Short: "Print a YXDB file's schema as a pipe-delimited header line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := stream.GetMetadata(args[0])
			if err != nil {
				return fmt.Errorf("reading metadata: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), csv.RenderHeader(meta.Schema))
			fmt.Fprintf(cmd.OutOrStdout(), "# %d records, %d blocks\n", meta.Header.NumRecords, len(meta.Index))

			return nil
		},
	}
}
