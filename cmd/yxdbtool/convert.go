package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/yxdb/csv"
	"github.com/arloliu/yxdb/stream"
)

func newToCSVCmd() *cobra.Command {
	var gz bool

	cmd := &cobra.Command{
		Use:   "to-csv <in.yxdb> <out.csv>",
		Short: "Convert a YXDB file to the pipe-delimited textual form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := stream.GetMetadata(args[0])
			if err != nil {
				return fmt.Errorf("reading metadata: %w", err)
			}

			out, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			defer out.Close()

			var w io.Writer = out
			if gz || strings.HasSuffix(args[1], ".gz") {
				gw := csv.NewGzipWriter(out)
				defer gw.Close()
				w = gw
			}

			if _, err := fmt.Fprintln(w, csv.RenderHeader(meta.Schema)); err != nil {
				return fmt.Errorf("writing header: %w", err)
			}

			sink := csv.Records2CSV(meta.Schema, w)

			return sink(stream.SourceFileRecords(args[0]))
		},
	}
	cmd.Flags().BoolVar(&gz, "gzip", false, "gzip-compress the output regardless of file extension")

	return cmd
}

func newFromCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-csv <in.csv> <out.yxdb>",
		Short: "Convert a pipe-delimited textual file to a YXDB file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer in.Close()

			var r io.Reader = in
			if strings.HasSuffix(args[0], ".gz") {
				gr, err := csv.OpenGzipReader(in)
				if err != nil {
					return err
				}
				defer gr.Close()
				r = gr
			}

			br := newLineReader(r)
			headerLine, err := br.ReadLine()
			if err != nil {
				return fmt.Errorf("reading header line: %w", err)
			}

			schema, err := csv.ParseHeader(headerLine)
			if err != nil {
				return err
			}

			out, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			defer out.Close()

			records := csv.CSV2Records(schema, br)

			return stream.SinkRecords(out, schema, records)
		},
	}
}
