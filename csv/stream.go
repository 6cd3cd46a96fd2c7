package csv

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/arloliu/yxdb/field"
	"github.com/arloliu/yxdb/record"
)

// Records2CSV renders each record of records as a pipe-delimited row to w,
// one per line. The stage constructor name matches spec §6's
// record2csv(schema).
func Records2CSV(schema field.RecordInfo, w io.Writer) func(iter.Seq2[record.Record, error]) error {
	return func(records iter.Seq2[record.Record, error]) error {
		bw := bufio.NewWriter(w)
		for rec, err := range records {
			if err != nil {
				return err
			}
			line, err := RenderRow(rec, schema)
			if err != nil {
				return err
			}
			if _, err := bw.WriteString(line); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}

		return bw.Flush()
	}
}

// CSV2Records reads pipe-delimited rows from r, one per line, yielding
// records parsed against schema. The stage constructor name matches spec
// §6's csv2records(schema).
func CSV2Records(schema field.RecordInfo, r io.Reader) iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			rec, err := ParseRow(line, schema)
			if !yield(rec, err) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(nil, fmt.Errorf("reading csv: %w", err))
		}
	}
}
