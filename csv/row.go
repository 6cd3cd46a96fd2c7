package csv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/yxdb/errs"
	"github.com/arloliu/yxdb/field"
	"github.com/arloliu/yxdb/record"
)

// ParseRow parses one pipe-delimited, unquoted UTF-8 row against schema.
// Missing trailing fields and empty fields are both null.
func ParseRow(line string, schema field.RecordInfo) (record.Record, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.Split(line, "|")

	rec := make(record.Record, schema.Len())
	for i, f := range schema.Fields {
		if i >= len(parts) || parts[i] == "" {
			rec[i] = field.Null()

			continue
		}

		ov, err := parseCell(parts[i], f)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		rec[i] = ov
	}

	return rec, nil
}

func parseCell(s string, f field.Field) (field.OptionalValue, error) {
	switch f.Type {
	case field.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return field.OptionalValue{}, fmt.Errorf("%w: %w", errs.ErrCSVFieldParse, err)
		}

		return field.BoolValue(b), nil
	case field.Byte, field.Int16, field.Int32, field.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return field.OptionalValue{}, fmt.Errorf("%w: %w", errs.ErrCSVFieldParse, err)
		}

		return field.IntValue(n), nil
	case field.Float:
		n, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return field.OptionalValue{}, fmt.Errorf("%w: %w", errs.ErrCSVFieldParse, err)
		}

		return field.FloatValue(float32(n)), nil
	case field.Double, field.FixedDecimal:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return field.OptionalValue{}, fmt.Errorf("%w: %w", errs.ErrCSVFieldParse, err)
		}

		return field.DoubleValue(n), nil
	case field.String, field.WString, field.VString, field.VWString, field.Date, field.Time, field.DateTime:
		return field.StringValue(s), nil
	case field.Blob, field.SpatialObject:
		return field.BytesValue([]byte(s)), nil
	case field.Unknown:
		return field.OptionalValue{}, fmt.Errorf("%w: unknown field type for %q", errs.ErrCSVFieldParse, s)
	}

	return field.OptionalValue{}, fmt.Errorf("%w: unsupported field type", errs.ErrCSVFieldParse)
}

// RenderRow is the inverse of ParseRow: it renders rec as one pipe-
// delimited row (without a trailing newline). Null fields render as the
// empty string.
func RenderRow(rec record.Record, schema field.RecordInfo) (string, error) {
	if len(rec) != schema.Len() {
		return "", errs.ErrFieldCountMismatch
	}

	parts := make([]string, len(rec))
	for i, f := range schema.Fields {
		if !rec[i].Valid {
			continue
		}
		parts[i] = renderCell(rec[i].Value, f)
	}

	return strings.Join(parts, "|"), nil
}

func renderCell(v field.Value, f field.Field) string {
	switch f.Type {
	case field.Bool:
		return strconv.FormatBool(v.Bool)
	case field.Byte, field.Int16, field.Int32, field.Int64:
		return strconv.FormatInt(v.Int, 10)
	case field.Float:
		return strconv.FormatFloat(float64(v.F32), 'g', -1, 32)
	case field.Double:
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	case field.FixedDecimal:
		return strconv.FormatFloat(v.F64, 'f', int(f.Scale), 64)
	case field.String, field.WString, field.VString, field.VWString, field.Date, field.Time, field.DateTime:
		return v.Str
	case field.Blob, field.SpatialObject:
		return string(v.Bytes)
	case field.Unknown:
		return ""
	}

	return ""
}
