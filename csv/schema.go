// Package csv implements the textual codec (component I): the pipe-
// delimited schema-line grammar and row grammar used to bridge YXDB records
// to and from a line-oriented text form.
package csv

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arloliu/yxdb/errs"
	"github.com/arloliu/yxdb/field"
)

var typeParamRe = regexp.MustCompile(`^([a-z]+)\(([0-9]+)(?:,([0-9]+))?\)$`)

// ParseHeader parses a pipe-delimited schema line, e.g.
// "month:date|market:int(16)|num_households:int(32)", into a RecordInfo.
func ParseHeader(line string) (field.RecordInfo, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return field.RecordInfo{}, errs.ErrMalformedCSVHeader
	}

	parts := strings.Split(line, "|")
	fields := make([]field.Field, 0, len(parts))

	for _, part := range parts {
		name, typeStr, ok := strings.Cut(part, ":")
		if !ok {
			return field.RecordInfo{}, fmt.Errorf("%w: %q missing ':'", errs.ErrMalformedCSVHeader, part)
		}

		f, err := parseFieldType(name, typeStr)
		if err != nil {
			return field.RecordInfo{}, err
		}
		fields = append(fields, f)
	}

	return field.NewRecordInfo(fields...)
}

func parseFieldType(name, typeStr string) (field.Field, error) {
	if m := typeParamRe.FindStringSubmatch(typeStr); m != nil {
		base, p1, p2 := m[1], m[2], m[3]

		switch base {
		case "int":
			width, err := strconv.Atoi(p1)
			if err != nil {
				return field.Field{}, fmt.Errorf("%w: %q", errs.ErrMalformedCSVType, typeStr)
			}

			typ, ok := intWidthType(width)
			if !ok {
				return field.Field{}, fmt.Errorf("%w: int(%d) is not a supported width", errs.ErrMalformedCSVType, width)
			}

			return field.NewBuilder(name, typ).Build()
		case "decimal":
			size, err1 := strconv.ParseUint(p1, 10, 64)
			scale, err2 := strconv.ParseUint(p2, 10, 64)
			if err1 != nil || err2 != nil || p2 == "" {
				return field.Field{}, fmt.Errorf("%w: %q", errs.ErrMalformedCSVType, typeStr)
			}

			return field.NewBuilder(name, field.FixedDecimal, field.WithSize(uint(size)), field.WithScale(uint(scale))).Build()
		case "string", "wstring", "vstring", "vwstring", "blob", "spatial":
			size, err := strconv.ParseUint(p1, 10, 64)
			if err != nil {
				return field.Field{}, fmt.Errorf("%w: %q", errs.ErrMalformedCSVType, typeStr)
			}

			typ := sizedType(base)

			return field.NewBuilder(name, typ, field.WithSize(uint(size))).Build()
		default:
			return field.Field{}, fmt.Errorf("%w: %q", errs.ErrMalformedCSVType, typeStr)
		}
	}

	switch typeStr {
	case "bool":
		return field.NewBuilder(name, field.Bool).Build()
	case "float":
		return field.NewBuilder(name, field.Float).Build()
	case "double":
		return field.NewBuilder(name, field.Double).Build()
	case "date":
		return field.NewBuilder(name, field.Date).Build()
	case "time":
		return field.NewBuilder(name, field.Time).Build()
	case "datetime":
		return field.NewBuilder(name, field.DateTime).Build()
	case "vstring":
		return field.NewBuilder(name, field.VString).Build()
	case "vwstring":
		return field.NewBuilder(name, field.VWString).Build()
	case "unknown":
		return field.NewBuilder(name, field.Unknown).Build()
	}

	return field.Field{}, fmt.Errorf("%w: %q", errs.ErrMalformedCSVType, typeStr)
}

func intWidthType(width int) (field.Type, bool) {
	switch width {
	case 8:
		return field.Byte, true
	case 16:
		return field.Int16, true
	case 32:
		return field.Int32, true
	case 64:
		return field.Int64, true
	default:
		return field.Unknown, false
	}
}

func sizedType(base string) field.Type {
	switch base {
	case "string":
		return field.String
	case "wstring":
		return field.WString
	case "vstring":
		return field.VString
	case "vwstring":
		return field.VWString
	case "blob":
		return field.Blob
	case "spatial":
		return field.SpatialObject
	}

	return field.Unknown
}

// RenderHeader is the inverse of ParseHeader: it renders a RecordInfo back
// to a pipe-delimited schema line (without a trailing newline).
func RenderHeader(info field.RecordInfo) string {
	parts := make([]string, len(info.Fields))
	for i, f := range info.Fields {
		parts[i] = f.Name + ":" + renderFieldType(f)
	}

	return strings.Join(parts, "|")
}

func renderFieldType(f field.Field) string {
	switch f.Type {
	case field.Byte:
		return "int(8)"
	case field.Int16:
		return "int(16)"
	case field.Int32:
		return "int(32)"
	case field.Int64:
		return "int(64)"
	case field.FixedDecimal:
		return fmt.Sprintf("decimal(%d,%d)", f.Size, f.Scale)
	case field.String, field.WString, field.Blob:
		return fmt.Sprintf("%s(%d)", f.Type, f.Size)
	case field.SpatialObject:
		return fmt.Sprintf("spatial(%d)", f.Size)
	case field.VString, field.VWString:
		return f.Type.String()
	case field.Bool, field.Float, field.Double, field.Date, field.Time, field.DateTime, field.Unknown:
		return f.Type.String()
	}

	return f.Type.String()
}
