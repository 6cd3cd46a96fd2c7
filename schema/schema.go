// Package schema implements the schema codec (component C): rendering and
// parsing the UTF-16LE XML metadata that describes a field.RecordInfo.
package schema

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/arloliu/yxdb/errs"
	"github.com/arloliu/yxdb/field"
)

// xmlMetaInfo, xmlRecordInfo and xmlField mirror the on-disk grammar from
// spec §4.6 exactly, so encoding/xml can marshal/unmarshal them directly;
// the UTF-16LE transcoding happens one layer up, outside this struct shape.
type xmlMetaInfo struct {
	XMLName    xml.Name      `xml:"MetaInfo"`
	RecordInfo xmlRecordInfo `xml:"RecordInfo"`
}

type xmlRecordInfo struct {
	Fields []xmlField `xml:"Field"`
}

type xmlField struct {
	Name        string `xml:"name,attr"`
	Type        string `xml:"type,attr"`
	Size        string `xml:"size,attr,omitempty"`
	Scale       string `xml:"scale,attr,omitempty"`
	Description string `xml:"description,attr,omitempty"`
}

// Encode renders schema as the UTF-16LE XML document described in spec
// §4.6, including the trailing "\n\0" terminator (a newline then a NUL,
// each as its own UTF-16 code unit).
func Encode(info field.RecordInfo) ([]byte, error) {
	doc := xmlMetaInfo{
		RecordInfo: xmlRecordInfo{Fields: make([]xmlField, len(info.Fields))},
	}
	for i, f := range info.Fields {
		xf := xmlField{Name: f.Name, Type: f.Type.String(), Description: f.Description}
		if f.Type.RequiresSize() {
			xf.Size = strconv.FormatUint(uint64(f.Size), 10)
		}
		if f.Type.RequiresScale() {
			xf.Scale = strconv.FormatUint(uint64(f.Scale), 10)
		}
		doc.RecordInfo.Fields[i] = xf
	}

	utf8Bytes, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrMalformedSchema, err)
	}

	units := utf16.Encode([]rune(string(utf8Bytes)))
	units = append(units, '\n', 0)

	out := make([]byte, len(units)*2)
	for i, u := range units {
		out[i*2] = byte(u)
		out[i*2+1] = byte(u >> 8)
	}

	return out, nil
}

// Decode parses a UTF-16LE XML document (as produced by Encode, including
// its "\n\0" terminator if present) back into a field.RecordInfo.
func Decode(data []byte) (field.RecordInfo, error) {
	if len(data)%2 != 0 {
		return field.RecordInfo{}, fmt.Errorf("%w: odd byte length %d", errs.ErrMalformedSchema, len(data))
	}

	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = uint16(data[i*2]) | uint16(data[i*2+1])<<8
	}

	// Strip a trailing "\n\0" terminator if present.
	if n := len(units); n >= 2 && units[n-1] == 0 && units[n-2] == '\n' {
		units = units[:n-2]
	}

	utf8Str := string(utf16.Decode(units))

	switch n := strings.Count(utf8Str, "<RecordInfo"); {
	case n == 0:
		return field.RecordInfo{}, errs.ErrNoRecordInfo
	case n > 1:
		return field.RecordInfo{}, errs.ErrMultipleRecordInfo
	}

	var doc xmlMetaInfo
	if err := xml.Unmarshal([]byte(utf8Str), &doc); err != nil {
		return field.RecordInfo{}, fmt.Errorf("%w: %w", errs.ErrMalformedSchema, err)
	}

	if len(doc.RecordInfo.Fields) == 0 {
		return field.RecordInfo{}, errs.ErrEmptyRecordInfo
	}

	fields := make([]field.Field, 0, len(doc.RecordInfo.Fields))
	for _, xf := range doc.RecordInfo.Fields {
		typ := field.ParseType(xf.Type)
		if typ == field.Unknown && xf.Type != "unknown" {
			return field.RecordInfo{}, fmt.Errorf("%w: %q", errs.ErrUnknownFieldType, xf.Type)
		}

		var mods []field.Modifier
		if xf.Size != "" {
			size, err := strconv.ParseUint(xf.Size, 10, 64)
			if err != nil {
				return field.RecordInfo{}, fmt.Errorf("%w: field %q size %q: %w", errs.ErrMalformedSchema, xf.Name, xf.Size, err)
			}
			mods = append(mods, field.WithSize(uint(size)))
		}
		if xf.Scale != "" {
			scale, err := strconv.ParseUint(xf.Scale, 10, 64)
			if err != nil {
				return field.RecordInfo{}, fmt.Errorf("%w: field %q scale %q: %w", errs.ErrMalformedSchema, xf.Name, xf.Scale, err)
			}
			mods = append(mods, field.WithScale(uint(scale)))
		}
		if xf.Description != "" {
			mods = append(mods, field.WithDescription(xf.Description))
		}

		f, err := field.NewBuilder(xf.Name, typ, mods...).Build()
		if err != nil {
			return field.RecordInfo{}, err
		}
		fields = append(fields, f)
	}

	return field.NewRecordInfo(fields...)
}

// ByteLen returns the number of bytes Encode(info) would produce, including
// the terminator — useful for computing metaInfoLength before the header is
// finalized.
func ByteLen(info field.RecordInfo) (int, error) {
	b, err := Encode(info)
	if err != nil {
		return 0, err
	}

	return len(b), nil
}
