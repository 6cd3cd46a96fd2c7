package field

import (
	"fmt"

	"github.com/arloliu/yxdb/errs"
)

// RecordInfo is the ordered, non-empty list of Field descriptors that
// determines a record's layout. Field names need not be unique; position is
// authoritative.
type RecordInfo struct {
	Fields []Field
}

// NewRecordInfo validates and wraps fields into a RecordInfo.
func NewRecordInfo(fields ...Field) (RecordInfo, error) {
	if len(fields) == 0 {
		return RecordInfo{}, errs.ErrEmptyRecordInfo
	}

	return RecordInfo{Fields: fields}, nil
}

// Len returns the number of fields.
func (r RecordInfo) Len() int { return len(r.Fields) }

// BitmapSize returns the size, in bytes, of the per-record null bitmap: one
// bit per field, rounded up to a whole byte.
func (r RecordInfo) BitmapSize() int {
	return (len(r.Fields) + 7) / 8
}

// FieldByName returns the first field with the given name, or an error if
// none matches.
func (r RecordInfo) FieldByName(name string) (Field, int, error) {
	for i, f := range r.Fields {
		if f.Name == name {
			return f, i, nil
		}
	}

	return Field{}, -1, fmt.Errorf("field %q not found", name)
}
