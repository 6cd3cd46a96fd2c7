// Package field implements the typed field codec (component A): encoding
// and decoding a single FieldValue given its Field descriptor, and the
// Field/RecordInfo descriptors themselves.
package field

// Type is the closed set of field types a YXDB record field may declare.
// Every switch over Type must be exhaustive — there is no default case, per
// the "no default case" redesign rule: an unhandled Type is a compile-time
// reminder, not a silent fallthrough.
type Type uint8

const (
	Unknown Type = iota
	Bool
	Byte
	Int16
	Int32
	Int64
	FixedDecimal
	Float
	Double
	String
	WString
	VString
	VWString
	Date
	Time
	DateTime
	Blob
	SpatialObject
)

// String renders the lower-case spelling used by the XML schema codec. The
// textual schema grammar (csv package) shares it for the unparameterised
// types and for string/wstring/blob, but spells integers as int(N),
// fixed decimals as decimal(size,scale) and spatial objects as spatial(N).
func (t Type) String() string {
	switch t {
	case Bool:
		return "bool"
	case Byte:
		return "byte"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case FixedDecimal:
		return "fixeddecimal"
	case Float:
		return "float"
	case Double:
		return "double"
	case String:
		return "string"
	case WString:
		return "wstring"
	case VString:
		return "vstring"
	case VWString:
		return "vwstring"
	case Date:
		return "date"
	case Time:
		return "time"
	case DateTime:
		return "datetime"
	case Blob:
		return "blob"
	case SpatialObject:
		return "spatialobj"
	case Unknown:
		return "unknown"
	}

	return "unknown"
}

// ParseType parses the lower-case spelling back into a Type. Unknown
// spellings map to Unknown rather than erroring, since "unknown" is itself a
// legitimate member of the closed set (a field whose type the reference
// writer could not represent).
func ParseType(s string) Type {
	switch s {
	case "bool":
		return Bool
	case "byte":
		return Byte
	case "int16":
		return Int16
	case "int32":
		return Int32
	case "int64":
		return Int64
	case "fixeddecimal":
		return FixedDecimal
	case "float":
		return Float
	case "double":
		return Double
	case "string":
		return String
	case "wstring":
		return WString
	case "vstring":
		return VString
	case "vwstring":
		return VWString
	case "date":
		return Date
	case "time":
		return Time
	case "datetime":
		return DateTime
	case "blob":
		return Blob
	case "spatialobj":
		return SpatialObject
	}

	return Unknown
}

// RequiresSize reports whether the type's Field descriptor must carry a
// Size.
func (t Type) RequiresSize() bool {
	switch t {
	case String, WString, Blob, SpatialObject, FixedDecimal:
		return true
	case Unknown, Bool, Byte, Int16, Int32, Int64, Float, Double,
		VString, VWString, Date, Time, DateTime:
		return false
	}

	return false
}

// RequiresScale reports whether the type's Field descriptor must carry a
// Scale. FixedDecimal is the only such type.
func (t Type) RequiresScale() bool {
	return t == FixedDecimal
}

// FixedWidth returns the on-disk byte width of a fixed-width field value
// (everything except VString/VWString/Unknown, whose width depends on
// either the value itself or is undefined), given the field's Size/Scale.
// The bool return is false for variable-width or undefined-width types.
func (t Type) FixedWidth(size, scale uint) (int, bool) {
	switch t {
	case Bool, Byte:
		return 1, true
	case Int16:
		return 2, true
	case Int32, Float:
		return 4, true
	case Int64, Double:
		return 8, true
	case String:
		return int(size), true
	case WString:
		return int(size) * 2, true
	case FixedDecimal:
		return int(size), true
	case Blob, SpatialObject:
		return int(size), true
	case Date:
		return 10, true // YYYY-MM-DD
	case Time:
		return 8, true // HH:MM:SS
	case DateTime:
		return 19, true // YYYY-MM-DD HH:MM:SS
	case VString, VWString, Unknown:
		return 0, false
	}

	return 0, false
}
