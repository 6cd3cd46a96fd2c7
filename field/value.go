package field

import "time"

// Value is a tagged union over the payload a FieldValue may carry. Only the
// member matching the owning Field's Type is meaningful; the others are
// zero. A single struct (rather than an interface per type) keeps records
// allocation-free to build and compare, matching the teacher's DataPoint
// convention of one concrete struct carrying every columnar variant.
type Value struct {
	Bool  bool
	Int   int64   // Byte, Int16, Int32, Int64
	F32   float32 // Float
	F64   float64 // Double, FixedDecimal
	Str   string  // String, WString, VString, VWString, Date, Time, DateTime
	Bytes []byte  // Blob, SpatialObject
}

// OptionalValue is a nullable FieldValue: the outer optional spec §3
// describes. A record holds one OptionalValue per schema field, in order.
type OptionalValue struct {
	Valid bool
	Value Value
}

// Null returns the null OptionalValue.
func Null() OptionalValue { return OptionalValue{} }

// Of wraps a Value as a non-null OptionalValue.
func Of(v Value) OptionalValue { return OptionalValue{Valid: true, Value: v} }

// BoolValue, IntValue, etc. are convenience constructors for the common
// scalar cases, used heavily by tests and by the textual codec.
func BoolValue(b bool) OptionalValue       { return Of(Value{Bool: b}) }
func IntValue(i int64) OptionalValue       { return Of(Value{Int: i}) }
func FloatValue(f float32) OptionalValue   { return Of(Value{F32: f}) }
func DoubleValue(f float64) OptionalValue  { return Of(Value{F64: f}) }
func StringValue(s string) OptionalValue   { return Of(Value{Str: s}) }
func BytesValue(b []byte) OptionalValue    { return Of(Value{Bytes: b}) }
func TimeValue(t time.Time, typ Type) OptionalValue {
	switch typ {
	case Date:
		return Of(Value{Str: t.Format("2006-01-02")})
	case Time:
		return Of(Value{Str: t.Format("15:04:05")})
	default:
		return Of(Value{Str: t.Format("2006-01-02 15:04:05")})
	}
}
