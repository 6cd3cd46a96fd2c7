package field

import (
	"fmt"
	"math"
	"unicode/utf16"

	"github.com/arloliu/yxdb/endian"
	"github.com/arloliu/yxdb/errs"
	"github.com/arloliu/yxdb/internal/pool"
)

// Encode appends the on-disk bytes for ov, as described by f, to buf.
//
// Size and scale are always taken from f, never inferred from the value —
// per spec §4.1. When ov is null, Encode still writes the field's full
// width (zero-filled for fixed types, a zero-length prefix for variable
// ones) so the cursor stays in lockstep; the actual null/non-null bit lives
// in the record-level bitmap (see the record package).
func Encode(buf *pool.ByteBuffer, ov OptionalValue, f Field, engine endian.EndianEngine) error {
	if width, fixed := f.Width(); fixed && !ov.Valid {
		buf.MustWrite(make([]byte, width))

		return nil
	}
	if !ov.Valid {
		if f.Type == VString || f.Type == VWString {
			var lenBuf [4]byte
			engine.PutUint32(lenBuf[:], 0)
			buf.MustWrite(lenBuf[:])

			return nil
		}
	}

	v := ov.Value

	switch f.Type {
	case Bool:
		if v.Bool {
			buf.MustWrite([]byte{1})
		} else {
			buf.MustWrite([]byte{0})
		}
	case Byte:
		buf.MustWrite([]byte{byte(v.Int)})
	case Int16:
		var b [2]byte
		engine.PutUint16(b[:], uint16(v.Int))
		buf.MustWrite(b[:])
	case Int32:
		var b [4]byte
		engine.PutUint32(b[:], uint32(v.Int))
		buf.MustWrite(b[:])
	case Int64:
		var b [8]byte
		engine.PutUint64(b[:], uint64(v.Int))
		buf.MustWrite(b[:])
	case Float:
		var b [4]byte
		engine.PutUint32(b[:], math.Float32bits(v.F32))
		buf.MustWrite(b[:])
	case Double:
		var b [8]byte
		engine.PutUint64(b[:], math.Float64bits(v.F64))
		buf.MustWrite(b[:])
	case FixedDecimal:
		dec, err := encodeDecimal(v.F64, f.Size, f.Scale)
		if err != nil {
			return err
		}
		buf.MustWrite(dec)
	case String:
		return encodeFixedASCII(buf, v.Str, int(f.Size))
	case WString:
		return encodeFixedUTF16(buf, v.Str, int(f.Size), engine)
	case VString:
		return encodeVarASCII(buf, v.Str, engine)
	case VWString:
		return encodeVarUTF16(buf, v.Str, engine)
	case Date, Time, DateTime:
		width, _ := f.Width()

		return encodeFixedASCII(buf, v.Str, width)
	case Blob, SpatialObject:
		if len(v.Bytes) > int(f.Size) {
			return fmt.Errorf("%w: blob length %d exceeds field size %d", errs.ErrFieldEncode, len(v.Bytes), f.Size)
		}
		buf.MustWrite(v.Bytes)
		if pad := int(f.Size) - len(v.Bytes); pad > 0 {
			buf.MustWrite(make([]byte, pad))
		}
	case Unknown:
		return fmt.Errorf("%w: %s", errs.ErrUnknownFieldType, f.Type)
	}

	return nil
}

// Decode reads one field value from c, as described by f. The caller is
// responsible for consulting the record's null bitmap; Decode always
// returns a non-null OptionalValue — the record codec clears Valid for
// fields the bitmap marks null.
func Decode(c *Cursor, f Field, engine endian.EndianEngine) (OptionalValue, error) {
	switch f.Type {
	case Bool:
		b, err := c.Take(1)
		if err != nil {
			return OptionalValue{}, err
		}

		return Of(Value{Bool: b[0] != 0}), nil
	case Byte:
		b, err := c.Take(1)
		if err != nil {
			return OptionalValue{}, err
		}

		return Of(Value{Int: int64(b[0])}), nil
	case Int16:
		b, err := c.Take(2)
		if err != nil {
			return OptionalValue{}, err
		}

		return Of(Value{Int: int64(int16(engine.Uint16(b)))}), nil
	case Int32:
		b, err := c.Take(4)
		if err != nil {
			return OptionalValue{}, err
		}

		return Of(Value{Int: int64(int32(engine.Uint32(b)))}), nil
	case Int64:
		b, err := c.Take(8)
		if err != nil {
			return OptionalValue{}, err
		}

		return Of(Value{Int: int64(engine.Uint64(b))}), nil
	case Float:
		b, err := c.Take(4)
		if err != nil {
			return OptionalValue{}, err
		}

		return Of(Value{F32: math.Float32frombits(engine.Uint32(b))}), nil
	case Double:
		b, err := c.Take(8)
		if err != nil {
			return OptionalValue{}, err
		}

		return Of(Value{F64: math.Float64frombits(engine.Uint64(b))}), nil
	case FixedDecimal:
		b, err := c.Take(int(f.Size))
		if err != nil {
			return OptionalValue{}, err
		}
		d, err := decodeDecimal(b)
		if err != nil {
			return OptionalValue{}, err
		}

		return Of(Value{F64: d}), nil
	case String:
		return decodeFixedASCII(c, int(f.Size))
	case WString:
		return decodeFixedUTF16(c, int(f.Size), engine)
	case VString:
		return decodeVarASCII(c, engine)
	case VWString:
		return decodeVarUTF16(c, engine)
	case Date, Time, DateTime:
		width, _ := f.Width()

		return decodeFixedASCII(c, width)
	case Blob, SpatialObject:
		b, err := c.Take(int(f.Size))
		if err != nil {
			return OptionalValue{}, err
		}
		cp := make([]byte, len(b))
		copy(cp, b)

		return Of(Value{Bytes: cp}), nil
	case Unknown:
		return OptionalValue{}, fmt.Errorf("%w: %s", errs.ErrUnknownFieldType, f.Type)
	}

	return OptionalValue{}, fmt.Errorf("%w: %s", errs.ErrUnknownFieldType, f.Type)
}

func encodeFixedASCII(buf *pool.ByteBuffer, s string, size int) error {
	if len(s) > size {
		return fmt.Errorf("%w: %q exceeds width %d", errs.ErrFieldEncode, s, size)
	}
	buf.MustWrite([]byte(s))
	if pad := size - len(s); pad > 0 {
		buf.MustWrite(make([]byte, pad))
	}

	return nil
}

func decodeFixedASCII(c *Cursor, size int) (OptionalValue, error) {
	b, err := c.Take(size)
	if err != nil {
		return OptionalValue{}, err
	}
	s := trimTrailingNul(b)

	return Of(Value{Str: s}), nil
}

func encodeFixedUTF16(buf *pool.ByteBuffer, s string, sizeCodeUnits int, engine endian.EndianEngine) error {
	units := utf16.Encode([]rune(s))
	if len(units) > sizeCodeUnits {
		return fmt.Errorf("%w: %q exceeds width %d code units", errs.ErrFieldEncode, s, sizeCodeUnits)
	}
	for _, u := range units {
		var b [2]byte
		engine.PutUint16(b[:], u)
		buf.MustWrite(b[:])
	}
	if pad := sizeCodeUnits - len(units); pad > 0 {
		buf.MustWrite(make([]byte, pad*2))
	}

	return nil
}

func decodeFixedUTF16(c *Cursor, sizeCodeUnits int, engine endian.EndianEngine) (OptionalValue, error) {
	b, err := c.Take(sizeCodeUnits * 2)
	if err != nil {
		return OptionalValue{}, err
	}
	s, err := decodeUTF16Units(b, engine)
	if err != nil {
		return OptionalValue{}, err
	}

	return Of(Value{Str: trimTrailingNul([]byte(s))}), nil
}

func encodeVarASCII(buf *pool.ByteBuffer, s string, engine endian.EndianEngine) error {
	var lenBuf [4]byte
	engine.PutUint32(lenBuf[:], uint32(len(s))) //nolint:gosec
	buf.MustWrite(lenBuf[:])
	buf.MustWrite([]byte(s))

	return nil
}

func decodeVarASCII(c *Cursor, engine endian.EndianEngine) (OptionalValue, error) {
	lenBuf, err := c.Take(4)
	if err != nil {
		return OptionalValue{}, err
	}
	n := int(engine.Uint32(lenBuf))
	b, err := c.Take(n)
	if err != nil {
		return OptionalValue{}, err
	}

	return Of(Value{Str: string(b)}), nil
}

func encodeVarUTF16(buf *pool.ByteBuffer, s string, engine endian.EndianEngine) error {
	units := utf16.Encode([]rune(s))
	var lenBuf [4]byte
	engine.PutUint32(lenBuf[:], uint32(len(units))) //nolint:gosec
	buf.MustWrite(lenBuf[:])
	for _, u := range units {
		var b [2]byte
		engine.PutUint16(b[:], u)
		buf.MustWrite(b[:])
	}

	return nil
}

func decodeVarUTF16(c *Cursor, engine endian.EndianEngine) (OptionalValue, error) {
	lenBuf, err := c.Take(4)
	if err != nil {
		return OptionalValue{}, err
	}
	n := int(engine.Uint32(lenBuf))
	b, err := c.Take(n * 2)
	if err != nil {
		return OptionalValue{}, err
	}
	s, err := decodeUTF16Units(b, engine)
	if err != nil {
		return OptionalValue{}, err
	}

	return Of(Value{Str: s}), nil
}

func decodeUTF16Units(b []byte, engine endian.EndianEngine) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("%w: odd byte length %d", errs.ErrInvalidCodeUnits, len(b))
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = engine.Uint16(b[i*2 : i*2+2])
	}

	return string(utf16.Decode(units)), nil
}

func trimTrailingNul(b []byte) string {
	n := len(b)
	for n > 0 && b[n-1] == 0 {
		n--
	}

	return string(b[:n])
}
