package field

import (
	"fmt"

	"github.com/arloliu/yxdb/errs"
)

// Cursor walks a byte slice left to right, handing out fixed-size chunks to
// the field decoders. It never copies; callers that need to retain a slice
// past the cursor's lifetime should clone it.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps buf for sequential decoding.
func NewCursor(buf []byte) *Cursor { return &Cursor{buf: buf} }

// Pos returns the cursor's current byte offset within its buffer.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Take returns the next n bytes and advances the cursor, or an error if
// fewer than n bytes remain.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.buf) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", errs.ErrTruncatedCursor, n, c.pos, c.Remaining())
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}
