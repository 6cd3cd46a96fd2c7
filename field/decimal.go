package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/yxdb/errs"
)

// encodeDecimal renders f at the field's declared size/scale as a
// space-padded ASCII string (resolution of open question O2: left-pad with
// spaces, not zeros).
func encodeDecimal(f float64, size, scale uint) ([]byte, error) {
	s := strconv.FormatFloat(f, 'f', int(scale), 64)
	if len(s) > int(size) {
		return nil, fmt.Errorf("%w: %q exceeds width %d", errs.ErrFieldEncode, s, size)
	}

	padded := strings.Repeat(" ", int(size)-len(s)) + s

	return []byte(padded), nil
}

// decodeDecimal parses a space-padded ASCII decimal string back to a
// float64, tolerating leading/trailing whitespace.
func decodeDecimal(raw []byte) (float64, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", errs.ErrFieldDecode, s, err)
	}

	return f, nil
}
