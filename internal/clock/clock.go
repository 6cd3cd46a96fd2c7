// Package clock provides the wall-clock seam used when stamping newly
// written headers, so tests can inject a fixed time instead of depending on
// the real clock.
package clock

import "time"

// Now returns the current time as seconds since the Unix epoch, matching the
// resolution the YXDB header's creationDate field stores. It is a variable
// so tests can replace it with a function returning a fixed time.
var Now = func() uint32 {
	return uint32(time.Now().Unix())
}
