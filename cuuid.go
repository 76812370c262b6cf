package hxaudio

import "fmt"

// CUUID is the 64-bit identifier that addresses every entry in a
// container. Cross-entry references are always by CUUID, never by
// pointer, so the entry graph has no ownership cycles.
type CUUID uint64

// Zero is the nil CUUID, used as a sentinel for "no link".
const Zero CUUID = 0

// IsZero reports whether the CUUID is the nil sentinel.
func (c CUUID) IsZero() bool { return c == Zero }

// String renders the CUUID as a fixed-width hex string.
func (c CUUID) String() string {
	return fmt.Sprintf("%016X", uint64(c))
}
