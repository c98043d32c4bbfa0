// Package subnet implements pure IPv4/CIDR arithmetic: address
// conversion, mask resolution, subnet derivation, splitting, and
// membership checks. All operations work on unsigned 32-bit integers,
// keep no state, and are safe to call concurrently.
package subnet

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIPv4 converts a dotted-quad address to its 32-bit integer value.
// The input must have exactly four decimal octets, each in [0,255].
func ParseIPv4(s string) (uint32, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAddress, s)
	}

	var n uint32
	for _, part := range parts {
		octet, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: octet %q is not a number", ErrMalformedAddress, s, part)
		}
		if octet < 0 || octet > 255 {
			return 0, fmt.Errorf("%w: %q: octet %d out of range", ErrMalformedAddress, s, octet)
		}
		n = n<<8 | uint32(octet)
	}

	return n, nil
}

// FormatIPv4 converts a 32-bit integer to dotted-quad notation. It is the
// inverse of ParseIPv4 over the full uint32 domain.
func FormatIPv4(n uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", n>>24, n>>16&0xFF, n>>8&0xFF, n&0xFF)
}
