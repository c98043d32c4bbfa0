package subnet

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// MaskFromPrefix returns the 32-bit mask with the top prefix bits set.
// Prefix 0 yields the all-zero mask.
func MaskFromPrefix(prefix int) uint32 {
	if prefix <= 0 {
		return 0
	}
	return ^uint32(0) << (32 - uint(prefix))
}

// ResolveMask normalizes a mask given as a bare prefix ("24"), a CIDR
// prefix ("/24"), or a dotted quad ("255.255.255.0") into a prefix length
// and its 32-bit mask value.
//
// Dotted masks derive the prefix by counting set bits; contiguity of the
// 1-bits is not checked, so a mask like 255.0.255.0 is accepted as /16.
func ResolveMask(mask string) (int, uint32, error) {
	mask = strings.TrimSpace(mask)

	if strings.Contains(mask, ".") {
		bitsVal, err := ParseIPv4(mask)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMask, mask)
		}
		return bits.OnesCount32(bitsVal), bitsVal, nil
	}

	prefixStr := strings.TrimPrefix(mask, "/")
	prefix, err := strconv.Atoi(prefixStr)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a prefix length", ErrInvalidPrefix, mask)
	}
	if prefix < 0 || prefix > 32 {
		return 0, 0, fmt.Errorf("%w: /%d outside [0,32]", ErrInvalidPrefix, prefix)
	}

	return prefix, MaskFromPrefix(prefix), nil
}

// MaskForPrefix returns the canonical dotted mask for a prefix length.
func MaskForPrefix(prefix int) (string, error) {
	if prefix < 0 || prefix > 32 {
		return "", fmt.Errorf("%w: /%d outside [0,32]", ErrInvalidPrefix, prefix)
	}
	return FormatIPv4(MaskFromPrefix(prefix)), nil
}
