package subnet

import "errors"

// Calculation errors. All functions return these wrapped with input
// context; callers match them with errors.Is.
var (
	// ErrMalformedAddress means the input does not parse as four
	// dot-separated octets in [0,255].
	ErrMalformedAddress = errors.New("malformed IPv4 address")

	// ErrInvalidPrefix means a CIDR prefix length outside [0,32].
	ErrInvalidPrefix = errors.New("invalid CIDR prefix")

	// ErrInvalidMask means a dotted mask string that does not parse as an
	// IP-shaped value.
	ErrInvalidMask = errors.New("invalid subnet mask")

	// ErrInvalidSplit means the new prefix is not strictly greater than
	// the original, or either prefix is out of range.
	ErrInvalidSplit = errors.New("invalid subnet split")

	// ErrSplitTooLarge means the split would produce more children than
	// a single call is allowed to allocate.
	ErrSplitTooLarge = errors.New("split produces too many subnets")
)
