package subnet

import (
	"fmt"

	"github.com/dotX12/subnetcalc/internal/domain"
)

// maxSplitChildren caps the number of subnets a single split may produce,
// so a degenerate request (e.g. /0 into /32) cannot allocate unbounded
// memory.
const maxSplitChildren = 1 << 16

// Split partitions a parent block into 2^(toPrefix-fromPrefix) equal
// children in ascending address order.
//
// The parent must be a valid network address of a block lying entirely
// below 2^32; addresses past the parent's own range are not checked.
func Split(network string, fromPrefix, toPrefix int) ([]domain.Info, error) {
	if fromPrefix < 0 || fromPrefix > 32 || toPrefix < 0 || toPrefix > 32 {
		return nil, fmt.Errorf("%w: prefixes /%d -> /%d outside [0,32]", ErrInvalidSplit, fromPrefix, toPrefix)
	}
	if toPrefix <= fromPrefix {
		return nil, fmt.Errorf("%w: new prefix /%d must be greater than /%d", ErrInvalidSplit, toPrefix, fromPrefix)
	}

	childCount := uint64(1) << uint(toPrefix-fromPrefix)
	if childCount > maxSplitChildren {
		return nil, fmt.Errorf("%w: /%d -> /%d yields %d subnets (limit %d)", ErrSplitTooLarge, fromPrefix, toPrefix, childCount, maxSplitChildren)
	}

	base, err := ParseIPv4(network)
	if err != nil {
		return nil, err
	}

	childSize := uint32(1) << (32 - uint(toPrefix))
	children := make([]domain.Info, 0, childCount)

	for i := uint64(0); i < childCount; i++ {
		childNet := base + uint32(i)*childSize
		info, err := CalculateWithPrefix(FormatIPv4(childNet), toPrefix)
		if err != nil {
			return nil, err
		}
		children = append(children, info)
	}

	return children, nil
}
