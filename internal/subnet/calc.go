package subnet

import (
	"fmt"

	"github.com/dotX12/subnetcalc/internal/domain"
)

// Calculate derives the full subnet snapshot for an address and a mask.
// The mask may be a bare prefix, a "/n" string, or a dotted quad.
func Calculate(ip, mask string) (domain.Info, error) {
	prefix, maskBits, err := ResolveMask(mask)
	if err != nil {
		return domain.Info{}, err
	}
	return calculate(ip, prefix, maskBits)
}

// CalculateWithPrefix is Calculate for callers that already hold a numeric
// prefix length.
func CalculateWithPrefix(ip string, prefix int) (domain.Info, error) {
	if prefix < 0 || prefix > 32 {
		return domain.Info{}, fmt.Errorf("%w: /%d outside [0,32]", ErrInvalidPrefix, prefix)
	}
	return calculate(ip, prefix, MaskFromPrefix(prefix))
}

func calculate(ip string, prefix int, maskBits uint32) (domain.Info, error) {
	addr, err := ParseIPv4(ip)
	if err != nil {
		return domain.Info{}, err
	}

	network := addr & maskBits
	wildcard := ^maskBits
	broadcast := network | wildcard

	// First/last host wrap for /31 and /32; those prefixes have no usable
	// range and UsableHosts reports 0.
	firstHost := network + 1
	lastHost := broadcast - 1

	totalHosts := uint64(1) << (32 - uint(prefix))
	usableHosts := uint64(0)
	if totalHosts > 2 {
		usableHosts = totalHosts - 2
	}

	return domain.Info{
		Network:     FormatIPv4(network),
		Prefix:      prefix,
		Mask:        FormatIPv4(maskBits),
		Wildcard:    FormatIPv4(wildcard),
		Broadcast:   FormatIPv4(broadcast),
		FirstHost:   FormatIPv4(firstHost),
		LastHost:    FormatIPv4(lastHost),
		TotalHosts:  totalHosts,
		UsableHosts: usableHosts,
		Class:       classify(addr),
		CIDR:        fmt.Sprintf("%s/%d", FormatIPv4(network), prefix),
	}, nil
}

// classify returns the legacy network class of an address, derived from
// its first octet only. 0.x and 127.x belong to no class.
func classify(addr uint32) string {
	switch first := addr >> 24; {
	case first >= 1 && first <= 126:
		return "A"
	case first >= 128 && first <= 191:
		return "B"
	case first >= 192 && first <= 223:
		return "C"
	case first >= 224 && first <= 239:
		return "D (Multicast)"
	case first >= 240:
		return "E (Reserved)"
	default:
		return "Unknown"
	}
}

// Contains reports whether ip falls inside the subnet defined by network
// and prefix. Malformed addresses and out-of-range prefixes yield false,
// never an error.
func Contains(ip, network string, prefix int) bool {
	if prefix < 0 || prefix > 32 {
		return false
	}

	addr, err := ParseIPv4(ip)
	if err != nil {
		return false
	}
	netAddr, err := ParseIPv4(network)
	if err != nil {
		return false
	}

	maskBits := MaskFromPrefix(prefix)
	return addr&maskBits == netAddr&maskBits
}
