package service

import (
	"github.com/rs/zerolog"

	"github.com/dotX12/subnetcalc/internal/domain"
	"github.com/dotX12/subnetcalc/internal/subnet"
)

// CalculatorService wraps the pure subnet core with structured logging.
// The core itself never logs; this layer records inputs and outcomes for
// the CLI.
type CalculatorService struct {
	logger zerolog.Logger
}

// NewCalculatorService creates a new calculator service
func NewCalculatorService(logger zerolog.Logger) *CalculatorService {
	return &CalculatorService{
		logger: logger,
	}
}

// Calculate computes the subnet snapshot for an address and mask.
func (s *CalculatorService) Calculate(ip, mask string) (domain.Info, error) {
	s.logger.Debug().
		Str("ip", ip).
		Str("mask", mask).
		Msg("Calculating subnet")

	info, err := subnet.Calculate(ip, mask)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("ip", ip).
			Str("mask", mask).
			Msg("Subnet calculation failed")
		return domain.Info{}, err
	}

	s.logger.Debug().
		Str("cidr", info.CIDR).
		Str("broadcast", info.Broadcast).
		Uint64("usable_hosts", info.UsableHosts).
		Msg("Subnet calculated")

	return info, nil
}

// Split partitions a network into equal children with the new prefix.
func (s *CalculatorService) Split(network string, fromPrefix, toPrefix int) (*domain.SplitResult, error) {
	s.logger.Debug().
		Str("network", network).
		Int("from_prefix", fromPrefix).
		Int("to_prefix", toPrefix).
		Msg("Splitting subnet")

	children, err := subnet.Split(network, fromPrefix, toPrefix)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("network", network).
			Int("from_prefix", fromPrefix).
			Int("to_prefix", toPrefix).
			Msg("Subnet split failed")
		return nil, err
	}

	result := &domain.SplitResult{
		Parent:   network,
		Children: children,
	}

	s.logger.Info().
		Str("network", network).
		Int("children", result.ChildCount()).
		Msg("Subnet split complete")

	return result, nil
}

// MaskForPrefix returns the canonical dotted mask for a prefix length.
func (s *CalculatorService) MaskForPrefix(prefix int) (string, error) {
	mask, err := subnet.MaskForPrefix(prefix)
	if err != nil {
		s.logger.Error().Err(err).Int("prefix", prefix).Msg("Invalid prefix")
		return "", err
	}

	s.logger.Debug().Int("prefix", prefix).Str("mask", mask).Msg("Resolved mask")
	return mask, nil
}

// Contains reports whether ip belongs to the given network/prefix.
func (s *CalculatorService) Contains(ip, network string, prefix int) bool {
	ok := subnet.Contains(ip, network, prefix)

	s.logger.Debug().
		Str("ip", ip).
		Str("network", network).
		Int("prefix", prefix).
		Bool("contains", ok).
		Msg("Membership check")

	return ok
}
