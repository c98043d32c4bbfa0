package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dotX12/subnetcalc/internal/domain"
	"github.com/dotX12/subnetcalc/internal/logger"
	"github.com/dotX12/subnetcalc/internal/service"
)

var (
	jsonOutput bool
	logLevel   string
	version    = "dev" // Set at build time via -ldflags
)

func main() {
	// Setup logger
	log := logger.New()
	logger.SetGlobalLogger(log)

	rootCmd := &cobra.Command{
		Use:     "subnetcalc",
		Short:   "IPv4 subnet and CIDR calculator",
		Long:    `Computes network, broadcast, host range, and wildcard mask for an IPv4 address and mask, splits blocks into smaller subnets, and answers membership queries.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Update logger level if specified
			if logLevel != "" {
				log = logger.NewWithLevel(logLevel)
				logger.SetGlobalLogger(log)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	calcCmd := &cobra.Command{
		Use:   "calc <ip> <mask>",
		Short: "Calculate subnet details for an address and mask",
		Long:  `Derives the network address, broadcast address, usable host range, wildcard mask, and legacy class. The mask may be a prefix length (24), a CIDR prefix (/24), or a dotted quad (255.255.255.0).`,
		Args:  cobra.ExactArgs(2),
		Run:   runCalc,
	}
	calcCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON")

	splitCmd := &cobra.Command{
		Use:   "split <network> <prefix> <new-prefix>",
		Short: "Split a block into equal smaller subnets",
		Args:  cobra.ExactArgs(3),
		Run:   runSplit,
	}
	splitCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON")

	maskCmd := &cobra.Command{
		Use:   "mask <prefix>",
		Short: "Print the dotted mask for a CIDR prefix length",
		Args:  cobra.ExactArgs(1),
		Run:   runMask,
	}

	containsCmd := &cobra.Command{
		Use:   "contains <ip> <network> <prefix>",
		Short: "Check whether an address belongs to a subnet",
		Args:  cobra.ExactArgs(3),
		Run:   runContains,
	}

	rootCmd.AddCommand(calcCmd, splitCmd, maskCmd, containsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCalc(cmd *cobra.Command, args []string) {
	log := logger.Global()
	calcSvc := service.NewCalculatorService(log.Logger)

	info, err := calcSvc.Calculate(args[0], args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Calculation failed")
	}

	if jsonOutput {
		printJSON(info)
		return
	}

	printInfo(info)
}

func runSplit(cmd *cobra.Command, args []string) {
	log := logger.Global()
	calcSvc := service.NewCalculatorService(log.Logger)

	fromPrefix := parsePrefixArg(args[1])
	toPrefix := parsePrefixArg(args[2])

	result, err := calcSvc.Split(args[0], fromPrefix, toPrefix)
	if err != nil {
		log.Fatal().Err(err).Msg("Split failed")
	}

	if jsonOutput {
		printJSON(result)
		return
	}

	for _, child := range result.Children {
		fmt.Printf("%-18s  network %-15s  broadcast %-15s  hosts %d\n",
			child.CIDR, child.Network, child.Broadcast, child.UsableHosts)
	}
}

func runMask(cmd *cobra.Command, args []string) {
	log := logger.Global()
	calcSvc := service.NewCalculatorService(log.Logger)

	mask, err := calcSvc.MaskForPrefix(parsePrefixArg(args[0]))
	if err != nil {
		log.Fatal().Err(err).Msg("Mask resolution failed")
	}

	fmt.Println(mask)
}

func runContains(cmd *cobra.Command, args []string) {
	log := logger.Global()
	calcSvc := service.NewCalculatorService(log.Logger)

	ok := calcSvc.Contains(args[0], args[1], parsePrefixArg(args[2]))
	fmt.Println(ok)

	if !ok {
		os.Exit(1)
	}
}

// parsePrefixArg converts a prefix argument, accepting both "24" and "/24".
// Out-of-range values are rejected later by the calculator.
func parsePrefixArg(arg string) int {
	log := logger.Global()

	if len(arg) > 0 && arg[0] == '/' {
		arg = arg[1:]
	}

	prefix, err := strconv.Atoi(arg)
	if err != nil {
		log.Fatal().Str("prefix", arg).Msg("Prefix must be a number")
	}

	return prefix
}

func printJSON(v any) {
	log := logger.Global()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode result")
	}

	fmt.Println(string(data))
}

func printInfo(info domain.Info) {
	fmt.Printf("CIDR:          %s\n", info.CIDR)
	fmt.Printf("Network:       %s\n", info.Network)
	fmt.Printf("Mask:          %s (/%d)\n", info.Mask, info.Prefix)
	fmt.Printf("Wildcard:      %s\n", info.Wildcard)
	fmt.Printf("Broadcast:     %s\n", info.Broadcast)
	fmt.Printf("First host:    %s\n", info.FirstHost)
	fmt.Printf("Last host:     %s\n", info.LastHost)
	fmt.Printf("Total hosts:   %d\n", info.TotalHosts)
	fmt.Printf("Usable hosts:  %d\n", info.UsableHosts)
	fmt.Printf("Class:         %s\n", info.Class)
}
