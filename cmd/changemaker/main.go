package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tirasundara/change-service/internal/config"
	"github.com/tirasundara/change-service/internal/domain"
	"github.com/tirasundara/change-service/internal/repository"
	"github.com/tirasundara/change-service/internal/rules"
	"github.com/tirasundara/change-service/internal/service"
	"github.com/tirasundara/change-service/internal/strategy"
	"github.com/tirasundara/change-service/internal/telemetry"
	"github.com/tirasundara/change-service/pkg/amountutil"
)

func main() {
	// Command-line flags
	var (
		inputFile    string
		amounts      string
		outputFile   string
		currencyCode string
		divisor      int
		seedStr      string
		quiet        bool
	)

	flag.StringVar(&inputFile, "input", "", "Path to transactions file (one 'owed,paid' line per transaction)")
	flag.StringVar(&amounts, "amounts", "", "Single transaction amounts, e.g. \"2.12,3.00\" (alternative to -input)")
	flag.StringVar(&outputFile, "output", "", "Path to output file (if empty, writes to stdout)")
	flag.StringVar(&currencyCode, "currency", "", "Currency code for denomination lookup (defaults to CHANGE_DEFAULT_CURRENCY)")
	flag.IntVar(&divisor, "divisor", 0, "Divisor for the built-in strategy rule (defaults to CHANGE_DEFAULT_DIVISOR)")
	flag.StringVar(&seedStr, "seed", "", "Random seed for reproducible randomized runs")
	flag.BoolVar(&quiet, "quiet", false, "Disable telemetry logging")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		exitWithUsageError(fmt.Sprintf("Invalid configuration: %v", err))
	}

	// Validate required flags
	if inputFile == "" && amounts == "" {
		exitWithUsageError("Either -input or -amounts is required")
	}
	if inputFile != "" && amounts != "" {
		exitWithUsageError("-input and -amounts are mutually exclusive")
	}

	// Build per-call options from flags, falling back to configured defaults
	opts := domain.Options{
		Currency: currencyCode,
		Divisor:  divisor,
	}
	if opts.Divisor == 0 {
		opts.Divisor = cfg.DefaultDivisor
	}
	if seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			exitWithUsageError("Invalid -seed value: must be an integer")
		}
		opts.RandomSeed = &seed
	}

	// Wire the core: registry, strategies, rules pipeline, service
	var sink domain.TelemetrySink = telemetry.NewNopSink()
	if !quiet {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
		sink = telemetry.NewSlogSink(logger)
	}

	currencies := repository.NewInMemoryCurrencyRepository(cfg.DefaultCurrency)
	greedy := strategy.NewGreedyStrategy(currencies)
	randomized := strategy.NewRandomizedStrategy(currencies)
	pipeline := rules.NewPipeline(greedy, sink, rules.NewDivisorRule(randomized))
	changeService := service.NewChangeService(pipeline, sink)

	// Collect transactions: from a file, or the single -amounts pair
	parser := amountutil.NewAmountParser(cfg.MaxAmount)

	var txns []domain.TransactionInput
	if amounts != "" {
		owed, paid, err := parser.ParseTransactionLine(amounts)
		if err != nil {
			exitWithError(fmt.Sprintf("Invalid -amounts value: %v", err))
		}
		txns = []domain.TransactionInput{{Line: 1, Owed: owed, Paid: paid}}
	} else {
		repo := repository.NewFileTransactionRepository(inputFile, parser)
		txns, err = repo.GetTransactions()
		if err != nil {
			exitWithError(fmt.Sprintf("Reading transactions: %v", err))
		}
	}

	// Run every transaction; failures render inline and flip the exit code
	var out strings.Builder
	anyFailed := false
	for _, txn := range txns {
		text, err := changeService.MakeChangeFormatted(txn.Owed, txn.Paid, opts)
		if err != nil {
			anyFailed = true
			out.WriteString(fmt.Sprintf("error: %v\n", err))
			continue
		}
		out.WriteString(text)
		out.WriteString("\n")
	}

	// Output the result
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(out.String()), 0644); err != nil {
			exitWithError(fmt.Sprintf("Failed to write output file: %v", err))
		}
	} else {
		fmt.Print(out.String())
	}

	if anyFailed {
		os.Exit(1)
	}
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	os.Exit(1)
}

func exitWithUsageError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(2)
}
