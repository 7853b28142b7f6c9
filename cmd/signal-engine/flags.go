package main

import (
	"flag"
	"fmt"
	"strings"
)

// EngineFlags holds all command line flags for the signal engine
type EngineFlags struct {
	// Input
	DataFile *string
	Symbol   *string
	Interval *string
	Period   *string
	EnvFile  *string

	// Engine parameters
	ATRPeriod  *int
	Multiplier *float64
	DualMode   *bool

	// Output
	OutputCSV  *string
	OutputXLSX *string
	OutputJSON *string
	Quiet      *bool
	LogToFile  *bool

	// Monitoring
	Serve       *bool
	MetricsPort *int
	HealthPort  *int

	// Misc
	ShowVersion *bool
	ShowHelp    *bool
}

// NewEngineFlags creates and registers all command line flags
func NewEngineFlags() *EngineFlags {
	return &EngineFlags{
		DataFile: flag.String("data", "", "Path to OHLC candle CSV file (required)"),
		Symbol:   flag.String("symbol", "", "Symbol label for reports and logs (defaults to SYMBOL env)"),
		Interval: flag.String("interval", "", "Interval label for reports and logs (defaults to INTERVAL env)"),
		Period:   flag.String("period", "", "Trailing period filter, e.g. 30d, 180d, 365d"),
		EnvFile:  flag.String("env", "", "Path to .env file (default: .env in working directory)"),

		ATRPeriod:  flag.Int("atr-period", 0, "ATR smoothing period (default 10, or ATR_PERIOD env)"),
		Multiplier: flag.Float64("multiplier", 0, "ATR band multiplier (default 3, or ATR_MULTIPLIER env)"),
		DualMode:   flag.Bool("dual", true, "Require slow-instance confirmation at multiplier+1"),

		OutputCSV:  flag.String("csv", "", "Write the full signal series to this CSV file"),
		OutputXLSX: flag.String("xlsx", "", "Write the signal series workbook to this file"),
		OutputJSON: flag.String("json", "", "Write the latest-signal snapshot to this JSON file"),
		Quiet:      flag.Bool("quiet", false, "Suppress console tables"),
		LogToFile:  flag.Bool("log", false, "Write a per-run log file under logs/"),

		Serve:       flag.Bool("serve", false, "Keep running and expose /metrics and /healthz"),
		MetricsPort: flag.Int("metrics-port", 0, "Prometheus metrics port (default 8080, or PROMETHEUS_PORT env)"),
		HealthPort:  flag.Int("health-port", 0, "Health endpoint port (default 8081, or HEALTH_PORT env)"),

		ShowVersion: flag.Bool("version", false, "Show version information"),
		ShowHelp:    flag.Bool("help", false, "Show usage help"),
	}
}

// ValidateEngineFlags checks flag combinations before any work starts
func ValidateEngineFlags(flags *EngineFlags) error {
	if *flags.ShowVersion || *flags.ShowHelp {
		return nil
	}

	if strings.TrimSpace(*flags.DataFile) == "" {
		return fmt.Errorf("-data is required (path to a candle CSV file)")
	}

	// Zero means "use the configured default"; only reject negatives here
	if *flags.ATRPeriod < 0 {
		return fmt.Errorf("-atr-period must not be negative")
	}
	if *flags.Multiplier < 0 {
		return fmt.Errorf("-multiplier must not be negative")
	}

	return nil
}

func printUsageHelp() {
	fmt.Printf(`%s v%s

Computes Supertrend/ATR trading signals over an OHLC candle series.

Usage:
  signal-engine -data <candles.csv> [options]

Examples:
  signal-engine -data data/BTCUSDT_1h.csv
  signal-engine -data data/BTCUSDT_1h.csv -atr-period 14 -multiplier 2.5 -dual=false
  signal-engine -data data/BTCUSDT_1h.csv -period 90d -csv out/signals.csv
  signal-engine -data data/BTCUSDT_1h.csv -serve -metrics-port 9100

Options:
`, AppName, AppVersion)
	flag.PrintDefaults()
}
