package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/Ayushgupta-MERN/trading-bots/internal/config"
	"github.com/Ayushgupta-MERN/trading-bots/internal/logger"
	"github.com/Ayushgupta-MERN/trading-bots/internal/monitoring"
	"github.com/Ayushgupta-MERN/trading-bots/internal/signal"
	"github.com/Ayushgupta-MERN/trading-bots/pkg/data"
	"github.com/Ayushgupta-MERN/trading-bots/pkg/reporting"
)

const (
	AppName    = "Signal Engine"
	AppVersion = "1.0.0"
)

func main() {
	flags := NewEngineFlags()
	flag.Parse()

	if err := ValidateEngineFlags(flags); err != nil {
		log.Fatalf("❌ Flag validation error: %v", err)
	}

	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}
	if *flags.ShowHelp {
		printUsageHelp()
		return
	}

	loadEnvironment(*flags.EnvFile)
	cfg := config.Load()
	applyFlagOverrides(cfg, flags)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	report, err := runEngine(cfg, flags)
	if err != nil {
		monitoring.RecordError("engine")
		log.Fatalf("❌ %v", err)
	}

	if err := writeOutputs(report, flags); err != nil {
		log.Fatalf("❌ Output error: %v", err)
	}

	if *flags.Serve {
		serveMonitoring(cfg, report)
	}
}

// loadEnvironment loads the .env file if one is present
func loadEnvironment(envFile string) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Fatalf("❌ Failed to load env file %s: %v", envFile, err)
		}
		return
	}
	// Default .env is optional
	_ = godotenv.Load()
}

// applyFlagOverrides lets explicit flags win over environment values
func applyFlagOverrides(cfg *config.Config, flags *EngineFlags) {
	if *flags.Symbol != "" {
		cfg.Market.Symbol = *flags.Symbol
	}
	if *flags.Interval != "" {
		cfg.Market.Interval = *flags.Interval
	}
	if *flags.ATRPeriod > 0 {
		cfg.Engine.ATRPeriod = *flags.ATRPeriod
	}
	if *flags.Multiplier > 0 {
		cfg.Engine.ATRMultiplier = *flags.Multiplier
	}
	// Only an explicit -dual flag beats the DUAL_CONFIRMATION env value
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "dual" {
			cfg.Engine.UseDualConfirmation = *flags.DualMode
		}
	})
	if *flags.MetricsPort > 0 {
		cfg.Monitoring.PrometheusPort = *flags.MetricsPort
	}
	if *flags.HealthPort > 0 {
		cfg.Monitoring.HealthPort = *flags.HealthPort
	}
}

// runEngine loads the candle series, runs the pipeline and returns the report
func runEngine(cfg *config.Config, flags *EngineFlags) (*reporting.Report, error) {
	provider := data.NewCachedProvider(data.NewCSVProvider())

	series, err := provider.LoadData(*flags.DataFile)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", *flags.DataFile, err)
	}

	if *flags.Period != "" {
		period, ok := data.ParseTrailingPeriod(*flags.Period)
		if !ok {
			return nil, fmt.Errorf("invalid period format %q (use 7d, 30d, 180d, 365d)", *flags.Period)
		}
		series = data.NewDefaultFilter().FilterByPeriod(series, period)
	}

	start := time.Now()
	records, err := signal.Generate(series, cfg.Engine)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	report := &reporting.Report{
		Symbol:   cfg.Market.Symbol,
		Interval: cfg.Market.Interval,
		Config:   cfg.Engine,
		Records:  records,
	}

	monitoring.RecordComputation(report.Symbol, report.Interval, elapsed.Seconds())
	if latest, ok := report.Latest(); ok {
		monitoring.UpdateLastSignal(report.Symbol, int(latest.Signal))
	}
	for _, ev := range report.Events() {
		monitoring.RecordSignalEvent(report.Symbol, ev.Signal.String())
	}

	if *flags.LogToFile {
		if err := logRun(report, elapsed); err != nil {
			log.Printf("⚠️ Log file error: %v", err)
		}
	}

	return report, nil
}

// logRun writes the run summary and signal events to the per-run log file
func logRun(report *reporting.Report, elapsed time.Duration) error {
	fileLog, err := logger.NewLogger(report.Symbol, report.Interval)
	if err != nil {
		return err
	}
	defer fileLog.Close()

	for _, ev := range report.Events() {
		fileLog.LogSignalEvent(ev)
	}
	fileLog.LogRunSummary(len(report.Records), len(report.Events()), elapsed)
	return nil
}

// writeOutputs renders the report to every requested sink
func writeOutputs(report *reporting.Report, flags *EngineFlags) error {
	reporter := reporting.NewDefaultReporter()

	if !*flags.Quiet {
		reporter.PrintParameters(report)
		reporter.PrintEvents(report)
		reporter.PrintLatest(report)
	}

	if *flags.OutputCSV != "" {
		if err := reporter.WriteSignalsCSV(report, *flags.OutputCSV); err != nil {
			return err
		}
		fmt.Printf("💾 Signal series written to %s\n", *flags.OutputCSV)
	}
	if *flags.OutputXLSX != "" {
		if err := reporter.WriteSignalsXLSX(report, *flags.OutputXLSX); err != nil {
			return err
		}
		fmt.Printf("💾 Workbook written to %s\n", *flags.OutputXLSX)
	}
	if *flags.OutputJSON != "" {
		if err := reporter.WriteSnapshotJSON(report, *flags.OutputJSON); err != nil {
			return err
		}
		fmt.Printf("💾 Snapshot written to %s\n", *flags.OutputJSON)
	}

	return nil
}

// serveMonitoring blocks, exposing the metrics and health endpoints
func serveMonitoring(cfg *config.Config, report *reporting.Report) {
	health := monitoring.NewHealthChecker()
	if latest, ok := report.Latest(); ok {
		health.RecordRun(latest.Signal.String())
	}

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/healthz", health)
		addr := fmt.Sprintf(":%d", cfg.Monitoring.HealthPort)
		log.Printf("🏥 Health endpoint on %s/healthz", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("⚠️ Health server error: %v", err)
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", monitoring.NewMetricsHandler())
	addr := fmt.Sprintf(":%d", cfg.Monitoring.PrometheusPort)
	log.Printf("📊 Metrics endpoint on %s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("❌ Metrics server error: %v", err)
	}
}
