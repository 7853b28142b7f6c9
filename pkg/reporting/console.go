package reporting

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

// DefaultConsoleReporter implements console output functionality
type DefaultConsoleReporter struct{}

// NewDefaultConsoleReporter creates a new console reporter
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{}
}

// PrintParameters prints the engine parameters for this run
func (r *DefaultConsoleReporter) PrintParameters(report *Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("SIGNAL ENGINE")
	t.SetStyle(table.StyleRounded)

	mode := "single"
	if report.Config.UseDualConfirmation {
		mode = fmt.Sprintf("dual (slow multiplier %.1f)", report.Config.SlowMultiplier())
	}

	t.AppendRows([]table.Row{
		{"📊 Symbol", report.Symbol},
		{"⏰ Interval", report.Interval},
		{"📐 ATR Period", report.Config.ATRPeriod},
		{"📐 Multiplier", fmt.Sprintf("%.1f", report.Config.ATRMultiplier)},
		{"🔧 Confirmation", mode},
		{"📈 Bars", len(report.Records)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 15, WidthMax: 15, Align: text.AlignLeft},
		{Number: 2, WidthMin: 30, WidthMax: 35, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

// PrintEvents prints the bars where the signal changed
func (r *DefaultConsoleReporter) PrintEvents(report *Report) {
	events := report.Events()
	if len(events) == 0 {
		fmt.Println("No signal changes in the selected range.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("POSITION CHANGES")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Time", "Signal", "Change", "Supertrend", "Direction"})

	for _, ev := range events {
		t.AppendRow(table.Row{
			ev.Timestamp.Format("2006-01-02 15:04"),
			signalLabel(ev.Signal),
			fmt.Sprintf("%+d", ev.PositionChange),
			formatValue(ev.Supertrend),
			ev.Direction.String(),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	t.Render()
	fmt.Println()
}

// PrintLatest prints the most recent bar's state
func (r *DefaultConsoleReporter) PrintLatest(report *Report) {
	latest, ok := report.Latest()
	if !ok {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("LATEST SIGNAL")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"Time", latest.Timestamp.Format("2006-01-02 15:04")},
		{"Signal", signalLabel(latest.Signal)},
		{"Supertrend", formatValue(latest.Supertrend)},
		{"Direction", latest.Direction.String()},
	})
	if report.Config.UseDualConfirmation {
		t.AppendRows([]table.Row{
			{"Slow Supertrend", formatValue(latest.SlowSupertrend)},
			{"Slow Direction", latest.SlowDirection.String()},
		})
	}

	t.Render()
	fmt.Println()
}

// signalLabel decorates the signal for terminal output
func signalLabel(s types.Signal) string {
	switch s {
	case types.SignalBuy:
		return "🟢 BUY"
	case types.SignalSell:
		return "🔴 SELL"
	default:
		return "⚪ NEUTRAL"
	}
}

// formatValue renders a series value, keeping warm-up gaps visibly empty
func formatValue(v float64) string {
	if !types.IsDefined(v) {
		return "-"
	}
	return fmt.Sprintf("%.4f", v)
}
