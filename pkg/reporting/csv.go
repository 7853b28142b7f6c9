package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

// DefaultCSVReporter implements CSV output functionality
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WriteSignalsCSV writes the full signal series to a CSV file. Warm-up
// gaps are written as empty cells, never as zeros.
func (r *DefaultCSVReporter) WriteSignalsCSV(report *Report, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Delegate when the user asked for a workbook
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return NewDefaultExcelReporter().WriteSignalsXLSX(report, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"Timestamp",
		"Signal",
		"Supertrend",
		"Direction",
		"Slow_Supertrend",
		"Slow_Direction",
		"Position_Change",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, rec := range report.Records {
		row := []string{
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.Signal.String(),
			csvValue(rec.Supertrend),
			csvDirection(rec.Direction),
			csvValue(rec.SlowSupertrend),
			csvDirection(rec.SlowDirection),
			strconv.Itoa(rec.PositionChange),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func csvValue(v float64) string {
	if !types.IsDefined(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 8, 64)
}

func csvDirection(d types.Direction) string {
	if d == 0 {
		return ""
	}
	return d.String()
}
