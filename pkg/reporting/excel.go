package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

// DefaultExcelReporter implements Excel output functionality
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// ExcelStyles holds the style IDs used across sheets
type ExcelStyles struct {
	HeaderStyle int
	NumberStyle int
	BuyStyle    int
	SellStyle   int
}

// WriteSignalsXLSX writes the signal series and the position-change
// events to a two-sheet workbook
func (r *DefaultExcelReporter) WriteSignalsXLSX(report *Report, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const signalsSheet = "Signals"
	const eventsSheet = "Events"

	fx.SetSheetName(fx.GetSheetName(0), signalsSheet)
	fx.NewSheet(eventsSheet)

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeSeriesSheet(fx, signalsSheet, report.Records, styles); err != nil {
		return err
	}
	if err := r.writeSeriesSheet(fx, eventsSheet, report.Events(), styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

// createExcelStyles creates the shared cell styles
func (r *DefaultExcelReporter) createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.NumberStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 4, // #,##0.00
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.BuyStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "008000", Bold: true},
	})
	if err != nil {
		return styles, err
	}

	styles.SellStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "FF0000", Bold: true},
	})
	return styles, err
}

// writeSeriesSheet writes one sheet of signal records
func (r *DefaultExcelReporter) writeSeriesSheet(fx *excelize.File, sheet string, records []types.SignalRecord, styles ExcelStyles) error {
	headers := []string{"Timestamp", "Signal", "Supertrend", "Direction", "Slow Supertrend", "Slow Direction", "Position Change"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := fx.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	for i, rec := range records {
		row := i + 2
		values := []interface{}{
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.Signal.String(),
			excelValue(rec.Supertrend),
			excelDirection(rec.Direction),
			excelValue(rec.SlowSupertrend),
			excelDirection(rec.SlowDirection),
			rec.PositionChange,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := fx.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}

		stCell, _ := excelize.CoordinatesToCellName(3, row)
		slowCell, _ := excelize.CoordinatesToCellName(5, row)
		fx.SetCellStyle(sheet, stCell, stCell, styles.NumberStyle)
		fx.SetCellStyle(sheet, slowCell, slowCell, styles.NumberStyle)

		sigCell, _ := excelize.CoordinatesToCellName(2, row)
		switch rec.Signal {
		case types.SignalBuy:
			fx.SetCellStyle(sheet, sigCell, sigCell, styles.BuyStyle)
		case types.SignalSell:
			fx.SetCellStyle(sheet, sigCell, sigCell, styles.SellStyle)
		}
	}

	fx.SetColWidth(sheet, "A", "A", 20)
	fx.SetColWidth(sheet, "B", "G", 16)

	return nil
}

// excelValue keeps warm-up gaps as empty cells
func excelValue(v float64) interface{} {
	if !types.IsDefined(v) {
		return ""
	}
	return v
}

func excelDirection(d types.Direction) string {
	if d == 0 {
		return ""
	}
	return d.String()
}
