package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Ayushgupta-MERN/trading-bots/internal/errors"
	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

// CSVProvider implements Provider for CSV candle files
type CSVProvider struct {
	format CSVColumnMapping
}

// NewCSVProvider creates a new CSV data provider with the default format
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{
		format: DefaultCSVFormat,
	}
}

// NewCSVProviderWithFormat creates a new CSV data provider with a custom format
func NewCSVProviderWithFormat(format CSVColumnMapping) *CSVProvider {
	return &CSVProvider{
		format: format,
	}
}

// GetName returns the name of the data provider
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadData loads an OHLC series from a CSV file. Any malformed row fails
// the whole load; the engine never sees a partially parsed series.
func (p *CSVProvider) LoadData(source string) ([]types.OHLCV, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, errors.NewMalformedInputError("data", "LoadData", "missing header row")
	}

	// Let parseRow report short rows instead of csv.ErrFieldCount
	reader.FieldsPerRecord = -1

	var data []types.OHLCV

	lineNum := 1 // header already consumed
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.WrapError(err, errors.ErrorCategoryData, "data", "LoadData")
		}
		lineNum++

		candle, err := p.parseRow(record, lineNum)
		if err != nil {
			return nil, err
		}
		data = append(data, candle)
	}

	if err := p.ValidateData(data); err != nil {
		return nil, err
	}

	return data, nil
}

// parseRow parses one CSV record into a candle
func (p *CSVProvider) parseRow(record []string, lineNum int) (types.OHLCV, error) {
	format := p.format

	if len(record) < format.MinColumns {
		return types.OHLCV{}, errors.NewMalformedInputError("data", "LoadData",
			fmt.Sprintf("line %d: expected %d columns, got %d", lineNum, format.MinColumns, len(record)))
	}

	timestamp, err := p.parseTimestamp(record[format.TimestampCol])
	if err != nil {
		return types.OHLCV{}, errors.NewMalformedInputError("data", "LoadData",
			fmt.Sprintf("line %d: invalid timestamp %q", lineNum, record[format.TimestampCol]))
	}

	fields := [...]struct {
		name string
		col  int
	}{
		{"open", format.OpenCol},
		{"high", format.HighCol},
		{"low", format.LowCol},
		{"close", format.CloseCol},
		{"volume", format.VolumeCol},
	}

	var values [len(fields)]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(record[f.col], 64)
		if err != nil {
			return types.OHLCV{}, errors.NewMalformedInputError("data", "LoadData",
				fmt.Sprintf("line %d: invalid %s %q", lineNum, f.name, record[f.col]))
		}
		values[i] = v
	}

	return types.OHLCV{
		Timestamp: timestamp,
		Open:      values[0],
		High:      values[1],
		Low:       values[2],
		Close:     values[3],
		Volume:    values[4],
	}, nil
}

// parseTimestamp handles both layout-formatted and epoch-millisecond timestamps
func (p *CSVProvider) parseTimestamp(raw string) (time.Time, error) {
	if p.format.DateFormat == "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return time.Time{}, err
		}
		return time.UnixMilli(ms).UTC(), nil
	}
	return time.Parse(p.format.DateFormat, raw)
}

// ValidateData validates the structural integrity of a loaded series:
// positive prices, high bounding low, strictly increasing timestamps
func (p *CSVProvider) ValidateData(data []types.OHLCV) error {
	if len(data) == 0 {
		return errors.NewMalformedInputError("data", "ValidateData", "empty series")
	}

	for i, candle := range data {
		if candle.Open <= 0 || candle.High <= 0 || candle.Low <= 0 || candle.Close <= 0 {
			return errors.NewMalformedInputError("data", "ValidateData",
				fmt.Sprintf("bar %d: prices must be positive", i))
		}

		if candle.High < candle.Low {
			return errors.NewMalformedInputError("data", "ValidateData",
				fmt.Sprintf("bar %d: high %.4f below low %.4f", i, candle.High, candle.Low))
		}

		if i > 0 && !candle.Timestamp.After(data[i-1].Timestamp) {
			return errors.NewMalformedInputError("data", "ValidateData",
				fmt.Sprintf("bar %d: timestamps must be strictly increasing", i))
		}
	}

	return nil
}
