package reporting

// DefaultReporter implements the complete console and file reporting surface
type DefaultReporter struct {
	console *DefaultConsoleReporter
	csv     *DefaultCSVReporter
	excel   *DefaultExcelReporter
	json    *DefaultJSONFormatter
}

// NewDefaultReporter creates a new default reporter with all functionality
func NewDefaultReporter() *DefaultReporter {
	return &DefaultReporter{
		console: NewDefaultConsoleReporter(),
		csv:     NewDefaultCSVReporter(),
		excel:   NewDefaultExcelReporter(),
		json:    NewDefaultJSONFormatter(),
	}
}

// Console output methods
func (r *DefaultReporter) PrintParameters(report *Report) {
	r.console.PrintParameters(report)
}

func (r *DefaultReporter) PrintEvents(report *Report) {
	r.console.PrintEvents(report)
}

func (r *DefaultReporter) PrintLatest(report *Report) {
	r.console.PrintLatest(report)
}

// File output methods
func (r *DefaultReporter) WriteSignalsCSV(report *Report, path string) error {
	return r.csv.WriteSignalsCSV(report, path)
}

func (r *DefaultReporter) WriteSignalsXLSX(report *Report, path string) error {
	return r.excel.WriteSignalsXLSX(report, path)
}

func (r *DefaultReporter) WriteSnapshotJSON(report *Report, path string) error {
	return r.json.WriteSnapshotJSON(report, path)
}
