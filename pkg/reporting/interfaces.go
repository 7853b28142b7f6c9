package reporting

// Package reporting renders a computed signal series for human and
// machine consumers. It never modifies the series; the engine output is
// read-only by the time it gets here.

import (
	"github.com/Ayushgupta-MERN/trading-bots/internal/signal"
	"github.com/Ayushgupta-MERN/trading-bots/pkg/types"
)

// Report bundles one engine invocation's input identity, parameters and
// output series for the writers
type Report struct {
	Symbol   string
	Interval string
	Config   signal.Config
	Records  []types.SignalRecord
}

// Events returns the bars where the signal actually moved, which is what
// an execution collaborator filters for
func (r *Report) Events() []types.SignalRecord {
	var events []types.SignalRecord
	for _, rec := range r.Records {
		if rec.PositionChange != 0 {
			events = append(events, rec)
		}
	}
	return events
}

// Latest returns the most recent record, if any
func (r *Report) Latest() (types.SignalRecord, bool) {
	if len(r.Records) == 0 {
		return types.SignalRecord{}, false
	}
	return r.Records[len(r.Records)-1], true
}

// ConsoleReporter defines interface for console output
type ConsoleReporter interface {
	PrintParameters(report *Report)
	PrintEvents(report *Report)
	PrintLatest(report *Report)
}

// FileReporter defines interface for file output
type FileReporter interface {
	WriteSignalsCSV(report *Report, path string) error
	WriteSignalsXLSX(report *Report, path string) error
	WriteSnapshotJSON(report *Report, path string) error
}
