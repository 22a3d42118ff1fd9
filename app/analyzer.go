// Package app wires the pipeline stages into one synchronous service.
package app

import (
	"io"

	"rosterlens/adapters/excel"
	"rosterlens/internal"
	"rosterlens/internal/aggregate"
	"rosterlens/internal/normalize"
	"rosterlens/internal/session"
	"rosterlens/internal/sniff"
)

// Analyzer runs the full upload pipeline: decode, sniff, normalize,
// aggregate. One upload at a time is expected; the session store makes a
// concurrent second upload last-write-wins.
type Analyzer struct {
	reader *excel.Reader
	log    *internal.Logger
}

func NewAnalyzer(log *internal.Logger) *Analyzer {
	return &Analyzer{
		reader: excel.NewReader(),
		log:    log,
	}
}

// Analyze executes the pipeline synchronously to completion. Any failure is
// terminal for the upload: no partial results are returned.
func (a *Analyzer) Analyze(r io.Reader, filename string, size int64) (*session.Analysis, error) {
	wb, err := a.reader.Decode(r, filename, size)
	if err != nil {
		a.log.Error("decode failed for %s: %v", filename, err)
		return nil, err
	}
	a.log.Info("decoded %s: %d sheets, %d headers, %d data rows",
		filename, len(wb.SheetNames), len(wb.Headers), len(wb.Rows))

	report := sniff.Inspect(wb)

	records, err := normalize.Normalize(wb)
	if err != nil {
		a.log.Error("normalization failed for %s: %v", filename, err)
		return nil, err
	}

	result := aggregate.Aggregate(records)
	a.log.Info("aggregated %d records into %d manager groups",
		len(records), len(result.Managers))

	analysis := session.NewAnalysis(report, records, result)
	a.log.Debug("analysis %s complete", analysis.ID)
	return analysis, nil
}
