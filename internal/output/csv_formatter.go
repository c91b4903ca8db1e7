package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/pension-drawdown/internal/domain"
)

// CSVFormatter writes one row per simulated year, prefixed with the scenario name.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := append([]string{"Scenario"}, RecordHeader...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for _, r := range sc.Records {
			if err := w.Write(append([]string{sc.Name}, recordCells(r)...)); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
