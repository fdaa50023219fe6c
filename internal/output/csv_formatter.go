package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/lski/toolbox/internal/domain"
)

// CSVFormatter writes one row per input in the order the inputs were given.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(batch *domain.Batch) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Operation", "Input", "Output", "OK", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range batch.Results {
		row := []string{batch.Operation, r.Input, r.Output, boolToString(r.OK), r.Error}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	if batch.Total != "" {
		if err := w.Write([]string{batch.Operation, "total", batch.Total, boolToString(true), ""}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func boolToString(b bool) string { return strconv.FormatBool(b) }
