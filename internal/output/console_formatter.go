package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/lski/toolbox/internal/domain"
)

// TextFormatter renders an aligned two column table for the terminal.
type TextFormatter struct{}

func (c TextFormatter) Name() string { return "text" }

func (c TextFormatter) Format(batch *domain.Batch) ([]byte, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for _, r := range batch.Results {
		out := r.Output
		if !r.OK {
			out = "error: " + r.Error
		}
		fmt.Fprintf(tw, "%s\t%s\n", r.Input, out)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	if batch.Total != "" {
		fmt.Fprintf(&buf, "Total: %s\n", batch.Total)
	}
	if failed := batch.Failed(); failed > 0 {
		fmt.Fprintf(&buf, "%d of %d inputs failed\n", failed, len(batch.Results))
	}
	return buf.Bytes(), nil
}
