package output

import (
	"encoding/json"

	"github.com/lski/toolbox/internal/domain"
)

// JSONFormatter serializes the batch as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(batch *domain.Batch) ([]byte, error) {
	b, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
