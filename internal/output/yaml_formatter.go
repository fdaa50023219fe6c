package output

import (
	"github.com/lski/toolbox/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the batch as a YAML document.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(batch *domain.Batch) ([]byte, error) {
	return yaml.Marshal(batch)
}
