package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchFailed(t *testing.T) {
	var b Batch
	assert.Zero(t, b.Failed())

	b.Add(Result{Input: "1", Output: "1.00", OK: true})
	b.Add(Result{Input: "x", Error: "not a number"})
	b.Add(Result{Input: "y", Error: "not a number"})

	assert.Len(t, b.Results, 3)
	assert.Equal(t, 2, b.Failed())
}

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()
	assert.Equal(t, 2, cfg.Number.DecimalPlaces)
	assert.True(t, cfg.Number.ThousandsSeparator)
	assert.Equal(t, "$", cfg.Number.CurrencySymbol)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
}
