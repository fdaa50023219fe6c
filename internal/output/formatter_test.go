package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lski/toolbox/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func buildTestBatch() *domain.Batch {
	return &domain.Batch{
		Operation: "format",
		Results: []domain.Result{
			{Input: "1234.5", Output: "1,234.50", OK: true},
			{Input: "abc", Error: `not a number: "abc"`},
			{Input: "-7", Output: "-7.00", OK: true},
		},
	}
}

func TestTextFormatter(t *testing.T) {
	out, err := TextFormatter{}.Format(buildTestBatch())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "1234.5  1,234.50", lines[0])
	assert.Equal(t, `abc     error: not a number: "abc"`, lines[1])
	assert.Equal(t, "-7      -7.00", lines[2])
	assert.Equal(t, "1 of 3 inputs failed", lines[3])
}

func TestTextFormatter_Total(t *testing.T) {
	batch := &domain.Batch{Operation: "sum", Results: []domain.Result{{Input: "$1", Output: "1.00", OK: true}}, Total: "$1.00"}
	out, err := TextFormatter{}.Format(batch)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Total: $1.00\n")
}

func TestCSVFormatterKeepsInputOrder(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestBatch())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	want := []string{
		"Operation,Input,Output,OK,Error",
		"format,1234.5,\"1,234.50\",true,",
		"format,abc,,false,\"not a number: \"\"abc\"\"\"",
		"format,-7,-7.00,true,",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestBatch())
	require.NoError(t, err)

	var got domain.Batch
	require.NoError(t, json.Unmarshal(out, &got))
	if diff := cmp.Diff(*buildTestBatch(), got); diff != "" {
		t.Fatalf("json round trip mismatch (-want +got):\n%s", diff)
	}
	assert.NotContains(t, string(out), `"total"`)
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestBatch())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "operation: format\n"))

	var got domain.Batch
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, *buildTestBatch(), got)
}

func TestGetFormatterByNameAndAliases(t *testing.T) {
	cases := map[string]string{
		"text":    "text",
		"TEXT ":   "text",
		"console": "text",
		"yml":     "yaml",
		"json":    "json",
		"csv":     "csv",
	}
	for in, want := range cases {
		f := GetFormatterByName(in)
		require.NotNil(t, f, in)
		assert.Equal(t, want, f.Name())
	}
	assert.Nil(t, GetFormatterByName("html"))
	assert.Equal(t, []string{"csv", "json", "text", "yaml"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "yml")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, buildTestBatch(), "csv"))
	assert.True(t, strings.HasPrefix(buf.String(), "Operation,"))

	err := Render(&buf, buildTestBatch(), "pdf")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "csv, json, text, yaml")
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "count", F: func(b *domain.Batch) ([]byte, error) {
		return []byte(strings.Repeat("x", len(b.Results))), nil
	}}
	out, err := f.Format(buildTestBatch())
	require.NoError(t, err)
	assert.Equal(t, "xxx", string(out))
	assert.Equal(t, "count", f.Name())
}
