package domain

// Result is the outcome of applying one operation to one input value.
type Result struct {
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`
	OK     bool   `yaml:"ok" json:"ok"`
	Error  string `yaml:"error,omitempty" json:"error,omitempty"`
}

// Batch collects the results of one CLI invocation.
type Batch struct {
	Operation string   `yaml:"operation" json:"operation"`
	Results   []Result `yaml:"results" json:"results"`
	// Total is set by aggregating operations such as sum.
	Total string `yaml:"total,omitempty" json:"total,omitempty"`
}

// Add appends a result.
func (b *Batch) Add(r Result) {
	b.Results = append(b.Results, r)
}

// Failed counts results that could not be computed.
func (b *Batch) Failed() int {
	n := 0
	for _, r := range b.Results {
		if !r.OK {
			n++
		}
	}
	return n
}
