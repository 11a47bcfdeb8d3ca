package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONReporter writes the full bundle as indented JSON.
type JSONReporter struct {
	Writer io.Writer
}

// Generate writes the bundle.
func (r *JSONReporter) Generate(data Data) error {
	enc := json.NewEncoder(r.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode JSON report: %w", err)
	}
	return nil
}
