// Package report defines the output contract handed to renderers and the
// built-in JSON and text emitters.
package report

import (
	"time"

	"github.com/ppiankov/packspectre/internal/analyzer"
	"github.com/ppiankov/packspectre/internal/audit"
)

// Data is the full analysis bundle: the normalized audit pack, every finding
// list, and the scalar insights. A renderer consumes this structure only and
// never re-reads the audit pack files.
type Data struct {
	Tool      string           `json:"tool"`
	Version   string           `json:"version"`
	Timestamp time.Time        `json:"timestamp"`
	Target    Target           `json:"target"`
	Pack      *audit.Pack      `json:"pack"`
	Analysis  *analyzer.Result `json:"analysis"`
}

// Target identifies the analyzed audit pack.
type Target struct {
	Type    string `json:"type"`
	URIHash string `json:"uri_hash"`
}

// Reporter renders analysis data to its configured destination.
type Reporter interface {
	Generate(data Data) error
}
