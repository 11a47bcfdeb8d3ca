// Package audit loads an audit pack, a directory of JSON snapshots collected
// with the AWS CLI, into normalized record tables. Each snapshot is
// independently optional and may arrive in one of two shapes: rich objects
// ("modern") or positional arrays ("legacy"). Every loader degrades to an
// empty table on missing or malformed input.
package audit

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// readJSON reads and unmarshals path into v. Missing and malformed files are
// recoverable: the caller gets false and an untouched destination.
func readJSON(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("Audit file unavailable", "path", path, "error", err)
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.Debug("Audit file malformed", "path", path, "error", err)
		return false
	}
	return true
}

// readRows reads a snapshot that is expected to be a JSON array, returning
// its raw elements. Non-array and unreadable files yield nil.
func readRows(path string) []json.RawMessage {
	var rows []json.RawMessage
	if !readJSON(path, &rows) {
		return nil
	}
	return rows
}

// isObject reports whether a raw JSON value is an object. The shape of a
// table is decided by its first element: objects select the modern decoder,
// anything else falls through to positional mapping.
func isObject(raw json.RawMessage) bool {
	return firstByte(raw) == '{'
}

func isArray(raw json.RawMessage) bool {
	return firstByte(raw) == '['
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// legacyRows decodes rows as positional records. Records may arrive grouped
// one level deep (the way query projections over nested inventories come
// out); a single level of nesting is flattened before positional mapping.
// Rows that are not arrays are dropped.
func legacyRows(rows []json.RawMessage) [][]json.RawMessage {
	var flat [][]json.RawMessage
	for _, row := range rows {
		var cells []json.RawMessage
		if err := json.Unmarshal(row, &cells); err != nil {
			continue
		}
		if len(cells) > 0 && isArray(cells[0]) {
			for _, inner := range cells {
				var rec []json.RawMessage
				if err := json.Unmarshal(inner, &rec); err == nil {
					flat = append(flat, rec)
				}
			}
			continue
		}
		flat = append(flat, cells)
	}
	return flat
}

// cellString renders a positional cell as a string. JSON strings decode
// directly; null becomes empty; other scalars keep their JSON text.
func cellString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	text := strings.TrimSpace(string(raw))
	if text == "null" {
		return ""
	}
	return text
}

func cellInt(raw json.RawMessage) int {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	n, _ := strconv.Atoi(cellString(raw))
	return n
}

func cellBool(raw json.RawMessage) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	return strings.EqualFold(cellString(raw), "true")
}

// parseAmount parses a cost amount string. Amounts that fail a standard
// decimal parse get one scientific-notation retry with the exponent marker
// lowercased; anything still unparseable defaults to zero.
func parseAmount(s string) float64 {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, "E", "e"), 64); err == nil {
		return v
	}
	return 0
}
