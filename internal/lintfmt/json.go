package lintfmt

import (
	"encoding/json"
	"io"

	"lyrlint/internal/driver"
)

// JSON writes the machine-readable report.
func JSON(w io.Writer, rep driver.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
