package srt

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteReport persists the audit report as indented JSON.
func WriteReport(r Report, path string) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal audit report: %w", err)
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
