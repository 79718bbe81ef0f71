package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes one or more reports as a JSON artifact.
func WriteJSON(reports []*Report, path string) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
