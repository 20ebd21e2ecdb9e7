package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/seedscout/pkg/score"
)

// ExportResultJSON serializes one result with 2-space indentation, the
// same shape score.ResultSink.OnResult carries.
func ExportResultJSON(result score.Result) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// ExportResultsJSON serializes a whole batch of results as one JSON array,
// indented the same way.
func ExportResultsJSON(results []score.Result) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}

// SaveResultsJSONToFile writes results to filepath as one indented JSON
// array, 0644 permissions, matching dungo's SaveJSONToFile.
func SaveResultsJSONToFile(results []score.Result, filepath string) error {
	data, err := ExportResultsJSON(results)
	if err != nil {
		return fmt.Errorf("export: marshal results: %w", err)
	}
	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("export: write %s: %w", filepath, err)
	}
	return nil
}
