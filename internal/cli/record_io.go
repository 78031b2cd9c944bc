package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/brutalist-filter/internal/record"
)

// loadRecord reads a JSON or YAML file (chosen by extension, defaulting
// to JSON) into a record.Value, matching SPEC_FULL.md's "two supported
// record-ingestion formats" decision — the evaluator itself stays
// format-agnostic per §6.3, so this is purely CLI-side plumbing.
func loadRecord(path string) (record.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read record %s: %w", path, err)
	}

	var v any
	if strings.EqualFold(filepath.Ext(path), ".yaml") || strings.EqualFold(filepath.Ext(path), ".yml") {
		var node map[string]any
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("parse record %s: %w", path, err)
		}
		v = node
	} else {
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse record %s: %w", path, err)
		}
	}

	return record.Native(v), nil
}
