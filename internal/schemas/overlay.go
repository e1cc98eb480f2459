package schemas

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

// OverlaySchemaPath is the repo-relative location of the overlay schema.
const OverlaySchemaPath = "schemas/taxonomy.schema.json"

// LoadOverlay reads a taxonomy overlay JSON file, validates it against the
// overlay schema when the schema file can be located, and unmarshals it.
func LoadOverlay(path string) (taxonomy.Overlay, error) {
	var overlay taxonomy.Overlay

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return overlay, fmt.Errorf("overlay file not found: %s", path)
		}
		return overlay, fmt.Errorf("failed to read overlay file: %w", err)
	}

	// Schema validation is best-effort path resolution: a binary running
	// outside the repo tree still loads overlays, it just skips the schema.
	if schemaPath := ResolveSchemaPath(OverlaySchemaPath); schemaPath != "" {
		if err := ValidateJSON(schemaPath, path); err != nil {
			return overlay, fmt.Errorf("invalid taxonomy overlay: %w", err)
		}
	}

	if err := json.Unmarshal(content, &overlay); err != nil {
		return overlay, fmt.Errorf("failed to parse overlay JSON: %w", err)
	}

	return overlay, nil
}
