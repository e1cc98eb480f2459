package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overlaySchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"hard_skills": {"type": "array", "items": {"type": "string"}},
		"evidence_cap": {"type": "number", "exclusiveMinimum": 0}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(overlaySchema, `{"hard_skills": ["terraform"], "evidence_cap": 2.5}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(overlaySchema, `{"hard_skills": "terraform"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "hard_skills", validationErr.Errors[0].Field)
}

func TestValidateJSONString_UnknownField(t *testing.T) {
	err := ValidateJSONString(overlaySchema, `{"skills": ["go"]}`)
	assert.Error(t, err)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": `, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestResolveSchemaPath(t *testing.T) {
	// Test runs from internal/schemas, the repo schema is two levels up.
	path := ResolveSchemaPath(OverlaySchemaPath)
	require.NotEmpty(t, path)
	assert.FileExists(t, path)
}

func TestLoadOverlay_Valid(t *testing.T) {
	content := `{
		"version": "acme-1",
		"hard_skills": ["internal-tool"],
		"synonyms": {"internal-tool": ["itool"]},
		"evidence_cap": 2.5
	}`

	tmpFile := filepath.Join(t.TempDir(), "overlay.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	overlay, err := LoadOverlay(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "acme-1", overlay.Version)
	assert.Equal(t, []string{"internal-tool"}, overlay.HardSkills)
	assert.Equal(t, []string{"itool"}, overlay.Synonyms["internal-tool"])
	assert.Equal(t, 2.5, overlay.EvidenceCap)
}

func TestLoadOverlay_SchemaViolation(t *testing.T) {
	content := `{"hard_skills": "not-an-array"}`

	tmpFile := filepath.Join(t.TempDir(), "overlay.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	_, err := LoadOverlay(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid taxonomy overlay")
}

func TestLoadOverlay_FileNotFound(t *testing.T) {
	_, err := LoadOverlay(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlay file not found")
}
