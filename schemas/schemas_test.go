package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func loadTaxonomySchema(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("taxonomy.schema.json")
	require.NoError(t, err, "should be able to read schema file")
	return string(data)
}

func TestTaxonomySchema_ValidJSON(t *testing.T) {
	var v interface{}
	err := json.Unmarshal([]byte(loadTaxonomySchema(t)), &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestTaxonomySchema_Compiles(t *testing.T) {
	_, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(loadTaxonomySchema(t)))
	assert.NoError(t, err, "schema should compile as a JSON Schema")
}

func TestTaxonomySchema_AcceptsOverlay(t *testing.T) {
	overlay := `{
		"version": "acme-1",
		"hard_skills": ["internal-tool", "proprietary-db"],
		"soft_skills": ["stakeholder management"],
		"synonyms": {"internal-tool": ["itool", "i-tool"]},
		"evidence_cap": 2.5
	}`

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(loadTaxonomySchema(t)),
		gojsonschema.NewStringLoader(overlay),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid(), "well-formed overlay should validate")
}

func TestTaxonomySchema_RejectsBadOverlay(t *testing.T) {
	cases := map[string]string{
		"wrong type":        `{"hard_skills": "go"}`,
		"unknown field":     `{"skills": ["go"]}`,
		"zero evidence cap": `{"evidence_cap": 0}`,
		"empty term":        `{"domains": [""]}`,
	}

	for name, overlay := range cases {
		t.Run(name, func(t *testing.T) {
			result, err := gojsonschema.Validate(
				gojsonschema.NewStringLoader(loadTaxonomySchema(t)),
				gojsonschema.NewStringLoader(overlay),
			)
			require.NoError(t, err)
			assert.False(t, result.Valid())
		})
	}
}
