package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/config"
)

func TestResolveKey_FlagWins(t *testing.T) {
	t.Setenv("TEST_MATCH_ENGINE_KEY", "from-env")

	assert.Equal(t, "from-flag", resolveKey("from-flag", "TEST_MATCH_ENGINE_KEY"))
	assert.Equal(t, "from-env", resolveKey("", "TEST_MATCH_ENGINE_KEY"))
}

func TestResolveKey_Unset(t *testing.T) {
	assert.Empty(t, resolveKey("", "TEST_MATCH_ENGINE_UNSET_KEY"))
}

func TestBuildTaxonomy_Default(t *testing.T) {
	tax, err := buildTaxonomy(config.Config{})
	require.NoError(t, err)
	assert.True(t, tax.Contains("python"))
}

func TestBuildTaxonomy_EvidenceCapOverride(t *testing.T) {
	tax, err := buildTaxonomy(config.Config{EvidenceCap: 3.0})
	require.NoError(t, err)
	assert.Equal(t, 3.0, tax.EvidenceCap())
}

func TestBuildTaxonomy_OverlayNotFound(t *testing.T) {
	_, err := buildTaxonomy(config.Config{
		TaxonomyOverlay: filepath.Join(t.TempDir(), "missing.json"),
	})
	assert.Error(t, err)
}

func TestBuildTaxonomy_OverlayFile(t *testing.T) {
	overlay := `{"version": "test-1", "hard_skills": ["internal-widget"]}`
	path := filepath.Join(t.TempDir(), "overlay.json")
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0644))

	tax, err := buildTaxonomy(config.Config{TaxonomyOverlay: path})
	require.NoError(t, err)
	assert.True(t, tax.Contains("internal-widget"))
}

func TestScoreCommandFlags(t *testing.T) {
	for _, flag := range []string{
		"resume", "posting", "company", "taxonomy", "config",
		"api-key", "model", "cache-size", "evidence-cap",
		"json", "verbose", "save", "db-url",
	} {
		assert.NotNil(t, scoreCmd.Flags().Lookup(flag), "flag %q should be registered", flag)
	}
}

func TestServeCommandFlags(t *testing.T) {
	for _, flag := range []string{
		"port", "db-url", "api-key", "model", "cache-size", "taxonomy", "config",
	} {
		assert.NotNil(t, serveCmd.Flags().Lookup(flag), "flag %q should be registered", flag)
	}

	port, err := serveCmd.Flags().GetInt("port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)
}

func TestParseListenPort(t *testing.T) {
	tests := []struct {
		listen string
		want   int
	}{
		{":8080", 8080},
		{"0.0.0.0:9000", 9000},
		{"localhost:3000", 3000},
		{"8081", 8081},
	}
	for _, tt := range tests {
		got, err := parseListenPort(tt.listen)
		require.NoError(t, err, "listen: %q", tt.listen)
		assert.Equal(t, tt.want, got, "listen: %q", tt.listen)
	}

	for _, bad := range []string{"", ":", ":notaport", "0", "70000", "host:0"} {
		_, err := parseListenPort(bad)
		assert.Error(t, err, "listen: %q", bad)
	}
}
