package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestDefault(t *testing.T) {
	tax := Default()

	assert.NotEmpty(t, tax.Version())
	assert.Equal(t, DefaultEvidenceCap, tax.EvidenceCap())
	assert.GreaterOrEqual(t, len(tax.Terms(types.CategoryHardSkill)), 250)
	assert.GreaterOrEqual(t, len(tax.Terms(types.CategorySoftSkill)), 60)
}

func TestCategory(t *testing.T) {
	tax := Default()

	cat, ok := tax.Category("python")
	require.True(t, ok)
	assert.Equal(t, types.CategoryHardSkill, cat)

	cat, ok = tax.Category("Communication")
	require.True(t, ok)
	assert.Equal(t, types.CategorySoftSkill, cat)

	_, ok = tax.Category("definitely-not-a-skill")
	assert.False(t, ok)
}

func TestExpand_Synonyms(t *testing.T) {
	tax := Default()

	expanded := tax.Expand("k8s")
	assert.Contains(t, expanded, "k8s")
	assert.Contains(t, expanded, "kubernetes")

	// Reverse direction works too.
	assert.Contains(t, tax.Expand("kubernetes"), "k8s")
}

func TestExpand_RoleVariantsInPhrases(t *testing.T) {
	tax := Default()

	expanded := tax.Expand("software engineer")
	assert.Contains(t, expanded, "software engineer")
	assert.Contains(t, expanded, "software engineering")
}

func TestContains_ViaSynonym(t *testing.T) {
	tax := Default()

	assert.True(t, tax.Contains("python"))
	assert.True(t, tax.Contains("k8s"))
	assert.False(t, tax.Contains("flurble"))
}

func TestIsStopword_Tiers(t *testing.T) {
	tax := Default()

	assert.True(t, tax.IsStopword("the"), "generic stopword")
	assert.True(t, tax.IsStopword("apply"), "posting boilerplate")
	assert.False(t, tax.IsStopword("python"))
}

func TestIsActionVerb(t *testing.T) {
	tax := Default()

	assert.True(t, tax.IsActionVerb("built"))
	assert.True(t, tax.IsActionVerb("Led"))
	assert.False(t, tax.IsActionVerb("was"))
}

func TestWithOverlay_AddsTerms(t *testing.T) {
	base := Default()
	tax := base.WithOverlay(Overlay{
		Version:    "acme-1",
		HardSkills: []string{"Internal-Widget"},
		Synonyms:   map[string][]string{"iw": {"internal-widget"}},
	})

	cat, ok := tax.Category("internal-widget")
	require.True(t, ok)
	assert.Equal(t, types.CategoryHardSkill, cat)
	assert.Contains(t, tax.Expand("iw"), "internal-widget")
	assert.Contains(t, tax.Version(), "acme-1")

	// Base taxonomy is not mutated.
	_, ok = base.Category("internal-widget")
	assert.False(t, ok)
	assert.NotContains(t, base.Version(), "acme-1")
}

func TestWithOverlay_EvidenceCap(t *testing.T) {
	tax := Default().WithOverlay(Overlay{EvidenceCap: 3.0})

	assert.Equal(t, 3.0, tax.EvidenceCap())
	assert.Equal(t, DefaultEvidenceCap, Default().EvidenceCap())
}

func TestCompanyStopwords(t *testing.T) {
	stops := CompanyStopwords("Globex Dynamics Inc")

	assert.True(t, stops["globex dynamics inc"])
	assert.True(t, stops["globex"])
	assert.True(t, stops["dynamics"])
	assert.True(t, stops["inc"], "corporate suffixes always included")
	assert.False(t, stops["python"])
}

func TestCompanyStopwords_Empty(t *testing.T) {
	assert.Empty(t, CompanyStopwords(""))
	assert.Empty(t, CompanyStopwords("   "))
}
