package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

const sampleResume = `Jane Doe

SUMMARY
Senior software engineer specializing in Go and distributed systems.

SKILLS
Go, Python, Kubernetes, PostgreSQL, Docker

EXPERIENCE
Senior Software Engineer, Acme Corp
Led a team of 5 engineers. Built Go microservices handling 2M users.
Reduced latency by 40% using Redis caching.

CERTIFICATIONS
AWS Certified Solutions Architect
`

func TestParseResume(t *testing.T) {
	p := NewParser(taxonomy.Default())
	doc := p.ParseResume(sampleResume)

	assert.Equal(t, types.KindResume, doc.Kind)
	require.NotEmpty(t, doc.Sections)
	assert.True(t, doc.HasSection(types.SectionSkills))
	assert.True(t, doc.HasSection(types.SectionExperience))

	norms := doc.NormalizedSet()
	assert.True(t, norms["go"])
	assert.True(t, norms["kubernetes"])
	assert.True(t, norms["postgresql"])
	assert.True(t, norms["aws certified"])

	assert.Contains(t, doc.JobTitles, "senior software engineer")
}

func TestParsePostingYearsAndEntities(t *testing.T) {
	p := NewParser(taxonomy.Default())
	doc := p.ParsePosting("Requirements\nMinimum 5 years of experience with Python and AWS.\nKubernetes is a plus.\n")

	require.NotNil(t, doc.YearsExperience)
	assert.Equal(t, 5, *doc.YearsExperience)

	norms := doc.NormalizedSet()
	assert.True(t, norms["python"])
	assert.True(t, norms["kubernetes"])
}

func TestEvidenceStrengthSectionAndContextBonuses(t *testing.T) {
	p := NewParser(taxonomy.Default())
	doc := p.ParseResume(sampleResume)

	byNorm := func(section types.SectionType, norm string) *types.Entity {
		for _, e := range doc.EntitiesInSection(section) {
			if e.Normalized == norm {
				e := e
				return &e
			}
		}
		return nil
	}

	// Bare list mention: base only.
	inSkills := byNorm(types.SectionSkills, "go")
	require.NotNil(t, inSkills)
	assert.InDelta(t, 1.0, inSkills.EvidenceStrength, 0.001)

	// Experience section with a metric and an action verb in the window.
	inExp := byNorm(types.SectionExperience, "go")
	require.NotNil(t, inExp)
	assert.InDelta(t, 1.0+0.2+0.2+0.1, inExp.EvidenceStrength, 0.001)

	// Certifications start at 1.5.
	cert := byNorm(types.SectionCertifications, "aws certified")
	require.NotNil(t, cert)
	assert.GreaterOrEqual(t, cert.EvidenceStrength, 1.5)
}

func TestEvidenceStrengthCapped(t *testing.T) {
	tax := taxonomy.Default()
	e := NewExtractor(tax)
	// Experience section, metric and verb nearby, certification base: the sum
	// would exceed the cap without clamping.
	text := "Achieved AWS Certified status and reduced costs by 30% for 2M users."
	entities := e.Extract(text, types.SectionExperience, types.KindResume)
	require.NotEmpty(t, entities)
	for _, ent := range entities {
		assert.LessOrEqual(t, ent.EvidenceStrength, tax.EvidenceCap())
	}
}

func TestExtractDeduplicatesWithinSection(t *testing.T) {
	e := NewExtractor(taxonomy.Default())
	entities := e.Extract("go services, more go, and yet more go", types.SectionSkills, types.KindResume)

	count := 0
	for _, ent := range entities {
		if ent.Normalized == "go" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractSymbolTerms(t *testing.T) {
	e := NewExtractor(taxonomy.Default())
	entities := e.Extract("Worked with C++ and C# on .NET services.", types.SectionExperience, types.KindResume)

	norms := make(map[string]bool)
	for _, ent := range entities {
		norms[ent.Normalized] = true
	}
	assert.True(t, norms["c++"])
	assert.True(t, norms["c#"])
	assert.True(t, norms[".net"])
}

func TestExtractSurfaceExcludesBoundaryPunctuation(t *testing.T) {
	e := NewExtractor(taxonomy.Default())
	entities := e.Extract("Platform services (.NET) and C++, plus Go.", types.SectionExperience, types.KindResume)

	surfaces := make(map[string]string)
	for _, ent := range entities {
		surfaces[ent.Normalized] = ent.Surface
	}
	assert.Equal(t, ".NET", surfaces[".net"])
	assert.Equal(t, "C++", surfaces["c++"])
	assert.Equal(t, "Go", surfaces["go"])
}

func TestExtractYearsExperience(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"5+ years of experience", 5},
		{"minimum 3 years", 3},
		{"3-5 years of Go", 5},
		{"over 10 years building systems", 10},
	}
	for _, tt := range tests {
		got := ExtractYearsExperience(tt.text)
		require.NotNil(t, got, "text: %q", tt.text)
		assert.Equal(t, tt.want, *got, "text: %q", tt.text)
	}
	assert.Nil(t, ExtractYearsExperience("no numbers here"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Kubernetes", DisplayName("k8s"))
	assert.Equal(t, "PostgreSQL", DisplayName("postgresql"))
	assert.Equal(t, "Machine Learning", DisplayName("machine learning"))
	assert.Equal(t, "REST API", DisplayName("rest api"))
	assert.Equal(t, "Terraform", DisplayName("terraform"))
	assert.Equal(t, "", DisplayName("  "))
}
