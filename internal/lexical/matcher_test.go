package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

const matcherPosting = `Senior Backend Engineer

Requirements
Python, Kubernetes, PostgreSQL. Strong communication skills.

Nice to Have
Terraform and Grafana experience.
`

const matcherResume = `SUMMARY
Backend engineer.

SKILLS
Python, Kubernetes, Terraform

EXPERIENCE
Built APIs with Python and deployed to Kubernetes.
`

func parseBoth(t *testing.T) (*types.ParsedDocument, *types.ParsedDocument) {
	t.Helper()
	p := parsing.NewParser(taxonomy.Default())
	return p.ParseResume(matcherResume), p.ParsePosting(matcherPosting)
}

func conceptByTerm(r *Result, term string) *Concept {
	for i := range r.Concepts {
		if r.Concepts[i].Term == term {
			return &r.Concepts[i]
		}
	}
	return nil
}

func TestMatchWeightClasses(t *testing.T) {
	resume, posting := parseBoth(t)
	r := NewMatcher(taxonomy.Default(), "").Match(resume, posting)

	python := conceptByTerm(r, "python")
	require.NotNil(t, python)
	assert.Equal(t, types.ClassCritical, python.Class, "hard skill in Requirements")
	assert.True(t, python.Matched)

	comm := conceptByTerm(r, "communication")
	require.NotNil(t, comm)
	assert.Equal(t, types.ClassRequired, comm.Class, "Requirements section outranks soft-skill class")

	terraform := conceptByTerm(r, "terraform")
	require.NotNil(t, terraform)
	assert.Equal(t, types.ClassHardSkill, terraform.Class, "hard skill outside Requirements")
	assert.True(t, terraform.Matched)

	grafana := conceptByTerm(r, "grafana")
	require.NotNil(t, grafana)
	assert.False(t, grafana.Matched)
}

func TestMatchConceptSectionOfOrigin(t *testing.T) {
	resume, posting := parseBoth(t)
	r := NewMatcher(taxonomy.Default(), "").Match(resume, posting)

	python := conceptByTerm(r, "python")
	require.NotNil(t, python)
	assert.Equal(t, types.SectionRequirements, python.Section)

	terraform := conceptByTerm(r, "terraform")
	require.NotNil(t, terraform)
	assert.Equal(t, types.SectionPreferred, terraform.Section)
}

func TestMatchScoreBounds(t *testing.T) {
	resume, posting := parseBoth(t)
	r := NewMatcher(taxonomy.Default(), "").Match(resume, posting)

	assert.Greater(t, r.Score, 0.0)
	assert.LessOrEqual(t, r.Score, 100.0)
	for _, b := range r.Breakdown {
		assert.GreaterOrEqual(t, b.Score, 0.0)
		assert.LessOrEqual(t, b.Score, 100.0)
		assert.LessOrEqual(t, b.Matched, b.Total)
	}
}

func TestMatchBreakdownOrder(t *testing.T) {
	resume, posting := parseBoth(t)
	r := NewMatcher(taxonomy.Default(), "").Match(resume, posting)

	require.NotEmpty(t, r.Breakdown)
	rank := make(map[string]int)
	for i, class := range ClassOrder() {
		rank[string(class)] = i
	}
	for i := 1; i < len(r.Breakdown); i++ {
		assert.Less(t, rank[r.Breakdown[i-1].Category], rank[r.Breakdown[i].Category])
	}
}

func TestMatchSynonymExpansion(t *testing.T) {
	p := parsing.NewParser(taxonomy.Default())

	resume := p.ParseResume("SKILLS\nk8s, helm\n")
	posting := p.ParsePosting("Requirements\nKubernetes required.\n")
	r := NewMatcher(taxonomy.Default(), "").Match(resume, posting)
	kube := conceptByTerm(r, "kubernetes")
	require.NotNil(t, kube)
	assert.True(t, kube.Matched, "k8s on the résumé satisfies kubernetes")

	// And the abbreviation direction: posting asks for k8s, résumé spells it out.
	resume = p.ParseResume("SKILLS\nKubernetes, helm\n")
	posting = p.ParsePosting("Requirements\nk8s required.\n")
	r = NewMatcher(taxonomy.Default(), "").Match(resume, posting)
	kube = conceptByTerm(r, "k8s")
	require.NotNil(t, kube)
	assert.True(t, kube.Matched, "kubernetes on the résumé satisfies k8s")
}

func TestMatchMissingKeywordsExcludeNoiseTier(t *testing.T) {
	resume, posting := parseBoth(t)
	r := NewMatcher(taxonomy.Default(), "").Match(resume, posting)

	assert.Contains(t, r.MissingKeywords, "grafana")
	for _, kw := range r.MissingKeywords {
		c := conceptByTerm(r, kw)
		require.NotNil(t, c)
		assert.NotEqual(t, types.ClassOther, c.Class)
	}
}

func TestMatchEmptyPosting(t *testing.T) {
	p := parsing.NewParser(taxonomy.Default())
	resume := p.ParseResume(matcherResume)
	posting := p.ParsePosting("")

	r := NewMatcher(taxonomy.Default(), "").Match(resume, posting)
	assert.Zero(t, r.Score)
	assert.Empty(t, r.MissingKeywords)
}
