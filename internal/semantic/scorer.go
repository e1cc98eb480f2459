package semantic

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/types"
)

// sectionMapping pairs each posting section with the résumé sections where
// its content should be evidenced. Only these pairs are compared; cross
// pairings like Requirements vs Education carry no signal.
var sectionMapping = map[types.SectionType][]types.SectionType{
	types.SectionRequirements:     {types.SectionSkills, types.SectionExperience},
	types.SectionResponsibilities: {types.SectionExperience, types.SectionProjects},
	types.SectionPreferred:        {types.SectionSkills, types.SectionProjects},
	types.SectionQualifications:   {types.SectionSkills, types.SectionExperience, types.SectionEducation, types.SectionCertifications},
	types.SectionOverview:         {types.SectionSummary, types.SectionExperience, types.SectionSkills},
	types.SectionAbout:            {types.SectionSummary},
	types.SectionBenefits:         {types.SectionSummary},
}

// postingSectionOrder fixes iteration order for deterministic output.
var postingSectionOrder = []types.SectionType{
	types.SectionRequirements,
	types.SectionResponsibilities,
	types.SectionQualifications,
	types.SectionPreferred,
	types.SectionOverview,
	types.SectionAbout,
	types.SectionBenefits,
}

const (
	// highValueWeight boosts matches landing in Experience or Projects.
	highValueWeight = 1.5
	baseWeight      = 1.0

	// Safety rail thresholds.
	entitySupportThreshold = 0.3 // minimum matched-entity ratio backing a high score
	entitySupportKneePoint = 70.0
	highValueSimilarity    = 0.5  // similarity a high-value match must clear
	noHighValueCap         = 60.0 // ceiling without a high-value match
	lowCoverageCap         = 50.0 // ceiling with fewer than 2 section matches

	embedBatchSize   = 16
	embedConcurrency = 4
)

// Result is the semantic component of a score. Available is false when no
// embedding provider is configured or the provider failed; the engine then
// renormalizes the blend weights instead of erroring.
type Result struct {
	Available           bool
	Score               float64 // 0-100
	Matches             []types.SectionMatch
	SectionSimilarities map[types.SectionType]float64
	Notes               []string
}

// Scorer computes section-level semantic similarity. Safe for concurrent use;
// the cache is shared across calls for the process lifetime.
type Scorer struct {
	client llm.EmbeddingClient
	cache  *Cache
}

func NewScorer(client llm.EmbeddingClient, cache *Cache) *Scorer {
	if cache == nil {
		cache = NewCache(DefaultCacheSize)
	}
	return &Scorer{client: client, cache: cache}
}

// Score embeds the mapped section texts of both documents and aggregates the
// best per-posting-section similarities into a 0-100 score.
//
// entityRatio is the share of posting concepts the lexical matcher found on
// the résumé; it backs the entity-support rail. Score never returns an
// error: embedding failures degrade to an unavailable result.
func (s *Scorer) Score(ctx context.Context, resume, posting *types.ParsedDocument, entityRatio float64) *Result {
	if s.client == nil || !s.client.Available() {
		return &Result{Available: false}
	}

	texts := collectTexts(resume, posting)
	if len(texts) == 0 {
		return &Result{Available: false, Notes: []string{"no section text to compare"}}
	}

	vectors, err := s.embedAll(ctx, texts)
	if err != nil {
		return &Result{
			Available: false,
			Notes:     []string{fmt.Sprintf("embedding unavailable: %v", err)},
		}
	}

	result := &Result{
		Available:           true,
		SectionSimilarities: make(map[types.SectionType]float64),
	}

	for _, postingSection := range postingSectionOrder {
		postingText := posting.SectionText(postingSection)
		if postingText == "" {
			continue
		}
		postingVec, ok := vectors[cacheKey(postingText)]
		if !ok {
			continue
		}

		best := types.SectionMatch{PostingSection: postingSection, Similarity: -1}
		for _, resumeSection := range sectionMapping[postingSection] {
			resumeText := resume.SectionText(resumeSection)
			if resumeText == "" {
				continue
			}
			resumeVec, ok := vectors[cacheKey(resumeText)]
			if !ok {
				continue
			}
			if sim := cosineSimilarity(postingVec, resumeVec); sim > best.Similarity {
				best.Similarity = sim
				best.ResumeSection = resumeSection
			}
		}
		if best.Similarity < 0 {
			continue
		}
		if best.Similarity > 1 {
			best.Similarity = 1
		}
		best.HighValue = best.ResumeSection == types.SectionExperience || best.ResumeSection == types.SectionProjects
		result.Matches = append(result.Matches, best)
		result.SectionSimilarities[postingSection] = best.Similarity
	}

	result.Score = s.aggregate(result, entityRatio)
	return result
}

// aggregate computes the weighted mean similarity and applies the rails.
func (s *Scorer) aggregate(r *Result, entityRatio float64) float64 {
	if len(r.Matches) == 0 {
		return 0
	}

	var sum, weightSum float64
	hasHighValue := false
	for _, m := range r.Matches {
		w := baseWeight
		if m.HighValue {
			w = highValueWeight
		}
		if m.PostingSection == types.SectionBenefits {
			// Benefits text says little about fit either way.
			w = 0.5
		}
		sum += m.Similarity * w
		weightSum += w
		if m.HighValue && m.Similarity > highValueSimilarity {
			hasHighValue = true
		}
	}
	score := sum / weightSum * 100

	// Rail (a): a high similarity score must be backed by actual entity
	// overlap, or it is likely topic-level resemblance.
	if score > entitySupportKneePoint && entityRatio < entitySupportThreshold {
		penalty := (score - entitySupportKneePoint) * 0.5
		score -= penalty
		r.Notes = append(r.Notes, fmt.Sprintf("entity support low (%.0f%%), similarity discounted", entityRatio*100))
	}

	// Rail (b): without a strong Experience/Projects match the résumé never
	// demonstrates the work, only talks about it.
	if !hasHighValue && score > noHighValueCap {
		score = noHighValueCap
		r.Notes = append(r.Notes, "no strong experience/projects match, score capped")
	}

	// Rail (c): one matched section pair is too little coverage to trust.
	if len(r.Matches) < 2 {
		if score > lowCoverageCap {
			score = lowCoverageCap
		}
		score *= float64(len(r.Matches)) / 2
		r.Notes = append(r.Notes, "low section coverage, score scaled down")
	}

	return clamp(score, 0, 100)
}

// collectTexts gathers every distinct section text that will be embedded.
func collectTexts(resume, posting *types.ParsedDocument) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(text string) {
		if text == "" {
			return
		}
		key := cacheKey(text)
		if !seen[key] {
			seen[key] = true
			out = append(out, text)
		}
	}
	for _, postingSection := range postingSectionOrder {
		add(posting.SectionText(postingSection))
		for _, resumeSection := range sectionMapping[postingSection] {
			add(resume.SectionText(resumeSection))
		}
	}
	return out
}

// embedAll resolves texts to vectors, consulting the cache first and batch
// embedding the misses with bounded concurrency.
func (s *Scorer) embedAll(ctx context.Context, texts []string) (map[string][]float32, error) {
	vectors := make(map[string][]float32, len(texts))
	var misses []string
	for _, text := range texts {
		if vec, ok := s.cache.Get(text); ok {
			vectors[cacheKey(text)] = vec
		} else {
			misses = append(misses, text)
		}
	}
	if len(misses) == 0 {
		return vectors, nil
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(embedConcurrency)
	for start := 0; start < len(misses); start += embedBatchSize {
		batch := misses[start:min(start+embedBatchSize, len(misses))]
		g.Go(func() error {
			embedded, err := s.client.Embed(ctx, batch)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			for i, text := range batch {
				s.cache.Put(text, embedded[i])
				vectors[cacheKey(text)] = embedded[i]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

// cosineSimilarity returns the cosine of the angle between two vectors,
// clamped to 0 for opposing directions. Mismatched or zero vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	return sim
}

// MappedResumeSections returns the résumé sections associated with a posting
// section, in preference order. Used by the gap analyzer to recommend where
// a missing skill should be added.
func MappedResumeSections(postingSection types.SectionType) []types.SectionType {
	return sectionMapping[postingSection]
}

// SortMatches orders matches by similarity, best first.
func SortMatches(matches []types.SectionMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
