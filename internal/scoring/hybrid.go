package scoring

// Blend weights. Each branch sums to 1.0; the semantic-unavailable branch
// renormalizes rather than leaving a hole in the blend.
const (
	weightLexical  = 0.55
	weightSemantic = 0.35
	weightEvidence = 0.10

	weightLexicalNoSemantic  = 0.90
	weightEvidenceNoSemantic = 0.10
)

// combine blends the three component scores into the final 0-100 score.
func combine(lexical, semantic, evidence float64, semanticAvailable bool) float64 {
	var final float64
	if semanticAvailable {
		final = lexical*weightLexical + semantic*weightSemantic + evidence*weightEvidence
	} else {
		final = lexical*weightLexicalNoSemantic + evidence*weightEvidenceNoSemantic
	}
	return clamp(final, 0, 100)
}
