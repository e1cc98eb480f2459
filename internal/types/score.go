package types

// Weight classes assigned to posting concepts by the lexical matcher.
type WeightClass string

const (
	ClassCritical  WeightClass = "critical"
	ClassHardSkill WeightClass = "hard_skill"
	ClassRequired  WeightClass = "required"
	ClassSoftSkill WeightClass = "soft_skill"
	ClassPreferred WeightClass = "preferred"
	ClassOther     WeightClass = "other"
)

// SectionMatch records the best semantic pairing found for one posting section.
// Similarity is cosine similarity in [0,1]. HighValue is true only when the
// résumé counterpart is Experience or Projects.
type SectionMatch struct {
	PostingSection SectionType `json:"posting_section"`
	ResumeSection  SectionType `json:"resume_section"`
	Similarity     float64     `json:"similarity"`
	HighValue      bool        `json:"high_value"`
}

// ComponentScores holds the three blended score components, each 0-100.
type ComponentScores struct {
	Lexical  float64 `json:"lexical"`
	Semantic float64 `json:"semantic"`
	Evidence float64 `json:"evidence"`
}

// CategoryBreakdown summarizes lexical matching for one weight class.
type CategoryBreakdown struct {
	Category   string   `json:"category"`
	Matched    int      `json:"matched"`
	Total      int      `json:"total"`
	Score      float64  `json:"score"`
	TopMissing []string `json:"top_missing,omitempty"`
}

// SectionAnalysis maps matched posting skills to the résumé sections that
// demonstrate them, and lists the skills not found at all.
type SectionAnalysis struct {
	ByResumeSection map[SectionType][]string `json:"by_resume_section"`
	NotFound        []string                 `json:"not_found"`
}

// SemanticAnalysis carries the section-level semantic matching detail.
type SemanticAnalysis struct {
	TopMatches          []SectionMatch          `json:"top_matches"`
	SectionSimilarities map[SectionType]float64 `json:"section_similarities"`
	Notes               []string                `json:"notes,omitempty"`
}

// GapItem is one posting concept absent from the résumé, annotated with where
// it should be addressed. A skill appears in at most one GapItem.
type GapItem struct {
	Skill              string      `json:"skill"`
	Category           string      `json:"category"`
	Priority           WeightClass `json:"priority"`
	RecommendedSection SectionType `json:"recommended_section"`
	Rationale          string      `json:"rationale"`
}

// ExperienceGap compares years of experience required by the posting against
// years evidenced by the résumé. Zero values mean "not extractable".
type ExperienceGap struct {
	ResumeYears  *int `json:"resume_years,omitempty"`
	PostingYears *int `json:"posting_years,omitempty"`
	Gap          int  `json:"gap"`
}

// ScoreResult is the full serializable output of one scoring call.
type ScoreResult struct {
	FinalScore        float64             `json:"final_score"`
	Components        ComponentScores     `json:"components"`
	SemanticAvailable bool                `json:"semantic_available"`
	InsufficientInput bool                `json:"insufficient_input,omitempty"`
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
	SectionAnalysis   SectionAnalysis     `json:"section_analysis"`
	SemanticAnalysis  SemanticAnalysis    `json:"semantic_analysis"`
	GapAnalysis       []GapItem           `json:"gap_analysis"`
	ExperienceGap     *ExperienceGap      `json:"experience_gap,omitempty"`
	MatchedKeywords   []string            `json:"matched_keywords,omitempty"`
	MissingKeywords   []string            `json:"missing_keywords,omitempty"`
	MatchedPhrases    []string            `json:"matched_phrases,omitempty"`
	MissingPhrases    []string            `json:"missing_phrases,omitempty"`
	TaxonomyVersion   string              `json:"taxonomy_version"`
}
