// Package parsing turns raw résumé and posting text into typed sections and
// extracted entities, assembled into a ParsedDocument.
package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/types"
)

// headingRule binds one heading pattern to a section type. Rule order within
// the tables below is the declaration order used for ambiguity tiebreaks.
type headingRule struct {
	section types.SectionType
	pattern *regexp.Regexp
}

// resumeHeadingRules recognize résumé section headings. When a line matches
// several rules, the longest pattern match wins; equal lengths resolve to the
// earliest rule in this table. That tiebreak is a fixed policy, not an
// implementation accident.
var resumeHeadingRules = []headingRule{
	{types.SectionSummary, regexp.MustCompile(`(?i)\b(professional\s+)?summary\b`)},
	{types.SectionSummary, regexp.MustCompile(`(?i)\bprofile\b`)},
	{types.SectionSummary, regexp.MustCompile(`(?i)\bobjective\b`)},
	{types.SectionSummary, regexp.MustCompile(`(?i)\babout\s*me\b`)},
	{types.SectionSummary, regexp.MustCompile(`(?i)\bpersonal\s+statement\b`)},
	{types.SectionSummary, regexp.MustCompile(`(?i)\bcareer\s+summary\b`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)\b(core\s+|technical\s+|key\s+)?skills\b`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)\bcompetencies\b`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)\bexpertise\b`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)\btechnical\s+proficiencies\b`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)\btechnologies\b`)},
	{types.SectionSkills, regexp.MustCompile(`(?i)\btools?\s*(&|and)\s*technologies\b`)},
	{types.SectionExperience, regexp.MustCompile(`(?i)\b(work\s+|professional\s+)?experience\b`)},
	{types.SectionExperience, regexp.MustCompile(`(?i)\bemployment(\s+history)?\b`)},
	{types.SectionExperience, regexp.MustCompile(`(?i)\bcareer\s+history\b`)},
	{types.SectionExperience, regexp.MustCompile(`(?i)\bwork\s+history\b`)},
	{types.SectionExperience, regexp.MustCompile(`(?i)\bprofessional\s+background\b`)},
	{types.SectionEducation, regexp.MustCompile(`(?i)\beducation(al)?\s*(background)?\b`)},
	{types.SectionEducation, regexp.MustCompile(`(?i)\bacademic\s+(background|qualifications)\b`)},
	{types.SectionEducation, regexp.MustCompile(`(?i)\bdegrees?\b`)},
	{types.SectionCertifications, regexp.MustCompile(`(?i)\bcertifications?\b`)},
	{types.SectionCertifications, regexp.MustCompile(`(?i)\bcredentials\b`)},
	{types.SectionCertifications, regexp.MustCompile(`(?i)\blicenses?\s*(&|and)?\s*certifications?\b`)},
	{types.SectionCertifications, regexp.MustCompile(`(?i)\baccreditations?\b`)},
	{types.SectionProjects, regexp.MustCompile(`(?i)\b(key\s+|selected\s+|notable\s+)?projects?\b`)},
	{types.SectionProjects, regexp.MustCompile(`(?i)\bportfolio\b`)},
	{types.SectionProjects, regexp.MustCompile(`(?i)\bachievements?\b`)},
}

// postingHeadingRules recognize job-posting section headings.
var postingHeadingRules = []headingRule{
	{types.SectionOverview, regexp.MustCompile(`(?i)\b(job\s+|role\s+)?overview\b`)},
	{types.SectionOverview, regexp.MustCompile(`(?i)\b(job\s+|role\s+)?description\b`)},
	{types.SectionOverview, regexp.MustCompile(`(?i)\babout\s+the\s+(role|position|job)\b`)},
	{types.SectionOverview, regexp.MustCompile(`(?i)\bthe\s+role\b`)},
	{types.SectionOverview, regexp.MustCompile(`(?i)\bposition\s+summary\b`)},
	{types.SectionResponsibilities, regexp.MustCompile(`(?i)\b(key\s+)?responsibilities\b`)},
	{types.SectionResponsibilities, regexp.MustCompile(`(?i)\b(job\s+)?duties\b`)},
	{types.SectionResponsibilities, regexp.MustCompile(`(?i)\bwhat\s+you('ll| will)\s+do\b`)},
	{types.SectionResponsibilities, regexp.MustCompile(`(?i)\byour\s+role\b`)},
	{types.SectionResponsibilities, regexp.MustCompile(`(?i)\bday\s+to\s+day\b`)},
	{types.SectionRequirements, regexp.MustCompile(`(?i)\brequirements?\b`)},
	{types.SectionRequirements, regexp.MustCompile(`(?i)\bmust\s+have\b`)},
	{types.SectionRequirements, regexp.MustCompile(`(?i)\brequired\s+(skills?|qualifications?|experience)\b`)},
	{types.SectionRequirements, regexp.MustCompile(`(?i)\bessential\s+(skills?|qualifications?|criteria)\b`)},
	{types.SectionRequirements, regexp.MustCompile(`(?i)\bwhat\s+you('ll)?\s+need\b`)},
	{types.SectionRequirements, regexp.MustCompile(`(?i)\bwhat\s+we('re)?\s+looking\s+for\b`)},
	{types.SectionPreferred, regexp.MustCompile(`(?i)\bnice\s+to\s+have\b`)},
	{types.SectionPreferred, regexp.MustCompile(`(?i)\bpreferred\s*(skills?|qualifications?)?\b`)},
	{types.SectionPreferred, regexp.MustCompile(`(?i)\bbonus\s*(points?|skills?)?\b`)},
	{types.SectionPreferred, regexp.MustCompile(`(?i)\bdesirable\b`)},
	{types.SectionPreferred, regexp.MustCompile(`(?i)\bplus\s+points?\b`)},
	{types.SectionQualifications, regexp.MustCompile(`(?i)\b(minimum\s+)?qualifications?\b`)},
	{types.SectionQualifications, regexp.MustCompile(`(?i)\beducation(al)?\s*(requirements?)?\b`)},
	{types.SectionQualifications, regexp.MustCompile(`(?i)\bexperience\s+required\b`)},
	{types.SectionBenefits, regexp.MustCompile(`(?i)\bbenefits?\b`)},
	{types.SectionBenefits, regexp.MustCompile(`(?i)\bperks?\b`)},
	{types.SectionBenefits, regexp.MustCompile(`(?i)\bcompensation\b`)},
	{types.SectionBenefits, regexp.MustCompile(`(?i)\bwhat\s+we\s+offer\b`)},
	{types.SectionBenefits, regexp.MustCompile(`(?i)\bwhy\s+join\s+us\b`)},
	{types.SectionAbout, regexp.MustCompile(`(?i)\babout\s+(us|the\s+company|our\s+company)\b`)},
	{types.SectionAbout, regexp.MustCompile(`(?i)\bcompany\s+(overview|description|background)\b`)},
	{types.SectionAbout, regexp.MustCompile(`(?i)\bwho\s+we\s+are\b`)},
	{types.SectionAbout, regexp.MustCompile(`(?i)\bour\s+(mission|story|culture)\b`)},
}

// sectionIndicators mark lines that look like headings even without other
// formatting cues.
var sectionIndicators = []string{
	"summary", "experience", "education", "skills",
	"responsibilities", "requirements", "qualifications",
}

var bulletPrefix = regexp.MustCompile(`^[\d.\-*\x{2022}]\s*`)

// DetectSections splits raw text into an ordered, non-overlapping list of
// typed sections whose [Start,End) byte spans partition the whole input.
// Text before the first recognized heading lands in an Unclassified section.
func DetectSections(text string, kind types.DocumentKind) []types.Section {
	if text == "" {
		return nil
	}

	rules := resumeHeadingRules
	if kind == types.KindPosting {
		rules = postingHeadingRules
	}

	type boundary struct {
		offset  int
		title   string
		section types.SectionType
	}
	var boundaries []boundary

	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		trimmed := strings.TrimRight(line, "\n")
		if isHeadingLine(trimmed) {
			if st, ok := matchHeading(trimmed, rules); ok {
				boundaries = append(boundaries, boundary{
					offset:  offset,
					title:   strings.TrimSpace(trimmed),
					section: st,
				})
			}
		}
		offset += len(line)
	}

	var sections []types.Section
	ordinal := 0
	appendSection := func(st types.SectionType, title string, start, end int) {
		if start >= end {
			return
		}
		content := text[start:end]
		if title != "" {
			// Heading line belongs to the span but not the body; strip the
			// first line so Content holds only section text.
			if idx := strings.Index(content, "\n"); idx >= 0 {
				content = content[idx+1:]
			} else {
				content = ""
			}
		}
		sections = append(sections, types.Section{
			Type:    st,
			Ordinal: ordinal,
			Title:   title,
			Content: content,
			Start:   start,
			End:     end,
		})
		ordinal++
	}

	if len(boundaries) == 0 {
		appendSection(types.SectionUnclassified, "", 0, len(text))
		return sections
	}

	if boundaries[0].offset > 0 {
		appendSection(types.SectionUnclassified, "", 0, boundaries[0].offset)
	}
	for i, b := range boundaries {
		end := len(text)
		if i+1 < len(boundaries) {
			end = boundaries[i+1].offset
		}
		appendSection(b.section, b.title, b.offset, end)
	}
	return sections
}

// matchHeading resolves a heading line to a section type. Ambiguous lines
// matching multiple patterns resolve by longest match, then table order.
func matchHeading(line string, rules []headingRule) (types.SectionType, bool) {
	best := -1
	var bestSection types.SectionType
	for _, rule := range rules {
		loc := rule.pattern.FindStringIndex(line)
		if loc == nil {
			continue
		}
		if length := loc[1] - loc[0]; length > best {
			best = length
			bestSection = rule.section
		}
	}
	if best < 0 {
		return "", false
	}
	return bestSection, true
}

// isHeadingLine reports whether a line is shaped like a section heading:
// short, few words, and formatted as a title (caps, colon, bullet) or
// containing a known section indicator word.
func isHeadingLine(line string) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" || len(stripped) > 80 {
		return false
	}
	wordCount := len(strings.Fields(stripped))
	if wordCount > 6 {
		return false
	}
	if isUpperCase(stripped) {
		return true
	}
	if isTitleCase(stripped) && wordCount <= 4 {
		return true
	}
	if strings.HasSuffix(stripped, ":") {
		return true
	}
	if bulletPrefix.MatchString(stripped) && wordCount <= 3 {
		return true
	}
	lower := strings.ToLower(stripped)
	for _, indicator := range sectionIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func isUpperCase(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

func isTitleCase(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
