package scoring

import (
	"github.com/jonathan/resume-matcher/internal/lexical"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/semantic"
	"github.com/jonathan/resume-matcher/internal/types"
)

// gapPriorityOrder is the fixed dedup policy: when a skill could classify at
// several tiers, the first tier in this order wins. Inherited convention,
// kept stable so results are reproducible.
var gapPriorityOrder = []types.WeightClass{
	types.ClassCritical,
	types.ClassRequired,
	types.ClassHardSkill,
	types.ClassPreferred,
}

var gapRationale = map[types.WeightClass]string{
	types.ClassCritical:  "required hard skill the posting names explicitly",
	types.ClassRequired:  "listed in the posting's requirements",
	types.ClassHardSkill: "technical skill the posting mentions",
	types.ClassPreferred: "nice-to-have that would strengthen the match",
}

// analyzeGaps builds one GapItem per unmatched posting concept at the four
// actionable tiers. Soft-skill and noise-tier concepts never produce gaps.
func analyzeGaps(concepts []lexical.Concept) []types.GapItem {
	var out []types.GapItem
	seen := make(map[string]bool)
	for _, class := range gapPriorityOrder {
		for _, c := range concepts {
			if c.Class != class || c.Matched || seen[c.Term] {
				continue
			}
			seen[c.Term] = true
			out = append(out, types.GapItem{
				Skill:              parsing.DisplayName(c.Term),
				Category:           gapCategory(c.Category),
				Priority:           class,
				RecommendedSection: recommendSection(c),
				Rationale:          gapRationale[class],
			})
		}
	}
	return out
}

func gapCategory(cat types.EntityCategory) string {
	if cat == "" {
		return "keyword"
	}
	return string(cat)
}

// recommendSection picks the résumé section where a missing concept should
// be addressed. The concept's posting section of origin resolves through the
// posting→résumé section mapping; within the mapped candidates the one that
// suits the concept's category wins, otherwise the mapping's preference
// order. Concepts with no section (plain keywords, unclassified text) fall
// back on category alone.
func recommendSection(c lexical.Concept) types.SectionType {
	preferred := categorySection(c.Category)
	mapped := semantic.MappedResumeSections(c.Section)
	if len(mapped) == 0 {
		return preferred
	}
	for _, st := range mapped {
		if st == preferred {
			return st
		}
	}
	return mapped[0]
}

// categorySection is the section a concept's taxonomy category naturally
// lives in: skills on the skills list, certifications with the other
// credentials, activity-shaped concepts demonstrated in experience.
func categorySection(cat types.EntityCategory) types.SectionType {
	switch cat {
	case types.CategoryHardSkill:
		return types.SectionSkills
	case types.CategoryCertification:
		return types.SectionCertifications
	default:
		return types.SectionExperience
	}
}

// experienceGap compares stated years of experience. Only meaningful when
// the posting states a figure; a résumé shortfall yields a positive gap.
func experienceGap(resume, posting *types.ParsedDocument) *types.ExperienceGap {
	if posting.YearsExperience == nil {
		return nil
	}
	gap := &types.ExperienceGap{
		ResumeYears:  resume.YearsExperience,
		PostingYears: posting.YearsExperience,
	}
	if resume.YearsExperience != nil && *posting.YearsExperience > *resume.YearsExperience {
		gap.Gap = *posting.YearsExperience - *resume.YearsExperience
	}
	return gap
}
