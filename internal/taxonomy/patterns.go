package taxonomy

import "regexp"

// actionVerbs signal demonstrated achievement near a skill mention.
var actionVerbs = []string{
	// Leadership
	"led", "managed", "directed", "supervised", "coordinated", "oversaw",
	"headed", "spearheaded", "orchestrated", "mentored", "coached",

	// Achievement
	"achieved", "accomplished", "delivered", "completed", "exceeded",
	"attained", "earned", "won", "secured",

	// Creation
	"built", "created", "developed", "designed", "architected",
	"established", "founded", "launched", "implemented", "deployed",
	"engineered", "constructed", "formulated",

	// Improvement
	"improved", "enhanced", "optimized", "streamlined", "modernized",
	"transformed", "revamped", "upgraded", "accelerated", "boosted",
	"increased", "reduced", "decreased", "minimized", "eliminated",

	// Analysis
	"analyzed", "researched", "investigated", "evaluated", "assessed",
	"identified", "discovered", "diagnosed", "resolved",

	// Communication
	"presented", "communicated", "negotiated", "collaborated",
	"partnered", "facilitated", "influenced", "persuaded",

	// Other
	"drove", "executed", "performed", "conducted", "maintained",
	"supported", "contributed", "participated", "assisted",
}

// MetricPatterns detect quantified achievements (percentages, money, counts).
var MetricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$[\d,]+[KMB]?`),
	regexp.MustCompile(`(?i)[\d,]+\s*(?:users?|customers?|clients?)`),
	regexp.MustCompile(`(?i)[\d,]+\s*(?:team members?|engineers?|developers?)`),
	regexp.MustCompile(`\d+x\b`),
	regexp.MustCompile(`#\d+\b`),
	regexp.MustCompile(`(?i)\d+\s*(?:projects?|applications?|systems?)`),
}

// YearsExperiencePatterns extract years-of-experience statements. Each
// pattern captures the year count in group 1 (and optionally group 2 for
// ranges, where the larger value wins).
var YearsExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s+)?(?:experience|exp)\b`),
	regexp.MustCompile(`(?i)(?:minimum|min|at least)\s*(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)(\d+)\s*[-–]\s*(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)\s*(?:experience|exp)?\s*(?:required|needed|necessary)`),
	regexp.MustCompile(`(?i)(?:over|more than)\s*(\d+)\s*(?:years?|yrs?)`),
}

// JobTitlePatterns detect job titles in free text.
var JobTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(senior|junior|lead|principal|staff|distinguished)?\s*(software|backend|frontend|full[- ]?stack|devops|data|ml|machine learning|platform|infrastructure|site reliability|sre|qa|test|mobile|ios|android|embedded|systems?|security|cloud|solutions?)\s*(engineer|developer|architect|specialist)\b`),
	regexp.MustCompile(`(?i)\b(engineering|product|project|program|technical|delivery|development|it|software)\s*manager\b`),
	regexp.MustCompile(`(?i)\b(director|head|vp|vice president|chief)\s*(of\s+)?(engineering|technology|product|data|analytics|information|digital|operations)\b`),
	regexp.MustCompile(`(?i)\b(cto|cio|cpo|cdo|ciso)\b`),
	regexp.MustCompile(`(?i)\b(data|business|product|marketing|financial)\s*(analyst|scientist|engineer|architect)\b`),
	regexp.MustCompile(`(?i)\b(senior|junior|lead)?\s*(ui|ux|ui/ux|product|visual|graphic|interaction)\s*designer\b`),
}
