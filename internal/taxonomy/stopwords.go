package taxonomy

// baseStopwords are generic English function words.
var baseStopwords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "was", "are", "were", "be",
	"been", "being", "have", "has", "had", "do", "does", "did", "will",
	"would", "could", "should", "may", "might", "must", "can", "this",
	"that", "these", "those", "i", "you", "he", "she", "it", "we", "they",
	"us", "them", "what", "which", "who", "when", "where", "why", "how",
	"all", "each", "every", "both", "few", "more", "most", "some", "such",
	"into", "through", "above", "below", "between", "under", "over",
	"out", "up", "down", "off", "then", "than", "so", "just", "also",
	"very", "too", "any", "only", "own", "same", "no", "not", "now",
}

// uiStopwords are job-site UI/navigation words that leak into scraped postings.
var uiStopwords = []string{
	"apply", "job", "save", "show", "view", "click", "here", "read",
	"more", "less", "back", "next", "previous", "search", "filter",
	"sort", "share", "print", "email", "download", "upload", "submit",
	"send", "post", "date", "ago", "day", "week", "month", "year",
	"new", "updated", "end", "start", "while", "during", "about",
	"our", "your", "their", "its", "my",
}

// postingStopwords are boilerplate words that appear in most job postings
// and carry no matching signal. Kept distinct from the generic lists so the
// lexical matcher can document the tiering.
var postingStopwords = []string{
	"responsibilities", "responsibility", "requirements", "requirement",
	"qualifications", "qualification", "preferred", "required", "must",
	"candidate", "candidates", "position", "role", "opportunity",
	"looking", "seeking", "hiring", "join", "team", "company",
	"ideal", "strong", "excellent", "good", "great", "best",
	"ability", "able", "skills", "skill", "experience", "experienced",
	"knowledge", "understanding", "familiar", "familiarity",
	"work", "working", "environment", "based", "including", "includes",
	"well", "within", "across", "using", "used", "use",
	"ensure", "ensuring", "provide", "providing", "support", "supporting",
	"develop", "developing", "development", "create", "creating",
	"manage", "managing", "management", "lead", "leading",
	"build", "building", "design", "designing", "implement", "implementing",
	"etc", "other", "others", "various", "multiple", "different",
	"minimum", "maximum", "least", "plus", "years",
	"full", "time", "part", "remote", "onsite", "hybrid", "office",
	"salary", "benefits", "compensation", "package", "competitive",
	"equal", "employer", "employment", "applicants", "applicant",
}

// companySuffixes are corporate suffixes excluded alongside a company name.
var companySuffixes = []string{
	"ltd", "limited", "inc", "incorporated", "corp", "corporation",
	"llc", "plc", "group", "holdings", "company", "co",
}
