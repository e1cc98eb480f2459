package parsing

import "strings"

// displayNames maps canonical lowercase taxonomy terms to their conventional
// casing for reports and gap suggestions.
var displayNames = map[string]string{
	"go":         "Go",
	"golang":     "Go",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"kubernetes": "Kubernetes",
	"k8s":        "Kubernetes",
	"react":      "React",
	"reactjs":    "React",
	"vue":        "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgresql": "PostgreSQL",
	"mysql":      "MySQL",
	"mongodb":    "MongoDB",
	"graphql":    "GraphQL",
	"rest api":   "REST API",
	"ci/cd":      "CI/CD",
	"cicd":       "CI/CD",
	"aws":        "AWS",
	"gcp":        "GCP",
	"sql":        "SQL",
	"nosql":      "NoSQL",
	"html":       "HTML",
	"css":        "CSS",
	"php":        "PHP",
	"ios":        "iOS",
	"devops":     "DevOps",
	"pytorch":    "PyTorch",
	"tensorflow": "TensorFlow",
	"cpp":        "C++",
	"csharp":     "C#",
	"dotnet":     ".NET",
}

// acronyms render fully uppercased when no explicit display name exists.
var acronyms = map[string]bool{
	"api": true, "sdk": true, "etl": true, "bi": true, "crm": true,
	"erp": true, "sre": true, "qa": true, "ux": true, "ui": true,
	"pmp": true, "cissp": true, "ccna": true, "itil": true, "togaf": true,
	"dns": true, "cdn": true, "ssl": true, "tls": true, "jwt": true,
	"oauth": true, "saas": true, "paas": true, "iaas": true,
	"hipaa": true, "gdpr": true, "kyc": true, "aml": true,
}

// DisplayName renders a canonical lowercase term with conventional casing.
// Unknown single words get an initial capital; phrases are title-cased
// word by word, with known acronyms uppercased.
func DisplayName(term string) string {
	lower := strings.ToLower(strings.TrimSpace(term))
	if lower == "" {
		return ""
	}
	if canonical, ok := displayNames[lower]; ok {
		return canonical
	}
	words := strings.Fields(lower)
	for i, w := range words {
		switch {
		case displayNames[w] != "":
			words[i] = displayNames[w]
		case acronyms[w]:
			words[i] = strings.ToUpper(w)
		default:
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
