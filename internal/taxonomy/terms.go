package taxonomy

// certifications lists professional certification names and families.
var certifications = []string{
	// Cloud
	"aws certified", "aws solutions architect", "aws developer",
	"aws sysops", "aws devops", "aws machine learning",
	"aws data analytics", "aws security specialty",
	"azure certified", "azure administrator", "azure developer",
	"azure solutions architect", "azure devops", "azure data engineer",
	"gcp certified", "google cloud certified", "professional cloud architect",
	"professional data engineer", "professional machine learning",

	// Development
	"oracle certified", "java certified", "oracle java programmer",
	"microsoft certified", "mcsa", "mcse", "mcsd",
	"salesforce certified", "salesforce administrator", "salesforce developer",
	"red hat certified", "rhcsa", "rhce",

	// Project management
	"pmp", "project management professional", "prince2", "capm",
	"certified scrum master", "csm", "psm", "safe agilist",
	"pmi-acp", "six sigma", "lean six sigma", "green belt", "black belt",

	// Security
	"cissp", "cism", "cisa", "ceh", "certified ethical hacker",
	"comptia security+", "comptia network+", "comptia a+",
	"oscp", "ccna", "ccnp", "ccie",

	// Data & analytics
	"certified data professional", "cdp", "cloudera certified",
	"databricks certified", "snowflake certified",
	"tableau certified", "power bi certified",
	"google analytics certified", "google ads certified",

	// Agile & DevOps
	"kubernetes certified", "cka", "ckad", "cks",
	"docker certified", "dca", "terraform certified",
	"jenkins certified", "gitops certified",

	// Other
	"itil", "togaf", "cobit", "iso 27001", "soc 2",
	"gdpr certified", "hipaa certified",
}

// methodologies lists development and business methodologies.
var methodologies = []string{
	// Agile
	"agile", "scrum", "kanban", "lean", "xp", "extreme programming",
	"safe", "scaled agile", "nexus", "spotify model",
	"sprint", "standup", "retrospective", "backlog", "user stories",
	"story points", "velocity", "burndown",

	// Project management
	"waterfall", "pmbok", "kaizen", "pdca", "plan-do-check-act",

	// Development
	"test-driven development", "behavior-driven development",
	"clean code", "solid principles",
	"pair programming", "mob programming",
	"trunk-based development", "gitflow", "feature flags",

	// DevOps
	"sre", "site reliability engineering",

	// Architecture
	"monolithic", "saga pattern", "service mesh", "hexagonal architecture",

	// Data
	"elt", "data mesh", "lambda architecture", "kappa architecture",

	// Design
	"design thinking", "user-centered design", "human-centered design",
	"design sprint", "rapid prototyping",
}

// domains lists industry domains and business areas.
var domains = []string{
	// Finance
	"fintech", "banking", "financial services", "investment banking",
	"asset management", "wealth management", "insurance", "insurtech",
	"payments", "trading", "capital markets", "risk management",
	"compliance", "regulatory", "aml", "kyc", "fraud detection",

	// Healthcare
	"healthcare", "healthtech", "medical", "pharmaceutical", "pharma",
	"biotech", "life sciences", "clinical", "telehealth", "telemedicine",
	"electronic health records", "ehr", "emr", "hipaa", "fda",

	// E-commerce & retail
	"e-commerce", "ecommerce", "retail", "marketplace", "supply chain",
	"logistics", "inventory", "point of sale", "pos", "omnichannel",

	// Technology
	"saas", "paas", "iaas", "cloud computing", "enterprise software",
	"b2b", "b2c", "startup", "scale-up", "big tech", "faang",

	// Media & entertainment
	"media", "entertainment", "streaming", "gaming", "social media",
	"advertising", "adtech", "martech", "content management",

	// Education
	"edtech", "education", "e-learning", "lms", "learning management",
	"online learning", "mooc", "educational technology",

	// Government & public sector
	"government", "public sector", "defense", "aerospace",
	"civic tech", "govtech",

	// Other industries
	"automotive", "manufacturing", "energy", "utilities", "oil and gas",
	"renewable energy", "cleantech", "real estate", "proptech",
	"travel", "hospitality", "food tech", "agriculture", "agtech",
	"telecommunications", "telecom", "legal tech", "hr tech",
	"non-profit", "ngo", "consulting",
}
