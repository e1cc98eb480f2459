package taxonomy

// abbreviationMap maps common tech abbreviations to their full forms.
// Expansion runs both ways (see Taxonomy.Expand).
var abbreviationMap = map[string][]string{
	"js":         {"javascript"},
	"ts":         {"typescript"},
	"py":         {"python"},
	"rb":         {"ruby"},
	"ml":         {"machine learning"},
	"ai":         {"artificial intelligence"},
	"dl":         {"deep learning"},
	"nlp":        {"natural language processing"},
	"aws":        {"amazon web services"},
	"gcp":        {"google cloud platform", "google cloud"},
	"azure":      {"microsoft azure"},
	"k8s":        {"kubernetes"},
	"docker":     {"containerization", "containers"},
	"ci":         {"continuous integration"},
	"cd":         {"continuous deployment", "continuous delivery"},
	"cicd":       {"ci/cd", "continuous integration", "continuous deployment"},
	"api":        {"apis", "rest api", "restful"},
	"sql":        {"mysql", "postgresql", "database"},
	"nosql":      {"mongodb", "dynamodb", "non-relational"},
	"db":         {"database", "databases"},
	"ui":         {"user interface"},
	"ux":         {"user experience"},
	"qa":         {"quality assurance", "testing"},
	"pm":         {"project management", "product management"},
	"scrum":      {"agile", "sprint"},
	"agile":      {"scrum", "kanban", "sprint"},
	"oop":        {"object oriented programming", "object-oriented"},
	"fp":         {"functional programming"},
	"tdd":        {"test driven development", "test-driven"},
	"bdd":        {"behavior driven development"},
	"saas":       {"software as a service"},
	"paas":       {"platform as a service"},
	"iaas":       {"infrastructure as a service"},
	"rest":       {"restful", "rest api"},
	"graphql":    {"graph ql"},
	"react":      {"reactjs", "react.js"},
	"vue":        {"vuejs", "vue.js"},
	"angular":    {"angularjs", "angular.js"},
	"node":       {"nodejs", "node.js"},
	"express":    {"expressjs", "express.js"},
	"django":     {"python django"},
	"flask":      {"python flask"},
	"spring":     {"spring boot", "spring framework"},
	"dotnet":     {".net", "dot net", "asp.net"},
	"tf":         {"tensorflow"},
	"pytorch":    {"torch"},
	"pandas":     {"data analysis"},
	"numpy":      {"numerical python"},
	"git":        {"github", "gitlab", "version control"},
	"linux":      {"unix", "ubuntu", "centos", "redhat"},
	"bash":       {"shell", "shell scripting"},
	"powershell": {"windows scripting"},
	"html":       {"html5"},
	"css":        {"css3", "styling"},
	"sass":       {"scss"},
	"jwt":        {"json web token", "authentication"},
	"oauth":      {"oauth2", "authentication"},
	"sso":        {"single sign-on"},
	"sdk":        {"software development kit"},
	"ide":        {"integrated development environment"},
	"vscode":     {"visual studio code"},
	"jira":       {"atlassian", "issue tracking"},
	"confluence": {"atlassian", "documentation"},
	"etl":        {"extract transform load", "data pipeline"},
	"bi":         {"business intelligence"},
	"kpi":        {"key performance indicator", "metrics"},
	"roi":        {"return on investment"},
	"b2b":        {"business to business"},
	"b2c":        {"business to consumer"},
	"crm":        {"customer relationship management", "salesforce"},
	"erp":        {"enterprise resource planning"},
	"hr":         {"human resources"},
	"devops":     {"dev ops", "development operations"},
	"sre":        {"site reliability engineering", "site reliability"},
	"sla":        {"service level agreement"},
	"cdn":        {"content delivery network"},
	"dns":        {"domain name system"},
	"ssl":        {"tls", "https", "security"},
	"vpc":        {"virtual private cloud"},
	"ec2":        {"elastic compute", "aws compute"},
	"s3":         {"aws storage", "object storage"},
	"rds":        {"relational database service"},
	"lambda":     {"serverless", "aws lambda"},
}

// roleVariations collapses role/title suffix families so that e.g.
// manager, management and managing count as one concept.
var roleVariations = map[string][]string{
	"manager":        {"management", "managing"},
	"management":     {"manager", "managing"},
	"engineer":       {"engineering"},
	"engineering":    {"engineer"},
	"developer":      {"development", "developing"},
	"development":    {"developer", "developing"},
	"analyst":        {"analysis", "analytics", "analyzing"},
	"analysis":       {"analyst", "analytics"},
	"analytics":      {"analyst", "analysis"},
	"architect":      {"architecture", "architecting"},
	"architecture":   {"architect"},
	"administrator":  {"administration", "admin"},
	"administration": {"administrator", "admin"},
	"admin":          {"administrator", "administration"},
	"consultant":     {"consulting", "consultancy"},
	"consulting":     {"consultant", "consultancy"},
	"director":       {"directing", "directorship"},
	"lead":           {"leader", "leading", "leadership"},
	"leader":         {"lead", "leading", "leadership"},
	"leadership":     {"lead", "leader", "leading"},
	"coordinator":    {"coordination", "coordinating"},
	"coordination":   {"coordinator", "coordinating"},
	"specialist":     {"specialization", "specialized"},
	"supervisor":     {"supervision", "supervising"},
	"programme":      {"program", "programs", "programmes"},
	"program":        {"programme", "programs", "programmes"},
	"project":        {"projects"},
	"projects":       {"project"},
}
