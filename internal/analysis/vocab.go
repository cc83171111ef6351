package analysis

// Fixed vocabularies matched against lower-cased job description text. These
// are loaded once at process start and never mutated.

// technicalSkills are matched as substrings of the job text.
var technicalSkills = []string{
	"python", "java", "javascript", "react", "node.js", "sql", "html", "css",
	"aws", "docker", "kubernetes", "git", "agile", "scrum", "machine learning",
	"data analysis", "project management", "leadership", "communication",
	"problem solving", "teamwork", "flask", "django", "mongodb", "postgresql",
	"mysql", "redis", "elasticsearch", "api", "rest", "graphql", "microservices",
	"devops", "ci/cd", "jenkins", "terraform", "ansible", "linux", "bash",
	"typescript", "vue.js", "angular", "spring", "hibernate", "junit",
	"pytest", "testing", "tdd", "bdd", "selenium", "cypress",
}

// softSkills are matched as substrings of the job text.
var softSkills = []string{
	"communication", "leadership", "teamwork", "problem solving",
	"analytical", "creative", "detail oriented", "organized",
	"time management", "adaptable", "collaborative", "innovative",
	"critical thinking", "presentation", "interpersonal",
}

// educationKeywords are matched as substrings of the job text.
var educationKeywords = []string{
	"bachelor", "master", "phd", "degree", "computer science", "engineering",
	"mathematics", "statistics", "certification", "certified",
}

// experienceLevels are evaluated in declaration order; the first level with
// any matching trigger wins. Keep entry before mid before senior so that a
// posting like "junior to senior" classifies as entry deterministically.
var experienceLevels = []struct {
	Level    string
	Triggers []string
}{
	{"entry", []string{"entry", "junior", "associate", "0-2 years", "graduate", "intern"}},
	{"mid", []string{"mid", "intermediate", "2-5 years", "3-5 years", "experienced"}},
	{"senior", []string{"senior", "lead", "principal", "5+ years", "7+ years", "expert", "architect"}},
}

// jobTitleMarkers flag a line in the first few lines of a posting as the
// probable title line.
var jobTitleMarkers = []string{"position", "role", "job", "title"}

// stopWords is the standard English stop-word set used to filter keyword
// candidates. Tokens shorter than three characters are filtered separately,
// so only the longer entries matter in practice.
var stopWords = func() map[string]bool {
	words := []string{
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
		"your", "yours", "yourself", "yourselves", "he", "him", "his",
		"himself", "she", "her", "hers", "herself", "it", "its", "itself",
		"they", "them", "their", "theirs", "themselves", "what", "which",
		"who", "whom", "this", "that", "these", "those", "am", "is", "are",
		"was", "were", "be", "been", "being", "have", "has", "had", "having",
		"do", "does", "did", "doing", "a", "an", "the", "and", "but", "if",
		"or", "because", "as", "until", "while", "of", "at", "by", "for",
		"with", "about", "against", "between", "into", "through", "during",
		"before", "after", "above", "below", "to", "from", "up", "down", "in",
		"out", "on", "off", "over", "under", "again", "further", "then",
		"once", "here", "there", "when", "where", "why", "how", "all", "any",
		"both", "each", "few", "more", "most", "other", "some", "such", "no",
		"nor", "not", "only", "own", "same", "so", "than", "too", "very",
		"can", "will", "just", "don", "should", "now", "ain", "aren",
		"couldn", "didn", "doesn", "hadn", "hasn", "haven", "isn", "mightn",
		"mustn", "needn", "shan", "shouldn", "wasn", "weren", "won", "wouldn",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}()

// genericSuggestions are always appended, in this order, after the
// input-derived suggestions.
var genericSuggestions = []string{
	"Use action verbs to describe your achievements",
	"Quantify your accomplishments with numbers",
	"Tailor your professional summary to match the job requirements",
	"Ensure your CV format is ATS-friendly (simple, clean layout)",
	"Use standard section headings (Experience, Education, Skills)",
}
