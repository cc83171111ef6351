package types

// Experience level classifications produced by job analysis.
const (
	LevelEntry        = "entry"
	LevelMid          = "mid"
	LevelSenior       = "senior"
	LevelNotSpecified = "not_specified"
)

// JobInfo holds best-effort metadata extracted from a job posting.
// Company is currently never populated; the extraction only scans for a
// title-like line.
type JobInfo struct {
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
}

// JobAnalysis is the structured output of analyzing a job description.
// All fields are derived purely from the input text, so analyzing the same
// text twice yields identical output.
type JobAnalysis struct {
	Keywords                []string `json:"keywords"`
	TechnicalSkills         []string `json:"technical_skills"`
	SoftSkills              []string `json:"soft_skills"`
	ExperienceLevel         string   `json:"experience_level"`
	EducationRequirements   []string `json:"education_requirements"`
	JobInfo                 JobInfo  `json:"job_info"`
	OptimizationSuggestions []string `json:"optimization_suggestions"`
}
