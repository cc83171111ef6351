package generation

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-generator/internal/types"
)

// verbReplacements upgrades generic verbs to stronger ones. Applied in order
// as plain substring replacement; matches inside longer words are a known
// limitation of this transform.
var verbReplacements = [][2]string{
	{"worked on", "developed"},
	{"helped", "collaborated"},
	{"did", "executed"},
	{"made", "created"},
	{"used", "leveraged"},
	{"handled", "managed"},
}

// quantificationHints suggest a metric bullet when the trigger word appears
// in a description that does not already carry an "[X]" placeholder.
var quantificationHints = []struct {
	Trigger string
	Hint    string
}{
	{"project", "• Delivered [X] projects"},
	{"team", "• Led team of [X] members"},
	{"efficiency", "• Improved efficiency by [X]%"},
	{"cost", "• Reduced costs by $[X]"},
	{"time", "• Completed in [X] weeks"},
	{"users", "• Served [X] users"},
	{"performance", "• Increased performance by [X]%"},
}

// OptimizeSummary appends missing job-relevant skills and keywords to the
// professional summary. The transform is deterministic and adds nothing when
// the summary already covers the analysis's top terms.
func OptimizeSummary(summary string, analysis *types.JobAnalysis) string {
	if analysis == nil {
		return summary
	}

	missing := make([]string, 0)
	summaryLower := strings.ToLower(summary)
	for _, keyword := range head(analysis.Keywords, 5) {
		if !strings.Contains(summaryLower, strings.ToLower(keyword)) {
			missing = append(missing, keyword)
		}
	}

	optimized := summary
	if len(missing) > 0 {
		additions := make([]string, 0)
		for _, skill := range analysis.TechnicalSkills {
			if !strings.Contains(summaryLower, skill) {
				additions = append(additions, skill)
			}
		}
		if len(additions) > 0 {
			optimized += fmt.Sprintf(" Experienced in %s with proven track record in %s.",
				strings.Join(head(additions, 3), ", "), missing[0])
		}
	}

	for _, keyword := range head(analysis.Keywords, 3) {
		if !strings.Contains(strings.ToLower(optimized), strings.ToLower(keyword)) {
			optimized = injectKeyword(optimized, keyword)
		}
	}
	return optimized
}

// injectKeyword appends a keyword clause whose phrasing depends on whether
// the keyword is about leadership, about development, or neither.
func injectKeyword(text, keyword string) string {
	lower := strings.ToLower(keyword)
	switch {
	case containsAny(lower, "management", "leadership", "strategy"):
		return text + fmt.Sprintf(" Demonstrated %s capabilities across multiple projects.", keyword)
	case containsAny(lower, "development", "programming", "coding"):
		return text + fmt.Sprintf(" Strong %s experience with focus on best practices.", keyword)
	default:
		return text + fmt.Sprintf(" Expertise in %s.", keyword)
	}
}

// OptimizeExperienceDescription rewrites an experience description: generic
// verbs are upgraded, quantification hints are appended for trigger words,
// and up to three missing top keywords are worked into the first substantial
// line.
func OptimizeExperienceDescription(description string, analysis *types.JobAnalysis) string {
	if analysis == nil {
		return description
	}

	optimized := description
	for _, replacement := range verbReplacements {
		optimized = strings.ReplaceAll(optimized, replacement[0], replacement[1])
	}

	optimized = addQuantificationHints(optimized)

	for _, keyword := range head(analysis.Keywords, 3) {
		if !strings.Contains(strings.ToLower(optimized), strings.ToLower(keyword)) {
			optimized = enhanceFirstLine(optimized, keyword)
		}
	}
	return optimized
}

// addQuantificationHints appends a hint line for every trigger word present
// in the description, unless it already contains an "[X]" placeholder.
func addQuantificationHints(description string) string {
	lower := strings.ToLower(description)
	enhanced := description
	for _, hint := range quantificationHints {
		if strings.Contains(lower, hint.Trigger) && !strings.Contains(description, "[X]") {
			enhanced += "\n" + hint.Hint + " ahead of schedule."
		}
	}
	return enhanced
}

// enhanceFirstLine appends a keyword clause to the first substantial line
// (longer than 20 characters), choosing phrasing by keyword category.
func enhanceFirstLine(description, keyword string) string {
	lines := strings.Split(description, "\n")
	lower := strings.ToLower(keyword)

	for i, line := range lines {
		if strings.TrimSpace(line) == "" || len(line) <= 20 {
			continue
		}
		switch {
		case lower == "agile" || lower == "scrum":
			lines[i] = line + fmt.Sprintf(" using %s methodology", keyword)
		case lower == "api" || lower == "rest" || lower == "microservices":
			lines[i] = line + fmt.Sprintf(" implementing %s solutions", keyword)
		default:
			lines[i] = line + fmt.Sprintf(" utilizing %s", keyword)
		}
		break
	}
	return strings.Join(lines, "\n")
}

// PrioritizeSkills reorders user skills so those matching the job's skills
// come first. The comparison is case-insensitive and the partition is stable:
// relative order inside each group is preserved.
func PrioritizeSkills(userSkills, jobSkills []string) []string {
	jobSet := make(map[string]bool, len(jobSkills))
	for _, skill := range jobSkills {
		jobSet[strings.ToLower(skill)] = true
	}

	matching := make([]string, 0, len(userSkills))
	others := make([]string, 0, len(userSkills))
	for _, skill := range userSkills {
		if jobSet[strings.ToLower(skill)] {
			matching = append(matching, skill)
		} else {
			others = append(others, skill)
		}
	}
	return append(matching, others...)
}

// head returns at most n leading elements of s.
func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// containsAny reports whether s contains any of the substrings.
func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
