package generation

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/jonathan/cv-generator/internal/types"
)

// ATSReport is the result of an ATS compatibility check.
type ATSReport struct {
	OverallScore    float64  `json:"overall_score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	Grade           string   `json:"ats_grade"`
}

// lowScoreRecommendations are appended whenever the overall score lands
// below 70, regardless of which sub-scores were low.
var lowScoreRecommendations = []string{
	"Include more job-relevant keywords in your summary",
	"Add quantifiable achievements to your experience",
	"Ensure all technical skills from job posting are included",
}

// CheckATSCompatibility scores the résumé 0-100 by deterministic point
// accumulation: presence checks for the essential sections, keyword and skill
// overlap against the analysis when supplied, and a flat format baseline.
func CheckATSCompatibility(resume *types.ResumeData, analysis *types.JobAnalysis) ATSReport {
	report := ATSReport{
		Issues:          []string{},
		Recommendations: []string{},
	}
	score := 0.0

	if resume.PersonalInfo.FullName != "" {
		score += 5
	} else {
		report.Issues = append(report.Issues, "Missing full name")
	}
	if resume.PersonalInfo.Email != "" {
		score += 5
	} else {
		report.Issues = append(report.Issues, "Missing email address")
	}
	if resume.ProfessionalSummary != "" {
		score += 10
	} else {
		report.Issues = append(report.Issues, "Missing professional summary")
	}
	if len(resume.WorkExperience) > 0 {
		score += 10
	} else {
		report.Issues = append(report.Issues, "Missing work experience")
	}

	if len(resume.Skills.TechnicalSkills) > 0 {
		score += 10
	} else {
		report.Issues = append(report.Issues, "Missing technical skills")
	}
	if len(resume.Skills.SoftSkills) > 0 {
		score += 10
	} else {
		report.Recommendations = append(report.Recommendations, "Add soft skills to improve ATS score")
	}

	if analysis != nil {
		score += keywordAlignmentScore(resume, analysis)
		score += skillAlignmentScore(resume, analysis)
	}

	// Format baseline: generated documents are always ATS-friendly.
	score += 20

	report.OverallScore = math.Round(score*10) / 10
	report.Grade = atsGrade(score)

	if score < 70 {
		report.Recommendations = append(report.Recommendations, lowScoreRecommendations...)
	}
	return report
}

// keywordAlignmentScore grants up to 15 points for the share of the top ten
// job keywords appearing anywhere in the résumé content.
func keywordAlignmentScore(resume *types.ResumeData, analysis *types.JobAnalysis) float64 {
	keywords := head(analysis.Keywords, 10)
	if len(keywords) == 0 {
		return 0
	}

	blob, err := json.Marshal(resume)
	if err != nil {
		return 0
	}
	resumeText := strings.ToLower(string(blob))

	matching := 0
	for _, keyword := range keywords {
		if strings.Contains(resumeText, strings.ToLower(keyword)) {
			matching++
		}
	}
	return float64(matching) / 10 * 15
}

// skillAlignmentScore grants up to 15 points for the share of job technical
// skills present in the résumé's technical skill list.
func skillAlignmentScore(resume *types.ResumeData, analysis *types.JobAnalysis) float64 {
	if len(analysis.TechnicalSkills) == 0 {
		return 0
	}

	userSkills := make(map[string]bool, len(resume.Skills.TechnicalSkills))
	for _, skill := range resume.Skills.TechnicalSkills {
		userSkills[strings.ToLower(skill)] = true
	}

	matching := 0
	for _, skill := range analysis.TechnicalSkills {
		if userSkills[strings.ToLower(skill)] {
			matching++
		}
	}
	return float64(matching) / float64(len(analysis.TechnicalSkills)) * 15
}

// atsGrade maps a score to a letter grade.
func atsGrade(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	default:
		return "D"
	}
}
