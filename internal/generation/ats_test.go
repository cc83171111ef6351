package generation

import (
	"testing"

	"github.com/jonathan/cv-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckATSCompatibility_CompleteResumeNoAnalysis(t *testing.T) {
	report := CheckATSCompatibility(testResume(), nil)

	// 5+5+10+10+10+10 presence points plus the 20 format baseline.
	assert.Equal(t, 70.0, report.OverallScore)
	assert.Equal(t, "B", report.Grade)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Recommendations)
}

func TestCheckATSCompatibility_EmptyResume(t *testing.T) {
	report := CheckATSCompatibility(&types.ResumeData{}, nil)

	assert.Equal(t, 20.0, report.OverallScore)
	assert.Equal(t, "D", report.Grade)
	assert.Equal(t, []string{
		"Missing full name",
		"Missing email address",
		"Missing professional summary",
		"Missing work experience",
		"Missing technical skills",
	}, report.Issues)
	require.Len(t, report.Recommendations, 4)
	assert.Equal(t, "Add soft skills to improve ATS score", report.Recommendations[0])
	assert.Equal(t, lowScoreRecommendations, report.Recommendations[1:])
}

func TestCheckATSCompatibility_FullAlignment(t *testing.T) {
	resume := testResume()
	analysis := &types.JobAnalysis{
		Keywords:        []string{"engineer", "backend"},
		TechnicalSkills: []string{"python", "go"},
	}

	report := CheckATSCompatibility(resume, analysis)

	// Both keywords match (2/10*15 = 3) and both skills match (15).
	assert.Equal(t, 88.0, report.OverallScore)
	assert.Equal(t, "A", report.Grade)
}

func TestCheckATSCompatibility_ScoreRounded(t *testing.T) {
	resume := testResume()
	analysis := &types.JobAnalysis{
		TechnicalSkills: []string{"python", "rust", "scala"},
	}

	report := CheckATSCompatibility(resume, analysis)

	// 70 + 1/3*15 = 75, rounded to one decimal.
	assert.Equal(t, 75.0, report.OverallScore)
}

func TestKeywordAlignmentScore_NoKeywords(t *testing.T) {
	assert.Equal(t, 0.0, keywordAlignmentScore(testResume(), &types.JobAnalysis{}))
}

func TestKeywordAlignmentScore_CaseInsensitive(t *testing.T) {
	analysis := &types.JobAnalysis{Keywords: []string{"PYTHON"}}

	score := keywordAlignmentScore(testResume(), analysis)

	assert.Equal(t, 1.5, score)
}

func TestSkillAlignmentScore_NoJobSkills(t *testing.T) {
	assert.Equal(t, 0.0, skillAlignmentScore(testResume(), &types.JobAnalysis{}))
}

func TestSkillAlignmentScore_PartialMatch(t *testing.T) {
	analysis := &types.JobAnalysis{TechnicalSkills: []string{"python", "rust"}}

	score := skillAlignmentScore(testResume(), analysis)

	assert.Equal(t, 7.5, score)
}

func TestATSGrade_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "A+"},
		{90, "A+"},
		{89.9, "A"},
		{80, "A"},
		{70, "B"},
		{60, "C"},
		{59.9, "D"},
		{0, "D"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, atsGrade(tt.score), "score %v", tt.score)
	}
}
