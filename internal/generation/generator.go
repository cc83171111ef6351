// Package generation builds ATS-optimized, renderer-ready content blocks from
// résumé data, optionally reworked against a job analysis.
package generation

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-generator/internal/types"
)

const fallbackName = "Your Name"

// Generate builds the ordered content blocks for a CV. Sections whose backing
// data is absent are omitted entirely. When analysis is non-nil the summary,
// experience descriptions and skill ordering are optimized against it.
func Generate(resume *types.ResumeData, analysis *types.JobAnalysis) []types.Block {
	blocks := make([]types.Block, 0, 16)
	blocks = append(blocks, buildHeader(resume)...)
	blocks = append(blocks, buildSummary(resume, analysis)...)
	blocks = append(blocks, buildExperience(resume, analysis)...)
	blocks = append(blocks, buildEducation(resume)...)
	blocks = append(blocks, buildSkills(resume, analysis)...)
	return blocks
}

// buildHeader emits the candidate name and a single joined contact line.
func buildHeader(resume *types.ResumeData) []types.Block {
	name := resume.PersonalInfo.FullName
	if name == "" {
		name = fallbackName
	}
	blocks := []types.Block{{Style: types.StyleName, Text: name}}

	parts := make([]string, 0, 4)
	if resume.PersonalInfo.Email != "" {
		parts = append(parts, resume.PersonalInfo.Email)
	}
	if resume.PersonalInfo.Phone != "" {
		parts = append(parts, resume.PersonalInfo.Phone)
	}
	if resume.PersonalInfo.Location != "" {
		parts = append(parts, resume.PersonalInfo.Location)
	}
	if resume.PersonalInfo.LinkedIn != "" {
		parts = append(parts, "LinkedIn: "+resume.PersonalInfo.LinkedIn)
	}
	if len(parts) > 0 {
		blocks = append(blocks, types.Block{Style: types.StyleContact, Text: strings.Join(parts, " | ")})
	}
	return blocks
}

func buildSummary(resume *types.ResumeData, analysis *types.JobAnalysis) []types.Block {
	summary := resume.ProfessionalSummary
	if summary == "" {
		return nil
	}
	if analysis != nil {
		summary = OptimizeSummary(summary, analysis)
	}
	return []types.Block{
		{Style: types.StyleSectionHeader, Text: "PROFESSIONAL SUMMARY"},
		{Style: types.StyleBody, Text: summary},
	}
}

func buildExperience(resume *types.ResumeData, analysis *types.JobAnalysis) []types.Block {
	if len(resume.WorkExperience) == 0 {
		return nil
	}
	blocks := []types.Block{{Style: types.StyleSectionHeader, Text: "PROFESSIONAL EXPERIENCE"}}

	for _, exp := range resume.WorkExperience {
		endDate := exp.EndDate
		if endDate == "" {
			endDate = "Present"
		}
		blocks = append(blocks,
			types.Block{Style: types.StyleJobTitle, Text: exp.JobTitle},
			types.Block{Style: types.StyleCompanyLine, Text: fmt.Sprintf("%s | %s - %s", exp.Company, exp.StartDate, endDate)},
		)

		description := exp.Description
		if description == "" {
			continue
		}
		if analysis != nil {
			description = OptimizeExperienceDescription(description, analysis)
		}
		blocks = append(blocks, types.Block{Style: types.StyleBody, Text: bulletize(description)})
	}
	return blocks
}

// bulletize reformats a description into "• " prefixed lines unless it
// already starts with the bullet glyph.
func bulletize(description string) string {
	if strings.HasPrefix(description, "•") {
		return description
	}
	lines := strings.Split(description, "\n")
	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, "• "+line)
	}
	return strings.Join(bullets, "\n")
}

func buildEducation(resume *types.ResumeData) []types.Block {
	if len(resume.Education) == 0 {
		return nil
	}
	blocks := []types.Block{{Style: types.StyleSectionHeader, Text: "EDUCATION"}}

	for _, edu := range resume.Education {
		degreeLine := edu.Degree
		if edu.GraduationDate != "" {
			degreeLine += " | " + edu.GraduationDate
		}
		if edu.GPA != "" {
			degreeLine += " | GPA: " + edu.GPA
		}
		blocks = append(blocks,
			types.Block{Style: types.StyleJobTitle, Text: degreeLine},
			types.Block{Style: types.StyleCompanyLine, Text: edu.School},
		)
	}
	return blocks
}

func buildSkills(resume *types.ResumeData, analysis *types.JobAnalysis) []types.Block {
	skills := resume.Skills
	categories := make([]string, 0, 4)

	if len(skills.TechnicalSkills) > 0 {
		technical := skills.TechnicalSkills
		if analysis != nil {
			technical = PrioritizeSkills(technical, analysis.TechnicalSkills)
		}
		categories = append(categories, "Technical: "+strings.Join(technical, ", "))
	}
	if len(skills.SoftSkills) > 0 {
		soft := skills.SoftSkills
		if analysis != nil {
			soft = PrioritizeSkills(soft, analysis.SoftSkills)
		}
		categories = append(categories, "Soft Skills: "+strings.Join(soft, ", "))
	}
	if len(skills.Languages) > 0 {
		categories = append(categories, "Languages: "+strings.Join(skills.Languages, ", "))
	}
	if len(skills.Certifications) > 0 {
		categories = append(categories, "Certifications: "+strings.Join(skills.Certifications, ", "))
	}

	if len(categories) == 0 {
		return nil
	}
	blocks := []types.Block{{Style: types.StyleSectionHeader, Text: "TECHNICAL SKILLS"}}
	for _, category := range categories {
		blocks = append(blocks, types.Block{Style: types.StyleBody, Text: category})
	}
	return blocks
}
