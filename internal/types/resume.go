// Package types provides type definitions for structured data used throughout the cv-generator system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// PersonalInfo holds the candidate's contact details.
type PersonalInfo struct {
	FullName string `json:"full_name" validate:"required,min=1"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// WorkExperience represents a single position in the candidate's history.
type WorkExperience struct {
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// Education represents a single degree or program.
type Education struct {
	Degree         string `json:"degree"`
	School         string `json:"school"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// Skills groups the candidate's skills by category.
// Category order in the rendered document is fixed: technical, soft,
// languages, certifications.
type Skills struct {
	TechnicalSkills []string `json:"technical_skills,omitempty"`
	SoftSkills      []string `json:"soft_skills,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	Certifications  []string `json:"certifications,omitempty"`
}

// ResumeData is the caller-supplied résumé content. Only
// PersonalInfo.FullName is required for generation to proceed; every other
// field may be empty and its section is then omitted from the output.
type ResumeData struct {
	PersonalInfo        PersonalInfo     `json:"personal_info" validate:"required"`
	ProfessionalSummary string           `json:"professional_summary,omitempty"`
	WorkExperience      []WorkExperience `json:"work_experience,omitempty"`
	Education           []Education      `json:"education,omitempty"`
	Skills              Skills           `json:"skills,omitempty"`
}

// Validate validates the ResumeData using the validator.
func (r *ResumeData) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
