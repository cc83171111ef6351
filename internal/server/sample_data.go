package server

import "github.com/jonathan/cv-generator/internal/types"

// sampleResume returns example résumé data for the sample-data endpoint.
func sampleResume() types.ResumeData {
	return types.ResumeData{
		PersonalInfo: types.PersonalInfo{
			FullName: "John Doe",
			Email:    "john.doe@email.com",
			Phone:    "+1 (555) 123-4567",
			Location: "New York, NY",
			LinkedIn: "linkedin.com/in/johndoe",
		},
		ProfessionalSummary: "Experienced software developer with 5+ years of experience in full-stack web development. " +
			"Proficient in Python, JavaScript, and modern web frameworks. " +
			"Strong problem-solving skills and experience working in agile environments.",
		WorkExperience: []types.WorkExperience{
			{
				JobTitle:  "Senior Software Developer",
				Company:   "Tech Solutions Inc.",
				StartDate: "Jan 2020",
				EndDate:   "Present",
				Description: "• Led development of web applications using React and Python Flask\n" +
					"• Improved application performance by 40% through code optimization\n" +
					"• Mentored junior developers and conducted code reviews\n" +
					"• Collaborated with cross-functional teams to deliver projects on time",
			},
			{
				JobTitle:  "Software Developer",
				Company:   "StartupXYZ",
				StartDate: "Jun 2018",
				EndDate:   "Dec 2019",
				Description: "• Developed and maintained web applications using JavaScript and Node.js\n" +
					"• Implemented RESTful APIs and database designs\n" +
					"• Participated in agile development processes\n" +
					"• Reduced bug reports by 30% through improved testing practices",
			},
		},
		Education: []types.Education{
			{
				Degree:         "Bachelor of Science in Computer Science",
				School:         "University of Technology",
				GraduationDate: "2018",
				GPA:            "3.8",
			},
		},
		Skills: types.Skills{
			TechnicalSkills: []string{"Python", "JavaScript", "React", "Node.js", "Flask", "SQL", "Git", "AWS", "Docker"},
			SoftSkills:      []string{"Leadership", "Communication", "Problem Solving", "Teamwork", "Time Management"},
			Languages:       []string{"English (Native)", "Spanish (Conversational)"},
			Certifications:  []string{"AWS Certified Developer", "Scrum Master Certified"},
		},
	}
}
