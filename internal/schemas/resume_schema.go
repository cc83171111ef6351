// Package schemas provides JSON Schema validation for incoming résumé
// payloads.
package schemas

// ResumeSchema is the JSON Schema the user_data payload of a generation
// request must satisfy. Only personal_info.full_name is required; all other
// sections are optional and may be empty.
const ResumeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "ResumeData",
  "type": "object",
  "required": ["personal_info"],
  "properties": {
    "personal_info": {
      "type": "object",
      "required": ["full_name"],
      "properties": {
        "full_name": {"type": "string", "minLength": 1},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "location": {"type": "string"},
        "linkedin": {"type": "string"}
      }
    },
    "professional_summary": {"type": "string"},
    "work_experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "job_title": {"type": "string"},
          "company": {"type": "string"},
          "start_date": {"type": "string"},
          "end_date": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "degree": {"type": "string"},
          "school": {"type": "string"},
          "graduation_date": {"type": "string"},
          "gpa": {"type": "string"}
        }
      }
    },
    "skills": {
      "type": "object",
      "properties": {
        "technical_skills": {"type": "array", "items": {"type": "string"}},
        "soft_skills": {"type": "array", "items": {"type": "string"}},
        "languages": {"type": "array", "items": {"type": "string"}},
        "certifications": {"type": "array", "items": {"type": "string"}}
      }
    }
  }
}`
