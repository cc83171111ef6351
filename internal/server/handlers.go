package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/cv-generator/internal/analysis"
	"github.com/jonathan/cv-generator/internal/generation"
	"github.com/jonathan/cv-generator/internal/schemas"
	"github.com/jonathan/cv-generator/internal/types"
)

// maxUploadBytes caps uploaded job description files.
const maxUploadBytes = 10 << 20

// allowedUploadExts are the accepted job description upload formats.
var allowedUploadExts = map[string]bool{
	".txt":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".html": true,
	".htm":  true,
}

// AnalyzeRequest is the JSON request body for /analyze-job.
type AnalyzeRequest struct {
	JobText string `json:"job_text"`
}

// AnalyzeResponse is the response for /analyze-job.
type AnalyzeResponse struct {
	Success  bool              `json:"success"`
	Analysis types.JobAnalysis `json:"analysis"`
}

// GenerateRequest is the JSON request body for /generate-cv. UserData stays
// raw until it passes schema validation.
type GenerateRequest struct {
	UserData    json.RawMessage    `json:"user_data"`
	JobAnalysis *types.JobAnalysis `json:"job_analysis,omitempty"`
	Template    string             `json:"template,omitempty"`
}

// GenerateResponse is the response for /generate-cv.
type GenerateResponse struct {
	Success bool   `json:"success"`
	CVID    string `json:"cv_id"`
	Message string `json:"message"`
}

// ATSCheckRequest is the JSON request body for /ats-check.
type ATSCheckRequest struct {
	UserData    types.ResumeData   `json:"user_data"`
	JobAnalysis *types.JobAnalysis `json:"job_analysis,omitempty"`
}

// handleAnalyzeJob analyzes a job description supplied as JSON, form field or
// uploaded file.
func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	jobText, err := s.readJobText(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if strings.TrimSpace(jobText) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Job description is empty.")
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		Success:  true,
		Analysis: analysis.Analyze(jobText),
	})
}

// readJobText pulls the job description out of the request, dispatching on
// content type: JSON body, multipart form (job_text field or job_file
// upload), or url-encoded form.
func (s *Server) readJobText(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/json") {
		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", &ErrValidation{Field: "body", Message: "invalid JSON body: " + err.Error()}
		}
		if req.JobText == "" {
			return "", &ErrValidation{Field: "job_text", Message: "no job description provided"}
		}
		return req.JobText, nil
	}

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return "", &ErrValidation{Field: "body", Message: "invalid multipart form: " + err.Error()}
		}
		if text := r.FormValue("job_text"); text != "" {
			return text, nil
		}

		file, header, err := r.FormFile("job_file")
		if err != nil {
			return "", &ErrValidation{Field: "job_file", Message: "no job description provided; supply job_text or job_file"}
		}
		defer func() { _ = file.Close() }()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedUploadExts[ext] {
			return "", &ErrValidation{Field: "job_file", Message: "invalid file type; upload txt, pdf, doc, docx or html"}
		}

		data, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("failed to read upload: %w", err)
		}
		return s.extractor.ExtractText(data, header.Filename)
	}

	if text := r.PostFormValue("job_text"); text != "" {
		return text, nil
	}
	return "", &ErrValidation{Field: "job_text", Message: "no job description provided; supply job_text or job_file"}
}

// handleGenerateCV validates the résumé payload, builds the content blocks
// and renders the PDF artifact.
func (s *Server) handleGenerateCV(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.UserData) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "user_data is required")
		return
	}

	if err := schemas.ValidateResumeJSON(string(req.UserData)); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var resume types.ResumeData
	if err := json.Unmarshal(req.UserData, &resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user_data: "+err.Error())
		return
	}
	if err := resume.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Full name is required")
		return
	}

	templateID := req.Template
	if templateID == "" {
		templateID = "professional"
	}

	blocks := generation.Generate(&resume, req.JobAnalysis)
	id, path, err := s.renderer.RenderPDF(r.Context(), blocks, templateID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to generate CV: "+err.Error())
		return
	}

	log.Printf("Generated CV %s at %s", id, path)
	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		Success: true,
		CVID:    id,
		Message: "CV generated successfully",
	})
}

// handleDownloadCV streams a previously generated artifact.
func (s *Server) handleDownloadCV(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid CV ID format")
		return
	}

	path := s.renderer.ArtifactPath(id.String())
	if _, err := os.Stat(path); os.IsNotExist(err) {
		s.errorResponse(w, http.StatusNotFound, "CV not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=optimized_cv_%s.pdf", id))
	http.ServeFile(w, r, path)
}

// handleTemplates returns the available CV templates.
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":   true,
		"templates": generation.Templates(),
	})
}

// handleATSCheck scores a résumé for ATS compatibility.
func (s *Server) handleATSCheck(w http.ResponseWriter, r *http.Request) {
	var req ATSCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":    true,
		"validation": generation.CheckATSCompatibility(&req.UserData, req.JobAnalysis),
	})
}

// handleSampleData returns sample résumé data for testing clients.
func (s *Server) handleSampleData(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":     true,
		"sample_data": sampleResume(),
	})
}
