// Package analysis extracts keyword and skill signals from raw job
// description text using lexical heuristics: substring matching against fixed
// vocabularies, frequency counting and a handful of regex patterns. There is
// no external state; Analyze is a pure function.
package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/cv-generator/internal/types"
)

const maxKeywords = 20

// boilerplateRE strips common job-posting boilerplate before keyword counting.
var boilerplateRE = regexp.MustCompile(`equal opportunity employer|eoe|benefits|salary|compensation`)

// tokenRE splits lower-cased text into alphabetic-only tokens.
var tokenRE = regexp.MustCompile(`[a-z]+`)

// skillPatterns capture "<word> programming" style mentions that the fixed
// vocabulary misses.
var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([a-z]+)\s+programming`),
	regexp.MustCompile(`([a-z]+)\s+development`),
	regexp.MustCompile(`([a-z]+)\s+framework`),
	regexp.MustCompile(`([a-z]+)\s+database`),
}

// Analyze analyzes a job description and returns the extracted keywords,
// skills, experience level, education requirements and optimization
// suggestions. Empty input is tolerated and produces empty-valued fields with
// only the generic suggestions.
func Analyze(text string) types.JobAnalysis {
	text = strings.ToLower(text)

	keywords := extractKeywords(text)
	technical := extractTechnicalSkills(text)
	soft := extractSoftSkills(text)

	return types.JobAnalysis{
		Keywords:                keywords,
		TechnicalSkills:         technical,
		SoftSkills:              soft,
		ExperienceLevel:         determineExperienceLevel(text),
		EducationRequirements:   extractEducationRequirements(text),
		JobInfo:                 extractJobInfo(text),
		OptimizationSuggestions: buildSuggestions(keywords, technical, soft),
	}
}

// extractKeywords returns the most frequent non-stop-word tokens, capped at
// maxKeywords. Ties are broken by first occurrence in the text, so output is
// stable for identical input.
func extractKeywords(text string) []string {
	text = boilerplateRE.ReplaceAllString(text, "")

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, token := range tokenRE.FindAllString(text, -1) {
		if len(token) <= 2 || stopWords[token] {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	// Stable sort keeps first-occurrence order for equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}

// extractTechnicalSkills returns vocabulary terms found as substrings plus
// words captured by the skill patterns, deduplicated in match order.
func extractTechnicalSkills(text string) []string {
	found := make([]string, 0)
	for _, skill := range technicalSkills {
		if strings.Contains(text, skill) {
			found = append(found, skill)
		}
	}

	for _, pattern := range skillPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			found = append(found, match[1])
		}
	}

	return dedupe(found)
}

// extractSoftSkills returns soft-skill vocabulary terms found as substrings.
func extractSoftSkills(text string) []string {
	found := make([]string, 0)
	for _, skill := range softSkills {
		if strings.Contains(text, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// determineExperienceLevel classifies the posting by the first level bucket
// with a matching trigger substring, in declared bucket order.
func determineExperienceLevel(text string) string {
	for _, bucket := range experienceLevels {
		for _, trigger := range bucket.Triggers {
			if strings.Contains(text, trigger) {
				return bucket.Level
			}
		}
	}
	return types.LevelNotSpecified
}

// extractEducationRequirements returns education vocabulary terms found as
// substrings.
func extractEducationRequirements(text string) []string {
	found := make([]string, 0)
	for _, keyword := range educationKeywords {
		if strings.Contains(text, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

// extractJobInfo scans the first five lines for a title-like line. Company
// extraction is intentionally not implemented and always returns "".
func extractJobInfo(text string) types.JobInfo {
	info := types.JobInfo{}

	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		for _, marker := range jobTitleMarkers {
			if strings.Contains(line, marker) {
				info.JobTitle = strings.TrimSpace(line)
				return info
			}
		}
	}
	return info
}

// buildSuggestions combines input-derived suggestions with the fixed generic
// tips, always in the same order.
func buildSuggestions(keywords, technical, soft []string) []string {
	suggestions := make([]string, 0, len(genericSuggestions)+3)

	if len(technical) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Highlight these technical skills: %s", strings.Join(head(technical, 5), ", ")))
	}
	if len(soft) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Emphasize these soft skills: %s", strings.Join(head(soft, 3), ", ")))
	}
	if len(keywords) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Include these keywords naturally: %s", strings.Join(head(keywords, 10), ", ")))
	}

	return append(suggestions, genericSuggestions...)
}

// head returns at most n leading elements of s.
func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// dedupe removes duplicates preserving first-occurrence order.
func dedupe(s []string) []string {
	seen := make(map[string]bool, len(s))
	out := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
