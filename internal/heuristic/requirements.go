package heuristic

import (
	"regexp"
	"strings"
)

const maxRequirements = 5

// requirementPatterns are scanned line-by-line against the description.
// Matches are collected in encounter order.
var requirementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(?i)bachelor'?s?\s+degree`),
	regexp.MustCompile(`(?i)master'?s?\s+degree`),
	regexp.MustCompile(`(?i)proficiency\s+in\s+[\w\s,.]+`),
	regexp.MustCompile(`(?i)experience\s+with\s+[\w\s,.]+`),
	regexp.MustCompile(`(?i)knowledge\s+of\s+[\w\s,.]+`),
	regexp.MustCompile(`(?i)familiar\s+with\s+[\w\s,.]+`),
	regexp.MustCompile(`(?i)strong\s+[\w\s]+\s+skills`),
}

// fallbackRequirements is emitted when no pattern matches, so the list is
// never empty.
var fallbackRequirements = []string{
	"Strong problem-solving skills",
	"Excellent communication abilities",
	"Team collaboration experience",
}

// ExtractRequirements pulls up to five short requirement phrases out of a
// free-text description. Matches shorter than 10 or longer than 100
// characters are discarded as noise.
func ExtractRequirements(description string) []string {
	var requirements []string
	for _, line := range strings.Split(description, "\n") {
		for _, pattern := range requirementPatterns {
			if len(requirements) >= maxRequirements {
				break
			}
			match := strings.TrimSpace(pattern.FindString(line))
			if len(match) > 10 && len(match) < 100 {
				requirements = append(requirements, match)
			}
		}
	}

	if len(requirements) == 0 {
		return append([]string(nil), fallbackRequirements...)
	}
	if len(requirements) > maxRequirements {
		requirements = requirements[:maxRequirements]
	}
	return requirements
}
