package heuristic

import "strings"

const maxBenefits = 6

// DetectBenefits returns up to six benefit strings for a job. Source-provided
// benefits win outright; otherwise candidates found in the description are
// used, and the fallback list guarantees the result is never empty.
func DetectBenefits(description string, provided, candidates, fallback []string) []string {
	if len(provided) > 0 {
		return cap6(provided)
	}

	descLower := strings.ToLower(description)
	var detected []string
	for _, b := range candidates {
		if strings.Contains(descLower, strings.ToLower(b)) {
			detected = append(detected, b)
		}
	}
	if len(detected) > 0 {
		return cap6(detected)
	}
	return cap6(fallback)
}

func cap6(benefits []string) []string {
	if len(benefits) > maxBenefits {
		benefits = benefits[:maxBenefits]
	}
	return append([]string(nil), benefits...)
}
