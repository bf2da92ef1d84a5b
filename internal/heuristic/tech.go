package heuristic

import "strings"

// maxTechStack caps the tech stack on a canonical job.
const maxTechStack = 8

// vocabulary is the fixed list of recognized technology names scanned
// against title+description.
var vocabulary = []string{
	"React", "Vue", "Angular", "Node.js", "Python", "Java", "JavaScript",
	"TypeScript", "PHP", "Ruby", "Go", "Rust", "C#", "Swift", "Kotlin",
	"PostgreSQL", "MongoDB", "MySQL", "Redis", "AWS", "Azure", "GCP",
	"Docker", "Kubernetes", "Git", "Linux", "GraphQL", "REST", "Next.js",
	"Express", "Django", "Flask", "Spring", "Laravel", ".NET",
}

// DetectTech scans title and description for vocabulary terms and merges
// them after any source-provided skills. The result is deduplicated
// (case-insensitive) and capped at 8 entries, source skills first.
func DetectTech(title, description string, sourceSkills []string) []string {
	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)

	stack := make([]string, 0, maxTechStack)
	seen := make(map[string]bool)

	add := func(tech string) {
		key := strings.ToLower(strings.TrimSpace(tech))
		if key == "" || seen[key] || len(stack) >= maxTechStack {
			return
		}
		seen[key] = true
		stack = append(stack, strings.TrimSpace(tech))
	}

	for _, s := range sourceSkills {
		add(s)
	}
	for _, tech := range vocabulary {
		lower := strings.ToLower(tech)
		if strings.Contains(titleLower, lower) || strings.Contains(descLower, lower) {
			add(tech)
		}
	}

	return stack
}
