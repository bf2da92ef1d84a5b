package aggregate

import (
	"fmt"
	"time"

	"github.com/devhire/devhire/internal/model"
)

// Fixture generation tables. Titles and companies cycle at coprime lengths
// so every title+company pair in the set is unique and survives dedup.
var (
	fixtureTitles = []string{
		"Senior Frontend Developer",
		"Backend Engineer",
		"Full Stack Developer",
		"DevOps Engineer",
		"Data Scientist",
		"Mobile Developer",
		"Platform Engineer",
		"Site Reliability Engineer",
		"Machine Learning Engineer",
		"Software Engineer",
	}

	fixtureCompanies = []string{
		"TechFlow", "CodeCraft", "DataBridge", "CloudNine Systems",
		"PixelWorks", "StackForge", "ByteHaven", "NimbusSoft",
		"QuantumLeap Labs", "RocketShip", "GreenGrid", "OrbitDesk",
	}

	fixtureLocations = []string{
		"San Francisco, CA", "New York, NY", "Austin, TX",
		"London, UK", "Berlin, Germany", "Remote",
	}

	fixtureStacks = [][]string{
		{"React", "TypeScript", "Node.js", "PostgreSQL"},
		{"Go", "Docker", "Kubernetes", "AWS"},
		{"Python", "Django", "Redis", "GCP"},
		{"Vue", "JavaScript", "GraphQL", "MongoDB"},
		{"Java", "Spring", "MySQL", "Azure"},
	}

	fixtureBenefits = []string{
		"Health insurance", "Remote work", "Stock options",
		"Professional development", "Flexible hours",
	}

	fixtureRequirements = []string{
		"3+ years of experience",
		"Experience with modern web frameworks",
		"Strong communication skills",
	}
)

const fixtureCount = 60

// Fixtures returns the deterministic synthetic job pool used to pad thin
// live results. IDs carry the synthetic prefix so downstream ranking and
// tests can tell them apart.
func Fixtures() []model.Job {
	base := time.Now().UTC().Truncate(time.Hour)

	jobs := make([]model.Job, 0, fixtureCount)
	for i := 0; i < fixtureCount; i++ {
		title := fixtureTitles[i%len(fixtureTitles)]
		company := fixtureCompanies[i%len(fixtureCompanies)]
		location := fixtureLocations[i%len(fixtureLocations)]
		stack := fixtureStacks[i%len(fixtureStacks)]

		score := 62 + (i*7)%33 // spreads deterministically across 62..94
		salaryMin := 70000 + (i%8)*10000
		salaryMax := salaryMin + 30000

		jobs = append(jobs, model.Job{
			ID:       fmt.Sprintf("%s%d", model.SyntheticPrefix, i+1),
			Title:    title,
			Company:  company,
			Location: location,
			Remote:   location == "Remote" || i%3 == 0,
			Type:     fixtureType(i),
			Salary:   model.Salary{Min: salaryMin, Max: salaryMax, Currency: "USD"},
			Description: fmt.Sprintf(
				"%s is hiring a %s to join a growing engineering team. "+
					"You will design, build, and operate production systems using %s.",
				company, title, stack[0],
			),
			Requirements:      append([]string(nil), fixtureRequirements...),
			TechStack:         append([]string(nil), stack...),
			Benefits:          append([]string(nil), fixtureBenefits...),
			PostedAt:          base.Add(-time.Duration(i*13) * time.Hour),
			AIMatchScore:      score,
			IsHot:             score > 85,
			Featured:          score > 90,
			NoWhiteboard:      i%4 == 0,
			DiversityFriendly: i%3 == 0,
			ExternalURL:       fmt.Sprintf("https://devhire.example/jobs/%d", i+1),
		})
	}
	return jobs
}

func fixtureType(i int) model.JobType {
	switch i % 10 {
	case 7:
		return model.Contract
	case 8:
		return model.PartTime
	case 9:
		return model.Internship
	default:
		return model.FullTime
	}
}
