// Package taxonomy matches free text against a configured vocabulary of
// skills and groups the matches into categories.
package taxonomy

// Category is one named group of related skill terms.
type Category struct {
	Name   string   `mapstructure:"name" json:"name"`
	Skills []string `mapstructure:"skills" json:"skills"`
}

// Config is the injected skill vocabulary. Matchers are built from a Config
// rather than reading module-level state so taxonomies can be swapped in
// tests and per deployment.
type Config struct {
	Categories []Category `mapstructure:"categories" json:"categories"`
	Soft       []string   `mapstructure:"soft" json:"soft"`
}

// CategoryLanguages is the category name whose members are treated as
// programming languages by the boolean query composer.
const CategoryLanguages = "Programming Languages"

// OtherCategory buckets skills that match no configured category.
const OtherCategory = "Other"

// DefaultConfig returns the built-in skill taxonomy.
func DefaultConfig() Config {
	return Config{
		Categories: []Category{
			{Name: CategoryLanguages, Skills: []string{
				"Python", "Java", "JavaScript", "TypeScript", "Go", "Golang",
				"Rust", "Ruby", "PHP", "C++", "C#", "Swift", "Kotlin", "Scala", "R",
			}},
			{Name: "Frontend", Skills: []string{
				"React", "Angular", "Vue", "Next.js", "Svelte", "HTML", "CSS",
				"Tailwind", "Redux",
			}},
			{Name: "Backend", Skills: []string{
				"Node.js", "Django", "Flask", "Spring", "Rails", "Express",
				"FastAPI", ".NET", "GraphQL", "gRPC", "REST",
			}},
			{Name: "Databases", Skills: []string{
				"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
				"DynamoDB", "Cassandra", "SQLite", "SQL",
			}},
			{Name: "Cloud & DevOps", Skills: []string{
				"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
				"Jenkins", "CircleCI", "Ansible", "Linux", "CI/CD",
			}},
			{Name: "Tools & Practices", Skills: []string{
				"Git", "Jira", "Agile", "Scrum", "Kafka", "RabbitMQ", "Spark",
				"Microservices", "TDD",
			}},
		},
		Soft: []string{
			"leadership", "communication", "teamwork", "problem solving",
			"collaboration", "mentoring", "time management", "adaptability",
		},
	}
}
