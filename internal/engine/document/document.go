// Package document segments raw resume and job posting text into labeled
// sections that the entity extractors operate on.
package document

// Format declares how the original document was encoded before the upstream
// decoder produced plain text.
type Format string

const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// RawDocument is the immutable input to the engine. Text is already decoded;
// the engine never mutates it.
type RawDocument struct {
	Text   string
	Format Format
}

// Kind labels a contiguous span of document text by topic.
type Kind string

const (
	KindContact        Kind = "contact"
	KindSummary        Kind = "summary"
	KindExperience     Kind = "experience"
	KindEducation      Kind = "education"
	KindSkills         Kind = "skills"
	KindCertifications Kind = "certifications"
	KindProjects       Kind = "projects"
)

// Section is one labeled region produced by the segmenter. A document yields
// zero or more sections per kind.
type Section struct {
	Kind Kind
	Text string
}

// Toggles controls which section kinds the segmenter emits. Every field
// defaults to true via DefaultToggles; there is no implicit-falsy convention.
type Toggles struct {
	Contact        bool
	Summary        bool
	Experience     bool
	Education      bool
	Skills         bool
	Certifications bool
	Projects       bool
}

// DefaultToggles returns toggles with every section kind enabled.
func DefaultToggles() Toggles {
	return Toggles{
		Contact:        true,
		Summary:        true,
		Experience:     true,
		Education:      true,
		Skills:         true,
		Certifications: true,
		Projects:       true,
	}
}

func (t Toggles) enabled(kind Kind) bool {
	switch kind {
	case KindContact:
		return t.Contact
	case KindSummary:
		return t.Summary
	case KindExperience:
		return t.Experience
	case KindEducation:
		return t.Education
	case KindSkills:
		return t.Skills
	case KindCertifications:
		return t.Certifications
	case KindProjects:
		return t.Projects
	default:
		return false
	}
}
