package profile

// ContactInfo holds whatever contact details extraction could find. Every
// field is optional.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// ExperienceEntry is one job stint reconstructed from a title line and the
// lines that follow it.
type ExperienceEntry struct {
	Title            string   `json:"title"`
	Company          string   `json:"company,omitempty"`
	Duration         string   `json:"duration,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// EducationEntry is one education line with optional GPA and year.
type EducationEntry struct {
	Degree string `json:"degree"`
	GPA    string `json:"gpa,omitempty"`
	Year   string `json:"year,omitempty"`
}

// Certification is one certification line with optional year.
type Certification struct {
	Name      string `json:"name"`
	Year      string `json:"year,omitempty"`
	HasExpiry bool   `json:"hasExpiry,omitempty"`
}

// Experience level tiers.
const (
	LevelJunior = "junior"
	LevelMid    = "mid"
	LevelSenior = "senior"
)

// CandidateProfile is the structured result of analyzing one candidate's
// text. Built once per analysis call and never mutated afterwards.
type CandidateProfile struct {
	DetectedIndustry     string              `json:"detectedIndustry"`
	ContactInfo          ContactInfo         `json:"contactInfo"`
	Skills               map[string][]string `json:"skills"`
	Experience           []ExperienceEntry   `json:"experience"`
	Education            []EducationEntry    `json:"education"`
	Certifications       []Certification     `json:"certifications"`
	Languages            []string            `json:"languages"`
	ProfessionalSummary  string              `json:"professionalSummary"`
	ExperienceLevel      string              `json:"experienceLevel"`
	TotalExperienceYears int                 `json:"totalExperienceYears"`
	JobTitles            []string            `json:"jobTitles"`
	Achievements         []string            `json:"achievements"`
	SoftSkills           []string            `json:"softSkills"`
}

// FlatSkills returns every skill in the profile, lowercased and
// deduplicated, for set-style matching.
func (p CandidateProfile) FlatSkills() []string {
	seen := make(map[string]bool)
	var out []string
	for _, skills := range p.Skills {
		for _, skill := range skills {
			lowered := lower(skill)
			if !seen[lowered] {
				seen[lowered] = true
				out = append(out, lowered)
			}
		}
	}
	return out
}
