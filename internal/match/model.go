package match

// DefaultMinimumScore is the qualification threshold used when a job does
// not state its own.
const DefaultMinimumScore = 70

// ExperienceRequirement states the minimum years and optional preferred
// role titles for a job.
type ExperienceRequirement struct {
	MinYears       int      `json:"minYears"`
	PreferredRoles []string `json:"preferredRoles,omitempty"`
}

// EducationRequirement states the minimum degree for a job.
type EducationRequirement struct {
	MinDegree string `json:"minDegree"`
}

// CommunicationRequirement states the minimum overall communication score
// for a job.
type CommunicationRequirement struct {
	MinOverall int `json:"minOverall"`
}

// JobRequirement is the structured statement of what a job demands.
// Every field except the skill lists is optional; absent requirements score
// neutrally rather than at zero.
type JobRequirement struct {
	Industry                  string                    `json:"industry,omitempty"`
	RequiredSkills            []string                  `json:"requiredSkills"`
	PreferredSkills           []string                  `json:"preferredSkills,omitempty"`
	RequiredExperience        *ExperienceRequirement    `json:"requiredExperience,omitempty"`
	RequiredEducation         *EducationRequirement     `json:"requiredEducation,omitempty"`
	RequiredCertifications    []string                  `json:"requiredCertifications,omitempty"`
	CommunicationRequirements *CommunicationRequirement `json:"communicationRequirements,omitempty"`
	MatchingWeights           map[string]float64        `json:"matchingWeights,omitempty"`
	MinimumMatchScore         int                       `json:"minimumMatchScore,omitempty"`
}

// ExperienceGap compares stated and actual experience years.
type ExperienceGap struct {
	RequiredYears      int     `json:"requiredYears"`
	ActualYears        int     `json:"actualYears"`
	GapYears           int     `json:"gapYears"`
	ExceedsRequirement bool    `json:"exceedsRequirement"`
	GapPercentage      float64 `json:"gapPercentage"`
}

// MatchResult is the scored, explained comparison of one candidate against
// one job.
type MatchResult struct {
	OverallScore        int `json:"overallScore"`
	SkillsScore         int `json:"skillsScore"`
	ExperienceScore     int `json:"experienceScore"`
	EducationScore      int `json:"educationScore"`
	CertificationsScore int `json:"certificationsScore"`
	CommunicationScore  int `json:"communicationScore"`
	IndustryFitScore    int `json:"industryFitScore"`

	MatchingSkills []string      `json:"matchingSkills"`
	MissingSkills  []string      `json:"missingSkills"`
	ExperienceGap  ExperienceGap `json:"experienceGap"`

	Strengths       []string `json:"strengths"`
	Concerns        []string `json:"concerns"`
	Recommendations []string `json:"recommendations"`

	ResumeIndustry string `json:"resumeIndustry"`
	JobIndustry    string `json:"jobIndustry"`
	IndustryMatch  bool   `json:"industryMatch"`
	Qualifies      bool   `json:"qualifies"`
}
