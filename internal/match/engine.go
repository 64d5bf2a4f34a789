package match

import (
	"math"
	"strings"

	"talentmatch-backend/internal/comms"
	"talentmatch-backend/internal/lexicon"
	"talentmatch-backend/internal/profile"
)

// Dimension weight keys recognized in JobRequirement.MatchingWeights.
const (
	WeightSkills         = "skills"
	WeightExperience     = "experience"
	WeightEducation      = "education"
	WeightCertifications = "certifications"
	WeightCommunication  = "communication"
	WeightIndustryFit    = "industry_fit"
)

// Scoring bands shared across dimensions: an absent requirement scores
// neutralScore, and hard floors keep thin profiles off zero.
const (
	neutralScore = 80

	skillsBonusCap      = 10
	skillsBonusPerMatch = 2
	requiredSkillWeight = 0.8

	experienceFloor       = 30
	experienceBonusRate   = 3
	roleRelevanceWeight   = 0.3
	educationFloor        = 40
	educationBonusRate    = 10
	certificationsFloor   = 30
	communicationFloor    = 30
	relatedIndustryScore  = 70
	unrelatedIndustryBand = 40
)

func defaultWeights() map[string]float64 {
	return map[string]float64{
		WeightSkills:         0.35,
		WeightExperience:     0.25,
		WeightEducation:      0.15,
		WeightCertifications: 0.15,
		WeightIndustryFit:    0.10,
	}
}

var degreeHierarchy = []struct {
	keyword string
	level   int
}{
	{"phd", 5}, {"doctorate", 5},
	{"master", 4},
	{"bachelor", 3},
	{"associate", 2},
	{"diploma", 1}, {"certificate", 1},
}

// Industries whose skills transfer reasonably well into each other.
var relatedIndustries = map[string][]string{
	"technology": {"finance", "healthcare"},
	"finance":    {"technology", "consulting"},
	"marketing":  {"sales", "media"},
	"sales":      {"marketing", "retail"},
	"healthcare": {"technology", "education"},
	"education":  {"healthcare", "consulting"},
}

// Engine combines a candidate profile and a job requirement into a weighted
// overall score plus explanatory detail. Stateless per call; the lexicon
// store is its only collaborator.
type Engine struct {
	store *lexicon.Store
}

// NewEngine builds a match engine over the given lexicon store.
func NewEngine(store *lexicon.Store) *Engine {
	return &Engine{store: store}
}

// Match scores candidate against job. commScores may be nil when no voice
// analysis exists; the communication dimension then scores neutrally.
func (e *Engine) Match(candidate profile.CandidateProfile, commScores *comms.Scores, job JobRequirement) MatchResult {
	jobIndustry := strings.ToLower(strings.TrimSpace(job.Industry))
	if jobIndustry == "" {
		jobIndustry = candidate.DetectedIndustry
	}
	candidateSkills := candidate.FlatSkills()

	result := MatchResult{
		SkillsScore:         e.skillsScore(candidateSkills, job.RequiredSkills, job.PreferredSkills, jobIndustry),
		ExperienceScore:     experienceScore(candidate, job.RequiredExperience),
		EducationScore:      educationScore(candidate.Education, job.RequiredEducation),
		CertificationsScore: certificationsScore(candidate.Certifications, job.RequiredCertifications),
		CommunicationScore:  communicationScore(commScores, job.CommunicationRequirements),
		IndustryFitScore:    industryFitScore(candidate.DetectedIndustry, jobIndustry),
		MatchingSkills:      matchingSkills(candidateSkills, append(append([]string(nil), job.RequiredSkills...), job.PreferredSkills...)),
		MissingSkills:       missingSkills(candidateSkills, job.RequiredSkills),
		ExperienceGap:       experienceGap(candidate.TotalExperienceYears, job.RequiredExperience),
		ResumeIndustry:      candidate.DetectedIndustry,
		JobIndustry:         jobIndustry,
		IndustryMatch:       candidate.DetectedIndustry == jobIndustry,
	}

	weights := normalizeWeights(job.MatchingWeights)
	byDimension := map[string]int{
		WeightSkills:         result.SkillsScore,
		WeightExperience:     result.ExperienceScore,
		WeightEducation:      result.EducationScore,
		WeightCertifications: result.CertificationsScore,
		WeightCommunication:  result.CommunicationScore,
		WeightIndustryFit:    result.IndustryFitScore,
	}
	weighted := 0.0
	for key, weight := range weights {
		weighted += float64(byDimension[key]) * weight
	}
	result.OverallScore = clampScore(math.Round(weighted))

	threshold := job.MinimumMatchScore
	if threshold <= 0 {
		threshold = DefaultMinimumScore
	}
	result.Qualifies = result.OverallScore >= threshold

	result.Strengths = e.strengths(candidate, job, result)
	result.Concerns = concerns(candidate, job, result)
	result.Recommendations = e.recommendations(candidate, job, result)

	return result
}

// normalizeWeights keeps only recognized non-negative keys and scales them
// to sum to one. Anything unusable falls back to the default weights.
func normalizeWeights(provided map[string]float64) map[string]float64 {
	if len(provided) == 0 {
		return defaultWeights()
	}

	recognized := map[string]bool{
		WeightSkills: true, WeightExperience: true, WeightEducation: true,
		WeightCertifications: true, WeightCommunication: true, WeightIndustryFit: true,
	}
	cleaned := map[string]float64{}
	sum := 0.0
	for key, weight := range provided {
		if !recognized[key] || weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			continue
		}
		cleaned[key] = weight
		sum += weight
	}
	if sum <= 0 {
		return defaultWeights()
	}
	for key := range cleaned {
		cleaned[key] /= sum
	}
	return cleaned
}

// skillsScore implements the 0.8/0.2 required/preferred split with an
// industry bonus of up to skillsBonusCap points. No stated requirements
// means the neutral default, never zero.
func (e *Engine) skillsScore(candidateSkills, required, preferred []string, industry string) int {
	if len(required) == 0 && len(preferred) == 0 {
		return neutralScore
	}

	have := toSet(candidateSkills)
	requiredScore := 100.0
	if len(required) > 0 {
		requiredScore = float64(countMatches(have, required)) / float64(len(required)) * 100
	}
	preferredScore := 0.0
	if len(preferred) > 0 {
		preferredScore = float64(countMatches(have, preferred)) / float64(len(preferred)) * 100
	}

	base := preferredScore
	if len(required) > 0 {
		base = requiredScore*requiredSkillWeight + preferredScore*(1-requiredSkillWeight)
	}

	industryMatches := 0
	for _, skill := range e.store.SkillsByIndustry(industry) {
		if have[strings.ToLower(skill)] {
			industryMatches++
		}
	}
	bonus := math.Min(skillsBonusCap, float64(industryMatches*skillsBonusPerMatch))

	return clampScore(base + bonus)
}

func experienceScore(candidate profile.CandidateProfile, req *ExperienceRequirement) int {
	if req == nil {
		return neutralScore
	}

	years := candidate.TotalExperienceYears
	var yearsScore float64
	if years >= req.MinYears {
		yearsScore = math.Min(100, float64(neutralScore+(years-req.MinYears)*experienceBonusRate))
	} else {
		yearsScore = math.Max(experienceFloor, float64(years)/math.Max(1, float64(req.MinYears))*float64(neutralScore))
	}

	if len(req.PreferredRoles) == 0 {
		return clampScore(yearsScore)
	}

	roleMatches := 0
	for _, role := range req.PreferredRoles {
		lowered := strings.ToLower(role)
		for _, entry := range candidate.Experience {
			if strings.Contains(strings.ToLower(entry.Title), lowered) {
				roleMatches++
				break
			}
		}
	}
	roleScore := math.Min(100, float64(roleMatches)/float64(len(req.PreferredRoles))*100)

	return clampScore(yearsScore*(1-roleRelevanceWeight) + roleScore*roleRelevanceWeight)
}

func educationScore(education []profile.EducationEntry, req *EducationRequirement) int {
	if req == nil || strings.TrimSpace(req.MinDegree) == "" {
		return neutralScore
	}

	requiredLevel := degreeLevel(req.MinDegree)
	haveLevel := 0
	for _, entry := range education {
		if level := degreeLevel(entry.Degree); level > haveLevel {
			haveLevel = level
		}
	}

	if haveLevel >= requiredLevel {
		return clampScore(math.Min(100, float64(neutralScore+(haveLevel-requiredLevel)*educationBonusRate)))
	}
	return clampScore(math.Max(educationFloor, float64(haveLevel)/math.Max(1, float64(requiredLevel))*float64(neutralScore)))
}

func degreeLevel(text string) int {
	lowered := strings.ToLower(text)
	for _, entry := range degreeHierarchy {
		if strings.Contains(lowered, entry.keyword) {
			return entry.level
		}
	}
	return 0
}

func certificationsScore(certs []profile.Certification, required []string) int {
	if len(required) == 0 {
		return neutralScore
	}

	matches := 0
	for _, req := range required {
		lowered := strings.ToLower(req)
		for _, cert := range certs {
			if strings.Contains(strings.ToLower(cert.Name), lowered) {
				matches++
				break
			}
		}
	}
	score := float64(matches) / float64(len(required)) * 100
	return clampScore(math.Max(certificationsFloor, score))
}

// communicationScore is threshold-proportional when both a requirement and
// a measured score exist; otherwise neutral.
func communicationScore(scores *comms.Scores, req *CommunicationRequirement) int {
	if req == nil || req.MinOverall <= 0 || scores == nil {
		return neutralScore
	}

	overall := float64(scores.Overall)
	threshold := float64(req.MinOverall)
	if overall >= threshold {
		return clampScore(math.Min(100, float64(neutralScore)+(overall-threshold)))
	}
	return clampScore(math.Max(communicationFloor, overall/threshold*float64(neutralScore)))
}

func industryFitScore(resumeIndustry, jobIndustry string) int {
	if resumeIndustry == jobIndustry {
		return 100
	}
	for _, related := range relatedIndustries[resumeIndustry] {
		if related == jobIndustry {
			return relatedIndustryScore
		}
	}
	return unrelatedIndustryBand
}

func experienceGap(actualYears int, req *ExperienceRequirement) ExperienceGap {
	required := 0
	if req != nil {
		required = req.MinYears
	}
	gap := required - actualYears
	if gap < 0 {
		gap = 0
	}
	pct := 0.0
	if required > 0 && gap > 0 {
		pct = float64(gap) / float64(required) * 100
	}
	return ExperienceGap{
		RequiredYears:      required,
		ActualYears:        actualYears,
		GapYears:           gap,
		ExceedsRequirement: actualYears > required,
		GapPercentage:      pct,
	}
}

func matchingSkills(candidateSkills, jobSkills []string) []string {
	want := toSet(jobSkills)
	var out []string
	for _, skill := range candidateSkills {
		if want[skill] {
			out = append(out, skill)
		}
	}
	return out
}

// missingSkills keeps the job's original casing for display.
func missingSkills(candidateSkills, required []string) []string {
	have := toSet(candidateSkills)
	var out []string
	for _, skill := range required {
		if !have[strings.ToLower(skill)] {
			out = append(out, skill)
		}
	}
	return out
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}

func countMatches(have map[string]bool, wanted []string) int {
	count := 0
	for _, skill := range wanted {
		if have[strings.ToLower(skill)] {
			count++
		}
	}
	return count
}

func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}
