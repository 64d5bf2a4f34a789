package match

import (
	"fmt"
	"strings"

	"talentmatch-backend/internal/profile"
)

const (
	maxStrengths       = 5
	maxConcerns        = 4
	maxRecommendations = 5
)

// strengths lists what works in the candidate's favor, strongest signals
// first, capped at maxStrengths.
func (e *Engine) strengths(candidate profile.CandidateProfile, job JobRequirement, result MatchResult) []string {
	var out []string

	switch {
	case len(result.MatchingSkills) >= 5:
		out = append(out, fmt.Sprintf("Excellent technical skills match (%d relevant skills)", len(result.MatchingSkills)))
	case len(result.MatchingSkills) >= 3:
		out = append(out, fmt.Sprintf("Good technical skills alignment (%d matching skills)", len(result.MatchingSkills)))
	}

	if job.RequiredExperience != nil && job.RequiredExperience.MinYears > 0 {
		years := candidate.TotalExperienceYears
		switch {
		case float64(years) >= float64(job.RequiredExperience.MinYears)*1.5:
			out = append(out, "Extensive experience exceeding requirements")
		case years >= job.RequiredExperience.MinYears:
			out = append(out, "Meets experience requirements")
		}
	}

	if result.IndustryMatch && result.ResumeIndustry != "" {
		out = append(out, fmt.Sprintf("Direct %s industry experience", result.ResumeIndustry))
	}

	for _, entry := range candidate.Education {
		lowered := strings.ToLower(entry.Degree)
		if strings.Contains(lowered, "master") || strings.Contains(lowered, "mba") {
			out = append(out, "Advanced degree qualification")
			break
		}
	}

	if len(job.RequiredCertifications) > 0 {
		certMatches := 0
		for _, req := range job.RequiredCertifications {
			lowered := strings.ToLower(req)
			for _, cert := range candidate.Certifications {
				if strings.Contains(strings.ToLower(cert.Name), lowered) {
					certMatches++
					break
				}
			}
		}
		if certMatches > 0 {
			out = append(out, fmt.Sprintf("Relevant professional certifications (%d matches)", certMatches))
		}
	}

	if len(candidate.SoftSkills) >= 3 {
		out = append(out, "Strong soft skills profile")
	}

	return capList(out, maxStrengths)
}

// concerns lists what would give a recruiter pause, capped at maxConcerns.
func concerns(candidate profile.CandidateProfile, job JobRequirement, result MatchResult) []string {
	var out []string

	switch {
	case len(result.MissingSkills) >= 3:
		out = append(out, fmt.Sprintf("Missing multiple required skills (%d skills)", len(result.MissingSkills)))
	case len(result.MissingSkills) > 0:
		out = append(out, fmt.Sprintf("Missing some required skills: %s", strings.Join(capList(result.MissingSkills, 3), ", ")))
	}

	switch {
	case result.ExperienceGap.GapYears > 2:
		out = append(out, fmt.Sprintf("Experience gap: %d years below requirement", result.ExperienceGap.GapYears))
	case result.ExperienceGap.GapYears > 0:
		out = append(out, "Slightly below required experience level")
	}

	if !result.IndustryMatch && result.JobIndustry != "" {
		out = append(out, fmt.Sprintf("Industry transition from %s to %s", result.ResumeIndustry, result.JobIndustry))
	}

	if job.RequiredEducation != nil && job.RequiredEducation.MinDegree != "" && len(candidate.Education) == 0 {
		out = append(out, "No formal education listed")
	}

	if len(job.RequiredCertifications) > 0 && len(candidate.Certifications) == 0 {
		out = append(out, "Missing required professional certifications")
	}

	return capList(out, maxConcerns)
}

// recommendations suggests the most impactful next steps, capped at
// maxRecommendations.
func (e *Engine) recommendations(candidate profile.CandidateProfile, job JobRequirement, result MatchResult) []string {
	var out []string

	if len(result.MissingSkills) > 0 {
		out = append(out, fmt.Sprintf("Develop skills in: %s", strings.Join(capList(result.MissingSkills, 3), ", ")))
	}

	if result.ExperienceGap.GapYears > 0 {
		out = append(out, fmt.Sprintf("Gain %d more years of relevant experience or highlight transferable skills", result.ExperienceGap.GapYears))
	}

	if len(job.RequiredCertifications) > 0 {
		var missingCerts []string
		for _, req := range job.RequiredCertifications {
			lowered := strings.ToLower(req)
			found := false
			for _, cert := range candidate.Certifications {
				if strings.Contains(strings.ToLower(cert.Name), lowered) {
					found = true
					break
				}
			}
			if !found {
				missingCerts = append(missingCerts, req)
			}
		}
		if len(missingCerts) > 0 {
			out = append(out, fmt.Sprintf("Obtain certifications: %s", strings.Join(capList(missingCerts, 2), ", ")))
		}
	}

	if result.JobIndustry != "" {
		have := toSet(candidate.FlatSkills())
		var missingIndustrySkills []string
		for _, skill := range capList(e.store.SkillsByIndustry(result.JobIndustry), 5) {
			if !have[strings.ToLower(skill)] {
				missingIndustrySkills = append(missingIndustrySkills, skill)
			}
		}
		if len(missingIndustrySkills) > 0 {
			out = append(out, fmt.Sprintf("Learn %s-specific skills: %s", result.JobIndustry, strings.Join(capList(missingIndustrySkills, 2), ", ")))
		}
	}

	if len(candidate.Achievements) == 0 {
		out = append(out, "Add quantifiable achievements to demonstrate impact")
	}

	return capList(out, maxRecommendations)
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
