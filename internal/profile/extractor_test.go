package profile

import (
	"strings"
	"testing"
	"time"

	"talentmatch-backend/internal/lexicon"
)

const sampleResume = `Jane Rivera
jane.rivera@example.com
(555) 123-4567
linkedin.com/in/jane-rivera

Summary
Experienced software engineer focused on cloud platforms and developer tooling for the last decade of shipping products.

Experience
Senior Software Engineer
Acme Cloud
2016-2023
• Led migration of services to Kubernetes and reduced deploy time by 40%
• Developed internal Python tooling adopted by 12 teams

Web Developer
Initech
2014-2016

Skills
Python, Docker, AWS, PostgreSQL, team leadership, mentoring

Education
Bachelor of Science in Computer Science, State University, 2014, GPA: 3.8

Certifications
AWS Certified Solutions Architect, 2021

Languages
English (native), Spanish (conversational)
`

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	store := lexicon.NewStore(t.TempDir())
	classifier := lexicon.NewClassifier(store)
	estimator := NewEstimator(WithClock(func() time.Time {
		return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	}))
	return NewExtractor(store, classifier, estimator)
}

func TestAnalyzeFullResume(t *testing.T) {
	extractor := newTestExtractor(t)
	p := extractor.Analyze(sampleResume, "")

	if p.DetectedIndustry != "technology" {
		t.Fatalf("expected technology, got %q", p.DetectedIndustry)
	}
	if p.ContactInfo.Name != "Jane Rivera" {
		t.Fatalf("expected name Jane Rivera, got %q", p.ContactInfo.Name)
	}
	if p.ContactInfo.Email != "jane.rivera@example.com" {
		t.Fatalf("unexpected email %q", p.ContactInfo.Email)
	}
	if p.ContactInfo.Phone != "(555) 123-4567" {
		t.Fatalf("unexpected phone %q", p.ContactInfo.Phone)
	}
	if p.ContactInfo.LinkedIn != "https://linkedin.com/in/jane-rivera" {
		t.Fatalf("unexpected linkedin %q", p.ContactInfo.LinkedIn)
	}

	programming := p.Skills["programming"]
	if !containsString(programming, "Python") {
		t.Fatalf("expected Python under programming, got %v", p.Skills)
	}
	if !containsString(p.Skills["cloud"], "Docker") {
		t.Fatalf("expected Docker under cloud, got %v", p.Skills)
	}

	var bachelor *EducationEntry
	for i := range p.Education {
		if strings.Contains(p.Education[i].Degree, "Bachelor of Science") {
			bachelor = &p.Education[i]
		}
	}
	if bachelor == nil {
		t.Fatalf("expected bachelor entry, got %v", p.Education)
	}
	if bachelor.GPA != "3.8" || bachelor.Year != "2014" {
		t.Fatalf("unexpected education entry %+v", *bachelor)
	}

	foundCert := false
	for _, cert := range p.Certifications {
		if strings.Contains(cert.Name, "AWS Certified") && cert.Year == "2021" {
			foundCert = true
		}
	}
	if !foundCert {
		t.Fatalf("expected AWS certification with year, got %v", p.Certifications)
	}

	if len(p.Achievements) == 0 {
		t.Fatalf("expected achievements from bullet lines")
	}
	if !containsString(p.SoftSkills, "Team Leadership") {
		t.Fatalf("expected Team Leadership soft skill, got %v", p.SoftSkills)
	}
	if !containsString(p.Languages, "English (advanced)") {
		t.Fatalf("expected English with native proficiency mapped to advanced, got %v", p.Languages)
	}
	if p.ProfessionalSummary == "" || !strings.Contains(p.ProfessionalSummary, "Experienced software engineer") {
		t.Fatalf("unexpected summary %q", p.ProfessionalSummary)
	}
}

func TestAnalyzeSeniorScenario(t *testing.T) {
	extractor := newTestExtractor(t)
	text := "Senior Python developer with 12 years building AWS and Docker systems"
	p := extractor.Analyze(text, "")

	if p.ExperienceLevel != LevelSenior {
		t.Fatalf("expected senior, got %q", p.ExperienceLevel)
	}
	if p.TotalExperienceYears != 12 {
		t.Fatalf("expected 12 years, got %d", p.TotalExperienceYears)
	}
	if p.DetectedIndustry != "technology" {
		t.Fatalf("expected technology, got %q", p.DetectedIndustry)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	extractor := newTestExtractor(t)
	p := extractor.Analyze("", "")

	if p.DetectedIndustry != lexicon.GeneralIndustry {
		t.Fatalf("expected general, got %q", p.DetectedIndustry)
	}
	if len(p.Skills) != 0 {
		t.Fatalf("expected no skills, got %v", p.Skills)
	}
	if len(p.JobTitles) != 0 {
		t.Fatalf("expected no job titles, got %v", p.JobTitles)
	}
	if p.ExperienceLevel != LevelMid {
		t.Fatalf("expected mid default, got %q", p.ExperienceLevel)
	}
	if p.ProfessionalSummary != "" {
		t.Fatalf("expected empty summary, got %q", p.ProfessionalSummary)
	}
}

func TestAnalyzeRespectsTargetIndustry(t *testing.T) {
	extractor := newTestExtractor(t)
	p := extractor.Analyze("python and excel reports", "Finance")

	if p.DetectedIndustry != "finance" {
		t.Fatalf("expected finance override, got %q", p.DetectedIndustry)
	}
	// Under finance, python resolves to the finance tools category.
	if !containsString(p.Skills["tools"], "Python") {
		t.Fatalf("expected Python under tools for finance, got %v", p.Skills)
	}
}

func TestSkillsMatchingIsCaseInsensitive(t *testing.T) {
	extractor := newTestExtractor(t)
	p := extractor.Analyze("Expert in PYTHON and DOCKER.", "technology")

	if !containsString(p.Skills["programming"], "Python") {
		t.Fatalf("expected PYTHON to hit python entry, got %v", p.Skills)
	}
	if !containsString(p.Skills["cloud"], "Docker") {
		t.Fatalf("expected DOCKER to hit docker entry, got %v", p.Skills)
	}
}

func TestExperienceEntriesCapAndOrder(t *testing.T) {
	extractor := newTestExtractor(t)

	var b strings.Builder
	for i := 0; i < 8; i++ {
		b.WriteString("Software Engineer role " + string(rune('A'+i)) + "\n")
		b.WriteString("• Developed features\n")
	}
	p := extractor.Analyze(b.String(), "technology")

	if len(p.Experience) != maxExperienceEntries {
		t.Fatalf("expected %d entries, got %d", maxExperienceEntries, len(p.Experience))
	}
	if !strings.Contains(p.Experience[0].Title, "role A") {
		t.Fatalf("expected first-encountered entry first, got %+v", p.Experience[0])
	}
}

func TestJobTitlesOrderedByAppearance(t *testing.T) {
	extractor := newTestExtractor(t)
	text := "Worked as web developer, then data scientist, then product manager."
	p := extractor.Analyze(text, "technology")

	if len(p.JobTitles) == 0 || p.JobTitles[0] != "Web Developer" {
		t.Fatalf("expected Web Developer first, got %v", p.JobTitles)
	}
}

func TestSummaryFallbackSkipsContactLines(t *testing.T) {
	extractor := newTestExtractor(t)
	text := "Email available on request but only through the agency contact desk. " +
		"Seasoned operations analyst improving supply chains across three continents. " +
		"Known for pragmatic process improvement work in regulated environments."
	summary := extractSummary(text)

	if strings.HasPrefix(strings.ToLower(summary), "email") {
		t.Fatalf("summary should skip contact-prefixed sentences: %q", summary)
	}
	if !strings.Contains(summary, "operations analyst") {
		t.Fatalf("expected fallback summary content, got %q", summary)
	}
	_ = extractor
}

func containsString(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
