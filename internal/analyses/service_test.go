package analyses

import (
	"context"
	"errors"
	"testing"

	"talentmatch-backend/internal/comms"
	"talentmatch-backend/internal/lexicon"
	"talentmatch-backend/internal/match"
	"talentmatch-backend/internal/profile"
)

const sampleResumeText = `John Smith
john.smith@example.com
(555) 123-4567

Professional Summary
Senior software engineer with 12 years of experience building cloud
platforms. Led teams of engineers and architected large distributed systems.

Experience
Senior Software Engineer
Acme Corp
2014 - 2023
- Built microservices in Python and Go on AWS
- Managed a team of five engineers

Education
Bachelor of Science in Computer Science, 2013

Skills
Python, AWS, Docker, Kubernetes, SQL
`

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := lexicon.NewStore(t.TempDir())
	classifier := lexicon.NewClassifier(store)
	return &Service{
		Repo:      NewMemoryRepo(),
		Extractor: profile.NewExtractor(store, classifier, profile.NewEstimator()),
		Scorer:    comms.NewScorer(store),
		Engine:    match.NewEngine(store),
	}
}

func TestAnalyzeTextStoresProfile(t *testing.T) {
	svc := newTestService(t)

	analysis, err := svc.AnalyzeText(context.Background(), sampleResumeText, "")
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}
	if analysis.ID == "" {
		t.Fatalf("expected generated analysis id")
	}
	if analysis.Kind != KindText {
		t.Fatalf("expected kind %q, got %q", KindText, analysis.Kind)
	}
	if analysis.Profile.DetectedIndustry != "technology" {
		t.Fatalf("expected technology, got %q", analysis.Profile.DetectedIndustry)
	}
	if analysis.Profile.ExperienceLevel != profile.LevelSenior {
		t.Fatalf("expected senior, got %q", analysis.Profile.ExperienceLevel)
	}
	if analysis.Communication != nil {
		t.Fatalf("text analysis should not carry communication scores")
	}
	if analysis.TextHash == "" {
		t.Fatalf("expected text hash to be recorded")
	}

	stored, err := svc.Get(context.Background(), analysis.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Profile.ContactInfo.Email != "john.smith@example.com" {
		t.Fatalf("unexpected stored email: %q", stored.Profile.ContactInfo.Email)
	}
}

func TestAnalyzeTextRejectsEmpty(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.AnalyzeText(context.Background(), "   ", ""); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestAnalyzeFilePlainText(t *testing.T) {
	svc := newTestService(t)

	analysis, err := svc.AnalyzeFile(context.Background(), []byte(sampleResumeText), "text/plain", "resume.txt", "")
	if err != nil {
		t.Fatalf("AnalyzeFile: %v", err)
	}
	if analysis.Kind != KindFile {
		t.Fatalf("expected kind %q, got %q", KindFile, analysis.Kind)
	}
	if analysis.Profile.DetectedIndustry != "technology" {
		t.Fatalf("expected technology, got %q", analysis.Profile.DetectedIndustry)
	}
}

func TestAnalyzeVoiceAddsCommunication(t *testing.T) {
	svc := newTestService(t)

	transcript := "I have led software engineering teams for ten years. " +
		"I developed cloud systems in Python and managed successful delivery across several products."
	features := &comms.SpeechFeatures{EnergyMean: 0.05, PitchMean: 150}

	analysis, err := svc.AnalyzeVoice(context.Background(), transcript, features, "")
	if err != nil {
		t.Fatalf("AnalyzeVoice: %v", err)
	}
	if analysis.Kind != KindVoice {
		t.Fatalf("expected kind %q, got %q", KindVoice, analysis.Kind)
	}
	if analysis.Communication == nil {
		t.Fatalf("expected communication scores")
	}
	if analysis.CommunicationInsights == nil {
		t.Fatalf("expected communication insights")
	}
	if analysis.TranscriptConfidence == nil {
		t.Fatalf("expected transcript confidence")
	}
	if conf := *analysis.TranscriptConfidence; conf < 0.3 || conf > 0.9 {
		t.Fatalf("transcript confidence %v out of [0.3,0.9]", conf)
	}
}

func TestMatchByAnalysisID(t *testing.T) {
	svc := newTestService(t)

	analysis, err := svc.AnalyzeText(context.Background(), sampleResumeText, "")
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	job := match.JobRequirement{
		Industry:           "technology",
		RequiredSkills:     []string{"python", "aws"},
		RequiredExperience: &match.ExperienceRequirement{MinYears: 5},
	}
	record, err := svc.Match(context.Background(), analysis.ID, nil, job)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if record.AnalysisID != analysis.ID {
		t.Fatalf("expected analysis id on record")
	}
	if len(record.Result.MissingSkills) != 0 {
		t.Fatalf("expected no missing skills, got %v", record.Result.MissingSkills)
	}
	if !record.Result.Qualifies {
		t.Fatalf("expected a qualifying match, got overall %d", record.Result.OverallScore)
	}

	stored, err := svc.GetMatch(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("GetMatch: %v", err)
	}
	if stored.Result.OverallScore != record.Result.OverallScore {
		t.Fatalf("stored result differs: %d vs %d", stored.Result.OverallScore, record.Result.OverallScore)
	}
}

func TestMatchInlineProfile(t *testing.T) {
	svc := newTestService(t)

	candidate := profile.CandidateProfile{
		DetectedIndustry:     "technology",
		Skills:               map[string][]string{"programming": {"python"}},
		TotalExperienceYears: 3,
	}
	record, err := svc.Match(context.Background(), "", &candidate, match.JobRequirement{
		RequiredSkills: []string{"python", "kubernetes"},
	})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if record.AnalysisID != "" {
		t.Fatalf("inline match should have no analysis id")
	}
	if len(record.Result.MissingSkills) != 1 || record.Result.MissingSkills[0] != "kubernetes" {
		t.Fatalf("expected kubernetes missing, got %v", record.Result.MissingSkills)
	}
}

func TestMatchErrors(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Match(context.Background(), "does-not-exist", nil, match.JobRequirement{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Match(context.Background(), "", nil, match.JobRequirement{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}
