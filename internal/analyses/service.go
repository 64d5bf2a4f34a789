package analyses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"talentmatch-backend/internal/comms"
	"talentmatch-backend/internal/extract"
	"talentmatch-backend/internal/match"
	"talentmatch-backend/internal/profile"
	"talentmatch-backend/internal/shared/telemetry"
	"talentmatch-backend/internal/shared/util"
)

// Service contains business logic for candidate analysis and matching.
// Analysis runs synchronously; results are persisted for later retrieval.
type Service struct {
	Repo      Repo
	Extractor *profile.Extractor
	Scorer    *comms.Scorer
	Engine    *match.Engine
}

// AnalyzeText builds and stores a candidate profile from resume text.
func (s *Service) AnalyzeText(ctx context.Context, text, targetIndustry string) (Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return Analysis{}, fmt.Errorf("%w: text is required", ErrEmptyInput)
	}
	return s.storeProfile(ctx, KindText, text, targetIndustry)
}

// AnalyzeFile extracts text from an uploaded document and analyzes it.
func (s *Service) AnalyzeFile(ctx context.Context, data []byte, mimeType, fileName, targetIndustry string) (Analysis, error) {
	text, err := extract.Text(ctx, data, mimeType, fileName)
	if err != nil {
		return Analysis{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Analysis{}, fmt.Errorf("%w: document contains no text", ErrEmptyInput)
	}
	return s.storeProfile(ctx, KindFile, text, targetIndustry)
}

// AnalyzeVoice analyzes an interview transcript plus optional acoustic
// features, adding communication scores and insights to the profile.
func (s *Service) AnalyzeVoice(ctx context.Context, transcript string, features *comms.SpeechFeatures, targetIndustry string) (Analysis, error) {
	if strings.TrimSpace(transcript) == "" {
		return Analysis{}, fmt.Errorf("%w: transcript is required", ErrEmptyInput)
	}

	candidate := s.Extractor.Analyze(transcript, targetIndustry)
	scores := s.Scorer.Score(features, transcript, candidate.DetectedIndustry)
	insights := s.Scorer.Insights(scores, transcript, candidate.DetectedIndustry)
	confidence := comms.TranscriptConfidence(transcript)

	analysis := Analysis{
		ID:                    uuid.NewString(),
		Kind:                  KindVoice,
		TargetIndustry:        targetIndustry,
		TextHash:              util.TextFingerprint(transcript),
		Profile:               candidate,
		Communication:         &scores,
		CommunicationInsights: &insights,
		TranscriptConfidence:  &confidence,
		CreatedAt:             time.Now().UTC(),
	}
	if err := s.Repo.CreateAnalysis(ctx, analysis); err != nil {
		return Analysis{}, err
	}
	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id": analysis.ID,
		"kind":        analysis.Kind,
		"industry":    candidate.DetectedIndustry,
		"overall":     scores.Overall,
	})
	return analysis, nil
}

// Match scores a candidate against a job requirement. The candidate comes
// either from a stored analysis (analysisID) or from an inline profile.
func (s *Service) Match(ctx context.Context, analysisID string, candidate *profile.CandidateProfile, job match.JobRequirement) (MatchRecord, error) {
	var commScores *comms.Scores
	if analysisID != "" {
		analysis, err := s.Repo.GetAnalysis(ctx, analysisID)
		if err != nil {
			return MatchRecord{}, err
		}
		candidate = &analysis.Profile
		commScores = analysis.Communication
	}
	if candidate == nil {
		return MatchRecord{}, fmt.Errorf("%w: profile or analysisId is required", ErrEmptyInput)
	}

	result := s.Engine.Match(*candidate, commScores, job)
	record := MatchRecord{
		ID:         uuid.NewString(),
		AnalysisID: analysisID,
		Job:        job,
		Result:     result,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.CreateMatch(ctx, record); err != nil {
		return MatchRecord{}, err
	}
	telemetry.Info("match.completed", map[string]any{
		"match_id":    record.ID,
		"analysis_id": analysisID,
		"overall":     result.OverallScore,
		"qualifies":   result.Qualifies,
	})
	return record, nil
}

// Get returns a stored analysis.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	return s.Repo.GetAnalysis(ctx, analysisID)
}

// GetMatch returns a stored match record.
func (s *Service) GetMatch(ctx context.Context, matchID string) (MatchRecord, error) {
	return s.Repo.GetMatch(ctx, matchID)
}

func (s *Service) storeProfile(ctx context.Context, kind, text, targetIndustry string) (Analysis, error) {
	candidate := s.Extractor.Analyze(text, targetIndustry)

	analysis := Analysis{
		ID:             uuid.NewString(),
		Kind:           kind,
		TargetIndustry: targetIndustry,
		TextHash:       util.TextFingerprint(text),
		Profile:        candidate,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.CreateAnalysis(ctx, analysis); err != nil {
		return Analysis{}, err
	}
	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id": analysis.ID,
		"kind":        kind,
		"industry":    candidate.DetectedIndustry,
		"level":       candidate.ExperienceLevel,
	})
	return analysis, nil
}
