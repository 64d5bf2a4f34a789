package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"talentmatch-backend/internal/comms"
	"talentmatch-backend/internal/match"
	"talentmatch-backend/internal/profile"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoCreateAnalysis(t *testing.T) {
	repo, mock := newMockRepo(t)

	confidence := 0.8
	analysis := Analysis{
		ID:             "analysis-1",
		Kind:           KindVoice,
		TargetIndustry: "technology",
		TextHash:       "deadbeef",
		Profile: profile.CandidateProfile{
			DetectedIndustry: "technology",
			ExperienceLevel:  profile.LevelSenior,
		},
		Communication:        &comms.Scores{Overall: 82},
		TranscriptConfidence: &confidence,
		CreatedAt:            time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(
			analysis.ID,
			analysis.Kind,
			analysis.TargetIndustry,
			analysis.TextHash,
			sqlmock.AnyArg(), // profile
			sqlmock.AnyArg(), // communication
			nil,              // communication_insights
			sqlmock.AnyArg(), // transcript_confidence
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.CreateAnalysis(context.Background(), analysis); err != nil {
		t.Fatalf("CreateAnalysis: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetAnalysisRoundTrip(t *testing.T) {
	repo, mock := newMockRepo(t)

	candidate := profile.CandidateProfile{
		DetectedIndustry: "finance",
		ExperienceLevel:  profile.LevelMid,
		Skills:           map[string][]string{"tools": {"Excel"}},
	}
	profileJSON, err := json.Marshal(candidate)
	if err != nil {
		t.Fatalf("marshal profile: %v", err)
	}
	created := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "kind", "target_industry", "text_hash", "profile",
		"communication", "communication_insights", "transcript_confidence", "created_at",
	}).AddRow("analysis-2", KindText, "", "cafe", string(profileJSON), nil, nil, nil, created)

	mock.ExpectQuery("FROM analyses").
		WithArgs("analysis-2").
		WillReturnRows(rows)

	analysis, err := repo.GetAnalysis(context.Background(), "analysis-2")
	if err != nil {
		t.Fatalf("GetAnalysis: %v", err)
	}
	if analysis.Profile.DetectedIndustry != "finance" {
		t.Fatalf("unexpected profile industry: %q", analysis.Profile.DetectedIndustry)
	}
	if analysis.Communication != nil {
		t.Fatalf("expected nil communication for text analysis")
	}
	if !analysis.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created at: %v", analysis.CreatedAt)
	}
}

func TestPGRepoGetAnalysisNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("FROM analyses").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "kind", "target_industry", "text_hash", "profile",
			"communication", "communication_insights", "transcript_confidence", "created_at",
		}))

	if _, err := repo.GetAnalysis(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoCreateMatchNullsEmptyAnalysisID(t *testing.T) {
	repo, mock := newMockRepo(t)

	record := MatchRecord{
		ID:        "match-1",
		Job:       match.JobRequirement{RequiredSkills: []string{"python"}},
		Result:    match.MatchResult{OverallScore: 77},
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO match_results").
		WithArgs(
			record.ID,
			sqlmock.AnyArg(), // null analysis_id
			sqlmock.AnyArg(), // job
			sqlmock.AnyArg(), // result
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.CreateMatch(context.Background(), record); err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetMatchRoundTrip(t *testing.T) {
	repo, mock := newMockRepo(t)

	jobJSON, err := json.Marshal(match.JobRequirement{RequiredSkills: []string{"python"}})
	if err != nil {
		t.Fatalf("marshal job: %v", err)
	}
	resultJSON, err := json.Marshal(match.MatchResult{OverallScore: 91, Qualifies: true})
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}
	created := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "analysis_id", "job", "result", "created_at"}).
		AddRow("match-2", "analysis-1", string(jobJSON), string(resultJSON), created)

	mock.ExpectQuery("FROM match_results").
		WithArgs("match-2").
		WillReturnRows(rows)

	record, err := repo.GetMatch(context.Background(), "match-2")
	if err != nil {
		t.Fatalf("GetMatch: %v", err)
	}
	if record.AnalysisID != "analysis-1" {
		t.Fatalf("unexpected analysis id: %q", record.AnalysisID)
	}
	if record.Result.OverallScore != 91 || !record.Result.Qualifies {
		t.Fatalf("unexpected result: %+v", record.Result)
	}
}
