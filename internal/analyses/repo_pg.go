package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"talentmatch-backend/internal/comms"
	"talentmatch-backend/internal/match"
)

// PGRepo implements Repo using Postgres. Profile, communication and match
// payloads live in JSONB columns.
type PGRepo struct {
	DB *sql.DB
}

// CreateAnalysis inserts a new analysis.
func (r *PGRepo) CreateAnalysis(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
	id, kind, target_industry, text_hash, profile, communication,
	communication_insights, transcript_confidence, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	profilePayload, err := marshalJSONB(analysis.Profile)
	if err != nil {
		return err
	}
	commPayload, err := marshalNullableJSONB(analysis.Communication)
	if err != nil {
		return err
	}
	insightsPayload, err := marshalNullableJSONB(analysis.CommunicationInsights)
	if err != nil {
		return err
	}
	var confidence sql.NullFloat64
	if analysis.TranscriptConfidence != nil {
		confidence = sql.NullFloat64{Float64: *analysis.TranscriptConfidence, Valid: true}
	}
	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.Kind,
		analysis.TargetIndustry,
		analysis.TextHash,
		profilePayload,
		commPayload,
		insightsPayload,
		confidence,
		analysis.CreatedAt,
	)
	return err
}

// GetAnalysis returns an analysis by ID.
func (r *PGRepo) GetAnalysis(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT id, kind, target_industry, text_hash, profile, communication,
       communication_insights, transcript_confidence, created_at
FROM analyses
WHERE id = $1
LIMIT 1`
	var a Analysis
	var profileRaw string
	var commRaw sql.NullString
	var insightsRaw sql.NullString
	var confidence sql.NullFloat64

	err := r.DB.QueryRowContext(ctx, query, analysisID).Scan(
		&a.ID,
		&a.Kind,
		&a.TargetIndustry,
		&a.TextHash,
		&profileRaw,
		&commRaw,
		&insightsRaw,
		&confidence,
		&a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Analysis{}, ErrNotFound
	}
	if err != nil {
		return Analysis{}, err
	}

	if err := json.Unmarshal([]byte(profileRaw), &a.Profile); err != nil {
		return Analysis{}, err
	}
	if commRaw.Valid {
		var scores comms.Scores
		if err := json.Unmarshal([]byte(commRaw.String), &scores); err != nil {
			return Analysis{}, err
		}
		a.Communication = &scores
	}
	if insightsRaw.Valid {
		var insights comms.Insights
		if err := json.Unmarshal([]byte(insightsRaw.String), &insights); err != nil {
			return Analysis{}, err
		}
		a.CommunicationInsights = &insights
	}
	if confidence.Valid {
		a.TranscriptConfidence = &confidence.Float64
	}
	return a, nil
}

// CreateMatch inserts a new match record.
func (r *PGRepo) CreateMatch(ctx context.Context, record MatchRecord) error {
	const query = `
INSERT INTO match_results (id, analysis_id, job, result, created_at)
VALUES ($1, $2, $3, $4, $5)`
	jobPayload, err := marshalJSONB(record.Job)
	if err != nil {
		return err
	}
	resultPayload, err := marshalJSONB(record.Result)
	if err != nil {
		return err
	}
	var analysisID sql.NullString
	if record.AnalysisID != "" {
		analysisID = sql.NullString{String: record.AnalysisID, Valid: true}
	}
	_, err = r.DB.ExecContext(ctx, query,
		record.ID,
		analysisID,
		jobPayload,
		resultPayload,
		record.CreatedAt,
	)
	return err
}

// GetMatch returns a match record by ID.
func (r *PGRepo) GetMatch(ctx context.Context, matchID string) (MatchRecord, error) {
	const query = `
SELECT id, analysis_id, job, result, created_at
FROM match_results
WHERE id = $1
LIMIT 1`
	var record MatchRecord
	var analysisID sql.NullString
	var jobRaw string
	var resultRaw string

	err := r.DB.QueryRowContext(ctx, query, matchID).Scan(
		&record.ID,
		&analysisID,
		&jobRaw,
		&resultRaw,
		&record.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return MatchRecord{}, ErrNotFound
	}
	if err != nil {
		return MatchRecord{}, err
	}

	if analysisID.Valid {
		record.AnalysisID = analysisID.String
	}
	var job match.JobRequirement
	if err := json.Unmarshal([]byte(jobRaw), &job); err != nil {
		return MatchRecord{}, err
	}
	record.Job = job
	var result match.MatchResult
	if err := json.Unmarshal([]byte(resultRaw), &result); err != nil {
		return MatchRecord{}, err
	}
	record.Result = result
	return record, nil
}

func marshalJSONB(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func marshalNullableJSONB[T any](v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
