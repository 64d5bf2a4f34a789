package analyses

import "context"

// Repo defines persistence operations for analyses and match results.
type Repo interface {
	CreateAnalysis(ctx context.Context, analysis Analysis) error
	GetAnalysis(ctx context.Context, analysisID string) (Analysis, error)
	CreateMatch(ctx context.Context, record MatchRecord) error
	GetMatch(ctx context.Context, matchID string) (MatchRecord, error)
}
