package analyses

import (
	"context"
	"sync"
)

// MemoryRepo stores analyses in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu       sync.RWMutex
	analyses map[string]Analysis
	matches  map[string]MatchRecord
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		analyses: make(map[string]Analysis),
		matches:  make(map[string]MatchRecord),
	}
}

// CreateAnalysis stores the analysis.
func (r *MemoryRepo) CreateAnalysis(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.analyses[analysis.ID] = analysis
	return nil
}

// GetAnalysis returns an analysis by its ID.
func (r *MemoryRepo) GetAnalysis(ctx context.Context, analysisID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.analyses[analysisID]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

// CreateMatch stores the match record.
func (r *MemoryRepo) CreateMatch(ctx context.Context, record MatchRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches[record.ID] = record
	return nil
}

// GetMatch returns a match record by its ID.
func (r *MemoryRepo) GetMatch(ctx context.Context, matchID string) (MatchRecord, error) {
	if err := ctx.Err(); err != nil {
		return MatchRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.matches[matchID]
	if !ok {
		return MatchRecord{}, ErrNotFound
	}
	return record, nil
}
