package analyses

import (
	"time"

	"talentmatch-backend/internal/comms"
	"talentmatch-backend/internal/match"
	"talentmatch-backend/internal/profile"
)

// Analysis input kinds.
const (
	KindText  = "text"
	KindFile  = "file"
	KindVoice = "voice"
)

// Analysis is a stored candidate analysis. Communication fields are only set
// for voice input.
type Analysis struct {
	ID                    string                   `json:"id"`
	Kind                  string                   `json:"kind"`
	TargetIndustry        string                   `json:"targetIndustry,omitempty"`
	TextHash              string                   `json:"textHash"`
	Profile               profile.CandidateProfile `json:"profile"`
	Communication         *comms.Scores            `json:"communication,omitempty"`
	CommunicationInsights *comms.Insights          `json:"communicationInsights,omitempty"`
	TranscriptConfidence  *float64                 `json:"transcriptConfidence,omitempty"`
	CreatedAt             time.Time                `json:"createdAt"`
}

// MatchRecord is a stored match evaluation. AnalysisID is empty when the
// caller supplied a profile inline.
type MatchRecord struct {
	ID         string               `json:"id"`
	AnalysisID string               `json:"analysisId,omitempty"`
	Job        match.JobRequirement `json:"job"`
	Result     match.MatchResult    `json:"result"`
	CreatedAt  time.Time            `json:"createdAt"`
}
