package comms

import (
	"testing"

	"talentmatch-backend/internal/lexicon"
)

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	return NewScorer(lexicon.NewStore(t.TempDir()))
}

func TestScoreDefaultsWhenInputsMissing(t *testing.T) {
	scorer := newTestScorer(t)

	scores := scorer.Score(nil, "", "technology")
	if scores.Clarity != defaultSubScore ||
		scores.Confidence != defaultSubScore ||
		scores.Fluency != defaultSubScore ||
		scores.Vocabulary != defaultSubScore {
		t.Fatalf("expected all defaults, got %+v", scores)
	}
	if scores.Overall != defaultSubScore {
		t.Fatalf("expected overall %d, got %d", defaultSubScore, scores.Overall)
	}
	if scores.IndustryKnowledge != 50 {
		t.Fatalf("expected industry knowledge default 50, got %d", scores.IndustryKnowledge)
	}
}

func TestScoreBoundsHold(t *testing.T) {
	scorer := newTestScorer(t)

	inputs := []struct {
		features   *SpeechFeatures
		transcript string
	}{
		{&SpeechFeatures{EnergyMean: 10, PitchMean: 150}, "great great great excellent python docker aws"},
		{&SpeechFeatures{EnergyMean: 0, PitchMean: 900}, "um uh like um uh like"},
		{nil, "bad poor failed struggle unfortunately never"},
		{&SpeechFeatures{EnergyMean: 0.05, PitchMean: 150}, "I developed and managed a successful project team. We achieved strong results and delivered the solution on time. My experience covers strategy and implementation across several industries."},
	}
	for i, input := range inputs {
		scores := scorer.Score(input.features, input.transcript, "technology")
		for name, v := range map[string]int{
			"clarity":    scores.Clarity,
			"confidence": scores.Confidence,
			"fluency":    scores.Fluency,
			"vocabulary": scores.Vocabulary,
		} {
			if v < minSubScore || v > maxSubScore {
				t.Fatalf("case %d: %s score %d out of [%d,%d]", i, name, v, minSubScore, maxSubScore)
			}
		}
		if scores.Overall < minSubScore || scores.Overall > maxSubScore {
			t.Fatalf("case %d: overall %d out of range", i, scores.Overall)
		}
	}
}

func TestClarityRewardsTargetPitch(t *testing.T) {
	scorer := newTestScorer(t)

	onTarget := scorer.Score(&SpeechFeatures{EnergyMean: 0.05, PitchMean: pitchTargetHz}, "", "general")
	offTarget := scorer.Score(&SpeechFeatures{EnergyMean: 0.05, PitchMean: pitchTargetHz + 40}, "", "general")
	if onTarget.Clarity <= offTarget.Clarity {
		t.Fatalf("expected on-target pitch to score higher: %d vs %d", onTarget.Clarity, offTarget.Clarity)
	}
}

func TestFluencyPenalizesFillers(t *testing.T) {
	scorer := newTestScorer(t)

	clean := "I led the migration project and delivered every milestone on schedule for the team."
	filled := "Um, I, like, basically led the, uh, migration project and, like, actually delivered it."

	cleanScores := scorer.Score(nil, clean, "general")
	filledScores := scorer.Score(nil, filled, "general")
	if cleanScores.Fluency <= filledScores.Fluency {
		t.Fatalf("expected filler words to lower fluency: %d vs %d", cleanScores.Fluency, filledScores.Fluency)
	}
}

func TestInsightsToneAndTips(t *testing.T) {
	scorer := newTestScorer(t)

	transcript := "I love this work and I am proud of the excellent results we achieved."
	scores := scorer.Score(nil, transcript, "technology")
	insights := scorer.Insights(scores, transcript, "technology")

	if insights.EmotionalTone != "positive" {
		t.Fatalf("expected positive tone, got %q", insights.EmotionalTone)
	}
	if len(insights.IndustryTips) == 0 || len(insights.IndustryTips) > 3 {
		t.Fatalf("expected 1-3 industry tips, got %v", insights.IndustryTips)
	}
	if insights.SpeakingPace == "" {
		t.Fatalf("expected a speaking pace label")
	}
}

func TestTranscriptConfidenceBounds(t *testing.T) {
	if got := TranscriptConfidence(""); got != 0 {
		t.Fatalf("empty transcript should have zero confidence, got %v", got)
	}
	if got := TranscriptConfidence("hi"); got != 0.3 {
		t.Fatalf("thin transcript should floor at 0.3, got %v", got)
	}
	long := "I have spent several years designing distributed systems and leading engineering teams. " +
		"This includes planning, delivery and operations across multiple products."
	if got := TranscriptConfidence(long); got != 0.9 {
		t.Fatalf("rich transcript should cap at 0.9, got %v", got)
	}
}
