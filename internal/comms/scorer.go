package comms

import (
	"math"
	"regexp"
	"strings"

	"talentmatch-backend/internal/lexicon"
)

// Scoring constants. The magic numbers are heuristic calibration values; the
// load-bearing contract is the [minSubScore, maxSubScore] clamp on every
// sub-score and the defaultSubScore for missing inputs.
const (
	minSubScore     = 30
	maxSubScore     = 100
	defaultSubScore = 70

	energyScale      = 2000.0
	pitchTargetHz    = 150.0
	pitchPenaltyRate = 2.0

	targetSentenceLength = 15.0
	sentenceLengthRate   = 3.0

	clarityWeight    = 0.3
	confidenceWeight = 0.3
	fluencyWeight    = 0.2
	vocabularyWeight = 0.2
)

// SpeechFeatures is the numeric feature bag supplied by an external
// audio-analysis collaborator. A nil bag means no audio was analyzed.
type SpeechFeatures struct {
	Duration         float64 `json:"duration"`
	SpeakingRate     float64 `json:"speakingRate"`
	PitchMean        float64 `json:"pitchMean"`
	EnergyMean       float64 `json:"energyMean"`
	SpectralCentroid float64 `json:"spectralCentroid"`
	ZeroCrossingRate float64 `json:"zeroCrossingRate"`
}

// Scores holds the four communication sub-scores and their blend.
type Scores struct {
	Clarity           int `json:"clarityScore"`
	Confidence        int `json:"confidenceScore"`
	Fluency           int `json:"fluencyScore"`
	Vocabulary        int `json:"vocabularyScore"`
	Overall           int `json:"overallCommunicationScore"`
	IndustryKnowledge int `json:"industryKnowledgeScore"`
}

// transcriptStats carries the intermediate transcript-derived signals.
type transcriptStats struct {
	wordCount           int
	sentenceCount       int
	avgSentenceLength   float64
	sentimentPolarity   float64
	professionalRatio   float64
	industryTermUsage   float64
	vocabularyDiversity float64
	avgWordLength       float64
	complexWordsRatio   float64
	fillerWordsRatio    float64
	sentenceVariety     float64
}

var professionalWords = []string{
	"experience", "achieved", "managed", "developed", "led", "improved",
	"created", "implemented", "successful", "responsibility", "team",
	"project", "solution", "strategy", "collaborate", "deliver",
}

var fillerWords = map[string]bool{
	"um": true, "uh": true, "like": true, "actually": true,
	"basically": true, "literally": true,
}

// Small polarity lexicon standing in for a sentiment model. Output stays in
// [-1, 1].
var (
	positiveWords = map[string]bool{
		"great": true, "good": true, "excellent": true, "strong": true,
		"successful": true, "passionate": true, "enjoy": true, "love": true,
		"proud": true, "improved": true, "achieved": true, "confident": true,
		"excited": true, "effective": true, "best": true,
	}
	negativeWords = map[string]bool{
		"bad": true, "poor": true, "difficult": true, "failed": true,
		"problem": true, "struggle": true, "hate": true, "worst": true,
		"weak": true, "unfortunately": true, "never": true, "cannot": true,
	}
)

var sentenceEndPattern = regexp.MustCompile(`[.!?]`)

// Scorer derives communication-quality scores from speech features and a
// transcript, using the lexicon for industry terminology.
type Scorer struct {
	store *lexicon.Store
}

// NewScorer builds a Scorer over the given lexicon store.
func NewScorer(store *lexicon.Store) *Scorer {
	return &Scorer{store: store}
}

// Score computes all sub-scores. Missing inputs (nil features, empty
// transcript) fall back to defaultSubScore rather than zero.
func (s *Scorer) Score(features *SpeechFeatures, transcript, industry string) Scores {
	stats, hasTranscript := s.analyzeTranscript(transcript, industry)

	scores := Scores{
		Clarity:    clarityScore(features),
		Confidence: confidenceScore(stats, hasTranscript),
		Fluency:    fluencyScore(stats, hasTranscript),
		Vocabulary: vocabularyScore(stats, hasTranscript),
	}
	scores.Overall = int(math.Round(
		float64(scores.Clarity)*clarityWeight +
			float64(scores.Confidence)*confidenceWeight +
			float64(scores.Fluency)*fluencyWeight +
			float64(scores.Vocabulary)*vocabularyWeight))

	if hasTranscript {
		scores.IndustryKnowledge = int(math.Min(100, stats.industryTermUsage*300))
	} else {
		scores.IndustryKnowledge = 50
	}
	return scores
}

func clarityScore(features *SpeechFeatures) int {
	if features == nil {
		return defaultSubScore
	}
	energyTerm := math.Min(100, features.EnergyMean*energyScale)
	pitchTerm := math.Min(100, 100-math.Abs(features.PitchMean-pitchTargetHz)*pitchPenaltyRate)
	return clampSubScore((energyTerm + pitchTerm) / 2)
}

func confidenceScore(stats transcriptStats, hasTranscript bool) int {
	if !hasTranscript {
		return defaultSubScore
	}
	sentimentTerm := (stats.sentimentPolarity + 1) * 50
	professionalTerm := stats.professionalRatio * 100
	industryTerm := stats.industryTermUsage * 100
	return clampSubScore(sentimentTerm*0.4 + professionalTerm*0.4 + industryTerm*0.2)
}

func fluencyScore(stats transcriptStats, hasTranscript bool) int {
	if !hasTranscript {
		return defaultSubScore
	}
	lengthTerm := math.Max(0, 100-math.Abs(stats.avgSentenceLength-targetSentenceLength)*sentenceLengthRate)
	fillerPenalty := stats.fillerWordsRatio * 100
	return clampSubScore(lengthTerm - fillerPenalty)
}

func vocabularyScore(stats transcriptStats, hasTranscript bool) int {
	if !hasTranscript {
		return defaultSubScore
	}
	diversityTerm := stats.vocabularyDiversity * 100
	complexityTerm := stats.complexWordsRatio * 100
	varietyTerm := stats.sentenceVariety * 100
	return clampSubScore(diversityTerm*0.4 + complexityTerm*0.4 + varietyTerm*0.2)
}

func clampSubScore(score float64) int {
	return int(math.Max(minSubScore, math.Min(maxSubScore, score)))
}

// analyzeTranscript computes the transcript-derived signals in one pass.
func (s *Scorer) analyzeTranscript(transcript, industry string) (transcriptStats, bool) {
	if strings.TrimSpace(transcript) == "" {
		return transcriptStats{}, false
	}

	lowered := strings.ToLower(transcript)
	words := strings.Fields(transcript)
	sentences := nonEmptySentences(transcript)

	stats := transcriptStats{
		wordCount:     len(words),
		sentenceCount: len(sentences),
	}
	stats.avgSentenceLength = float64(len(words)) / math.Max(1, float64(len(sentences)))

	unique := map[string]bool{}
	totalLen := 0
	complexCount := 0
	fillerCount := 0
	positives, negatives := 0, 0
	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, `.,!?;:"()[]`))
		unique[cleaned] = true
		totalLen += len(word)
		if len(word) > 6 {
			complexCount++
		}
		if fillerWords[cleaned] {
			fillerCount++
		}
		if positiveWords[cleaned] {
			positives++
		}
		if negativeWords[cleaned] {
			negatives++
		}
	}
	wordDenominator := math.Max(1, float64(len(words)))
	stats.vocabularyDiversity = float64(len(unique)) / wordDenominator
	stats.avgWordLength = float64(totalLen) / wordDenominator
	stats.complexWordsRatio = float64(complexCount) / wordDenominator
	stats.fillerWordsRatio = float64(fillerCount) / wordDenominator
	if positives+negatives > 0 {
		stats.sentimentPolarity = float64(positives-negatives) / float64(positives+negatives)
	}

	professionalCount := 0
	for _, word := range professionalWords {
		if strings.Contains(lowered, word) {
			professionalCount++
		}
	}
	stats.professionalRatio = float64(professionalCount) / wordDenominator

	industryTerms := 0
	for _, skill := range s.store.SkillsByIndustry(industry) {
		if strings.Contains(lowered, skill) {
			industryTerms++
		}
	}
	stats.industryTermUsage = float64(industryTerms) / wordDenominator

	lengths := map[int]bool{}
	for _, sentence := range sentences {
		lengths[len(strings.Fields(sentence))] = true
	}
	stats.sentenceVariety = float64(len(lengths)) / math.Max(1, float64(len(sentences)))

	return stats, true
}

func nonEmptySentences(transcript string) []string {
	var out []string
	for _, sentence := range sentenceEndPattern.Split(transcript, -1) {
		if strings.TrimSpace(sentence) != "" {
			out = append(out, sentence)
		}
	}
	return out
}
