package comms

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Insights accompanies the numeric scores with human-readable guidance.
type Insights struct {
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	SpeakingPace        string   `json:"speakingPace"`
	EmotionalTone       string   `json:"emotionalTone"`
	IndustryTips        []string `json:"industrySpecificTips"`
}

var industryTips = map[string][]string{
	"technology": {
		"Use precise technical terminology",
		"Explain complex concepts clearly",
		"Demonstrate problem-solving approach",
	},
	"finance": {
		"Show attention to detail in numbers",
		"Use data to support arguments",
		"Demonstrate risk awareness",
	},
	"healthcare": {
		"Show empathy and compassion",
		"Use clear, patient-friendly language",
		"Demonstrate attention to compliance",
	},
	"sales": {
		"Show enthusiasm and energy",
		"Use persuasive language",
		"Demonstrate relationship-building skills",
	},
	"marketing": {
		"Show creativity in expression",
		"Use storytelling techniques",
		"Demonstrate brand awareness",
	},
}

// Insights builds strengths, improvement areas, pace, tone and up to three
// industry tips for a scored transcript.
func (s *Scorer) Insights(scores Scores, transcript, industry string) Insights {
	stats, _ := s.analyzeTranscript(transcript, industry)

	var strengths []string
	if scores.Clarity >= 80 {
		strengths = append(strengths, "Excellent speech clarity and articulation")
	}
	if scores.Confidence >= 80 {
		strengths = append(strengths, "Confident and professional communication style")
	}
	if scores.Vocabulary >= 80 {
		strengths = append(strengths, "Strong vocabulary and language skills")
	}
	if scores.IndustryKnowledge >= 70 {
		strengths = append(strengths, fmt.Sprintf("Good knowledge of %s terminology", industry))
	}

	var improvements []string
	if scores.Clarity < 60 {
		improvements = append(improvements, "Work on speech clarity and projection")
	}
	if scores.Confidence < 60 {
		improvements = append(improvements, "Build confidence in communication")
	}
	if scores.Fluency < 60 {
		improvements = append(improvements, "Reduce filler words and improve speech flow")
	}
	if scores.Vocabulary < 60 {
		improvements = append(improvements, "Expand professional vocabulary")
	}
	if scores.IndustryKnowledge < 50 {
		improvements = append(improvements, fmt.Sprintf("Learn more %s-specific terminology", industry))
	}

	pace := "normal"
	if stats.avgSentenceLength > 25 {
		pace = "slow"
	} else if stats.avgSentenceLength > 0 && stats.avgSentenceLength < 8 {
		pace = "fast"
	}

	tone := "neutral"
	if stats.sentimentPolarity > 0.3 {
		tone = "positive"
	} else if stats.sentimentPolarity < -0.3 {
		tone = "negative"
	}

	tips := append([]string(nil), industryTips[industry]...)
	if scores.IndustryKnowledge < 70 {
		tips = append(tips, fmt.Sprintf("Study more %s-specific terminology and concepts", industry))
	}
	if len(tips) > 3 {
		tips = tips[:3]
	}

	return Insights{
		Strengths:           strengths,
		AreasForImprovement: improvements,
		SpeakingPace:        pace,
		EmotionalTone:       tone,
		IndustryTips:        tips,
	}
}

var punctuationPattern = regexp.MustCompile(`[.!?]`)

// TranscriptConfidence estimates how trustworthy a transcript is from its
// own text quality. Non-empty transcripts land in [0.3, 0.9].
func TranscriptConfidence(transcript string) float64 {
	words := strings.Fields(transcript)
	if len(words) == 0 {
		return 0
	}

	totalLen := 0
	for _, word := range words {
		totalLen += len(word)
	}
	avgWordLength := float64(totalLen) / float64(len(words))

	coherence := 0.0
	if len(words) > 10 {
		coherence += 0.2
	}
	if avgWordLength > 3 {
		coherence += 0.2
	}
	if punctuationPattern.MatchString(transcript) {
		coherence += 0.2
	}

	confidence := math.Min(0.9, float64(len(words))*0.01+avgWordLength*0.1+coherence)
	return math.Max(0.3, confidence)
}
