package profile

import (
	"regexp"
	"strings"
)

var (
	summaryHeaders    = []string{"summary", "objective", "profile", "about", "overview"}
	sentenceSplit     = regexp.MustCompile(`[.!?]+`)
	contactLinePrefix = []string{"email", "phone", "address"}
)

const (
	summaryWindow    = 500
	summarySentences = 3
	summaryScanLimit = 15
	summaryMinLen    = 30
	summaryMaxLen    = 200
)

// extractSummary finds the candidate's own summary section when one exists,
// else assembles one from the opening sentences. Returns "" when neither
// path yields anything.
func extractSummary(text string) string {
	lowered := strings.ToLower(text)

	var picked []string
	for _, header := range summaryHeaders {
		idx := strings.Index(lowered, header)
		if idx < 0 {
			continue
		}
		end := idx + summaryWindow
		if end > len(text) {
			end = len(text)
		}
		picked = takeNonEmpty(sentenceSplit.Split(text[idx:end], -1), summarySentences)
		break
	}

	if len(picked) == 0 {
		sentences := sentenceSplit.Split(text, -1)
		if len(sentences) > summaryScanLimit {
			sentences = sentences[:summaryScanLimit]
		}
		for _, sentence := range sentences {
			sentence = strings.TrimSpace(sentence)
			if len(sentence) <= summaryMinLen || len(sentence) >= summaryMaxLen {
				continue
			}
			if hasContactPrefix(sentence) {
				continue
			}
			picked = append(picked, sentence)
			if len(picked) == summarySentences {
				break
			}
		}
	}

	if len(picked) == 0 {
		return ""
	}
	return strings.Join(picked, ". ") + "."
}

func takeNonEmpty(sentences []string, n int) []string {
	var out []string
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		out = append(out, sentence)
		if len(out) == n {
			break
		}
	}
	return out
}

func hasContactPrefix(sentence string) bool {
	lowered := strings.ToLower(sentence)
	for _, prefix := range contactLinePrefix {
		if strings.HasPrefix(lowered, prefix) {
			return true
		}
	}
	return false
}
