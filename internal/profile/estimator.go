package profile

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Seniority signal lexicons. Presence counts, not occurrence counts: a term
// appearing five times still contributes one hit.
var (
	seniorSignals = []string{
		"senior", "lead", "principal", "director", "manager", "head of",
		"chief", "10+ years", "15+ years", "20+ years", "over 10 years",
		"decade", "expert", "architect", "executive",
	}
	midSignals = []string{
		"5+ years", "experienced", "proficient", "advanced", "specialist",
		"6 years", "7 years", "8 years", "9 years", "several years",
	}
	juniorSignals = []string{
		"junior", "entry", "associate", "assistant", "coordinator",
		"1-2 years", "2-3 years", "recent graduate", "new graduate",
	}
)

var yearIndicatorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\b`),
	regexp.MustCompile(`(one|two|three|four|five|six|seven|eight|nine|ten)\s*years?\s*(?:of\s*)?experience`),
}

var (
	closedRangePattern  = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4})`)
	openEndRangePattern = regexp.MustCompile(`(\d{4})\s*[-–]\s*(?:present|current|now)`)
)

var wordYears = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// Estimator derives total experience years and a seniority tier from raw
// text.
type Estimator struct {
	now func() time.Time
}

// EstimatorOption customizes an Estimator.
type EstimatorOption func(*Estimator)

// WithClock overrides the reference time for open-ended date ranges.
func WithClock(now func() time.Time) EstimatorOption {
	return func(e *Estimator) { e.now = now }
}

// NewEstimator builds an Estimator using the wall clock by default.
func NewEstimator(opts ...EstimatorOption) *Estimator {
	e := &Estimator{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Years returns total experience years: the maximum of stated-years phrases
// ("12 years of experience") and the summed span of employment date ranges.
// Text with no signal yields zero.
func (e *Estimator) Years(text string) int {
	lowered := strings.ToLower(text)

	var candidates []int
	for _, pattern := range yearIndicatorPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lowered, -1) {
			if n, err := strconv.Atoi(match[1]); err == nil {
				candidates = append(candidates, n)
			} else if n, ok := wordYears[match[1]]; ok {
				candidates = append(candidates, n)
			}
		}
	}

	if span := e.employmentSpanYears(lowered); span > 0 {
		candidates = append(candidates, span)
	}

	best := 0
	for _, n := range candidates {
		if n > best {
			best = n
		}
	}
	return best
}

// employmentSpanYears sums the length of every date range in the text.
// Open-ended ranges run to the current year.
func (e *Estimator) employmentSpanYears(lowered string) int {
	currentYear := e.now().Year()
	total := 0

	consumed := map[string]bool{}
	for _, match := range closedRangePattern.FindAllStringSubmatch(lowered, -1) {
		start, _ := strconv.Atoi(match[1])
		end, _ := strconv.Atoi(match[2])
		if start > 0 && end >= start {
			total += end - start
			consumed[match[0]] = true
		}
	}
	for _, match := range openEndRangePattern.FindAllStringSubmatch(lowered, -1) {
		if consumed[match[0]] {
			continue
		}
		start, _ := strconv.Atoi(match[1])
		if start > 0 && start <= currentYear {
			total += currentYear - start
		}
	}
	return total
}

// Level classifies seniority. The checks run in a fixed order; reordering
// them changes outcomes on real inputs, so keep it.
func (e *Estimator) Level(text string) string {
	if strings.TrimSpace(text) == "" {
		return LevelMid
	}
	lowered := strings.ToLower(text)

	seniorCount := countPresent(lowered, seniorSignals)
	midCount := countPresent(lowered, midSignals)
	juniorCount := countPresent(lowered, juniorSignals)
	years := e.Years(text)

	switch {
	case seniorCount >= 2 || years >= 10:
		return LevelSenior
	case midCount >= 1 || years >= 5:
		return LevelMid
	case juniorCount >= 1 || years <= 2:
		return LevelJunior
	default:
		return LevelMid
	}
}

func countPresent(lowered string, signals []string) int {
	count := 0
	for _, signal := range signals {
		if strings.Contains(lowered, signal) {
			count++
		}
	}
	return count
}
