package profile

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"talentmatch-backend/internal/lexicon"
)

var (
	gpaPattern  = regexp.MustCompile(`gpa:?\s*(\d+\.?\d*)`)
	yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{4}\b`),
		regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\b`),
		regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\b`),
		regexp.MustCompile(`\d{1,2}/\d{4}`),
		regexp.MustCompile(`\d{1,2}-\d{4}`),
	}

	quantifiedPattern = regexp.MustCompile(`\d+%|\$\d+|\d+x|by \d+`)
)

var achievementKeywords = []string{
	"achieved", "accomplished", "awarded", "recognized", "improved",
	"increased", "decreased", "reduced", "led", "managed", "developed",
	"created", "implemented", "successful", "exceeded", "delivered",
	"launched", "built", "designed",
}

var generalCertKeywords = []string{
	"certified", "certification", "certificate", "license", "licensed",
}

var languageKeywords = []string{
	"english", "spanish", "french", "german", "chinese", "mandarin",
	"japanese", "italian", "portuguese", "russian", "arabic", "hindi",
	"korean", "dutch", "swedish", "norwegian", "finnish", "polish",
	"czech", "hungarian",
}

const (
	maxExperienceEntries = 5
	maxEducationEntries  = 3
	maxCertEntries       = 5
	maxJobTitles         = 5
	maxAchievements      = 8
)

// Extractor turns raw candidate text into a CandidateProfile using the
// lexicon datasets for detection.
type Extractor struct {
	store      *lexicon.Store
	classifier *lexicon.Classifier
	estimator  *Estimator
}

// NewExtractor wires an Extractor over its lexicon collaborators.
func NewExtractor(store *lexicon.Store, classifier *lexicon.Classifier, estimator *Estimator) *Extractor {
	return &Extractor{store: store, classifier: classifier, estimator: estimator}
}

// Analyze builds the full profile for one text snapshot. An empty
// targetIndustry means "detect it".
func (e *Extractor) Analyze(text, targetIndustry string) CandidateProfile {
	industry := lower(targetIndustry)
	if industry == "" {
		industry = e.classifier.Classify(text)
	}

	return CandidateProfile{
		DetectedIndustry:     industry,
		ContactInfo:          extractContactInfo(text),
		Skills:               e.extractSkills(text, industry),
		Experience:           e.extractExperience(text),
		Education:            e.extractEducation(text),
		Certifications:       e.extractCertifications(text),
		Languages:            extractLanguages(text),
		ProfessionalSummary:  extractSummary(text),
		ExperienceLevel:      e.estimator.Level(text),
		TotalExperienceYears: e.estimator.Years(text),
		JobTitles:            e.extractJobTitles(text),
		Achievements:         extractAchievements(text),
		SoftSkills:           e.extractSoftSkills(text),
	}
}

// extractSkills substring-tests every known skill against the text and
// groups hits by lexicon category, industry lookup first. Display forms are
// title-cased; duplicates within a category collapse.
func (e *Extractor) extractSkills(text, industry string) map[string][]string {
	lowered := strings.ToLower(text)

	candidates := map[string]bool{}
	for _, skill := range e.store.SkillsByIndustry(industry) {
		candidates[skill] = true
	}
	for _, skill := range e.store.AllSkills() {
		candidates[skill] = true
	}

	found := map[string]map[string]bool{}
	for skill := range candidates {
		if !strings.Contains(lowered, skill) {
			continue
		}
		category := e.store.SkillCategory(skill, industry)
		if found[category] == nil {
			found[category] = map[string]bool{}
		}
		found[category][titleCase(skill)] = true
	}

	out := make(map[string][]string, len(found))
	for category, skills := range found {
		list := make([]string, 0, len(skills))
		for skill := range skills {
			list = append(list, skill)
		}
		sort.Strings(list)
		out[category] = list
	}
	return out
}

// extractExperience reconstructs job stints from a line scan. A line holding
// a known job title opens an entry; following lines fill in company,
// duration and bullet responsibilities until the next title line.
func (e *Extractor) extractExperience(text string) []ExperienceEntry {
	titles := e.store.AllJobTitles()

	var entries []ExperienceEntry
	var current *ExperienceEntry
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if len(line) < 5 {
			continue
		}
		lowered := strings.ToLower(line)

		switch {
		case containsAny(lowered, titles):
			if current != nil {
				entries = append(entries, *current)
			}
			current = &ExperienceEntry{Title: line}
		case isBulletLine(line):
			if current != nil {
				current.Responsibilities = append(current.Responsibilities, strings.TrimLeft(line, "•-* "))
			}
		case containsDatePattern(line):
			if current != nil {
				current.Duration = line
			}
		case current != nil && current.Company == "" && current.Duration == "" && len(line) < 60:
			current.Company = line
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}

	if len(entries) > maxExperienceEntries {
		entries = entries[:maxExperienceEntries]
	}
	return entries
}

func (e *Extractor) extractEducation(text string) []EducationEntry {
	degrees := e.store.EducationGroup("degree_types")
	fields := e.store.EducationGroup("fields")

	var entries []EducationEntry
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lowered := strings.ToLower(line)
		if !matchesEducationKeyword(lowered, degrees) && !matchesEducationKeyword(lowered, fields) {
			continue
		}

		entry := EducationEntry{Degree: line}
		if match := gpaPattern.FindStringSubmatch(lowered); match != nil {
			entry.GPA = match[1]
		}
		entry.Year = yearPattern.FindString(line)
		entries = append(entries, entry)

		if len(entries) == maxEducationEntries {
			break
		}
	}
	return entries
}

func (e *Extractor) extractCertifications(text string) []Certification {
	keywords := append(e.store.AllCertifications(), generalCertKeywords...)

	var certs []Certification
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lowered := strings.ToLower(line)
		if !containsAny(lowered, keywords) {
			continue
		}

		cert := Certification{Name: line}
		cert.Year = yearPattern.FindString(line)
		if strings.Contains(lowered, "expires") || strings.Contains(lowered, "expiry") {
			cert.HasExpiry = true
		}
		certs = append(certs, cert)

		if len(certs) == maxCertEntries {
			break
		}
	}
	return certs
}

// extractJobTitles returns the titles mentioned in the text, ordered by
// first appearance, capped at maxJobTitles.
func (e *Extractor) extractJobTitles(text string) []string {
	lowered := strings.ToLower(text)

	type hit struct {
		title string
		index int
	}
	var hits []hit
	for _, title := range e.store.AllJobTitles() {
		if idx := strings.Index(lowered, title); idx >= 0 {
			hits = append(hits, hit{title: titleCase(title), index: idx})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].index != hits[j].index {
			return hits[i].index < hits[j].index
		}
		return hits[i].title < hits[j].title
	})

	seen := map[string]bool{}
	var out []string
	for _, h := range hits {
		if seen[h.title] {
			continue
		}
		seen[h.title] = true
		out = append(out, h.title)
		if len(out) == maxJobTitles {
			break
		}
	}
	return out
}

func (e *Extractor) extractSoftSkills(text string) []string {
	lowered := strings.ToLower(text)

	seen := map[string]bool{}
	var out []string
	for _, skills := range e.store.SkillCategories("soft_skills") {
		for _, skill := range skills {
			display := titleCase(skill)
			if strings.Contains(lowered, skill) && !seen[display] {
				seen[display] = true
				out = append(out, display)
			}
		}
	}
	sort.Strings(out)
	return out
}

// extractAchievements collects bullet lines carrying an accomplishment verb
// plus any line pairing such a verb with a quantified metric.
func extractAchievements(text string) []string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lowered := strings.ToLower(line)
		hasKeyword := containsAny(lowered, achievementKeywords)

		if isBulletLine(line) && hasKeyword {
			out = append(out, strings.TrimLeft(line, "•-* "))
		} else if hasKeyword && quantifiedPattern.MatchString(line) {
			out = append(out, line)
		}
		if len(out) == maxAchievements {
			break
		}
	}
	return out
}

// extractLanguages finds language mentions and infers a proficiency level
// from the surrounding 100 characters.
func extractLanguages(text string) []string {
	lowered := strings.ToLower(text)

	var out []string
	for _, lang := range languageKeywords {
		idx := strings.Index(lowered, lang)
		if idx < 0 {
			continue
		}

		start := idx - 50
		if start < 0 {
			start = 0
		}
		end := idx + 50
		if end > len(lowered) {
			end = len(lowered)
		}
		window := lowered[start:end]

		proficiency := "conversational"
		switch {
		case containsAny(window, []string{"native", "fluent", "advanced"}):
			proficiency = "advanced"
		case containsAny(window, []string{"intermediate", "conversational"}):
			proficiency = "intermediate"
		case containsAny(window, []string{"basic", "beginner"}):
			proficiency = "basic"
		}
		out = append(out, titleCase(lang)+" ("+proficiency+")")
	}
	return out
}

func containsAny(lowered string, needles []string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(lowered, needle) {
			return true
		}
	}
	return false
}

// matchesEducationKeyword substring-matches long keywords but requires word
// boundaries for short abbreviations like "ba" or "ms", which otherwise hit
// inside ordinary words ("summary", "teams").
func matchesEducationKeyword(lowered string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if len(keyword) > 4 {
			if strings.Contains(lowered, keyword) {
				return true
			}
			continue
		}
		if containsWord(lowered, keyword) {
			return true
		}
	}
	return false
}

func containsWord(lowered, word string) bool {
	for from := 0; ; {
		idx := strings.Index(lowered[from:], word)
		if idx < 0 {
			return false
		}
		idx += from
		end := idx + len(word)
		beforeOK := idx == 0 || !isWordByte(lowered[idx-1])
		afterOK := end >= len(lowered) || !isWordByte(lowered[end])
		if beforeOK && afterOK {
			return true
		}
		from = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func containsDatePattern(line string) bool {
	for _, pattern := range datePatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*")
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
