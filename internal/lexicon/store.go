package lexicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrValidation marks input-contract failures on mutation calls.
	ErrValidation = errors.New("lexicon: invalid input")
	// ErrPersist marks a failed lexicon write. In-memory state is already
	// updated when it is returned; callers should surface it as a warning.
	ErrPersist = errors.New("lexicon: persist failed")
)

// Store owns the categorized word lists backing industry detection, entity
// extraction and matching. Reads return copies of the last-committed state;
// mutations are serialized and persisted atomically.
type Store struct {
	mu             sync.RWMutex
	dir            string
	skills         SkillsDB
	jobTitles      ListDB
	industries     ListDB
	certifications ListDB
	education      KeywordGroups
	warnings       []string
}

// NewStore loads every dataset from dir, substituting compiled-in defaults
// for files that are absent, malformed or unreadable. Loading never fails;
// degraded datasets are recorded as warnings.
func NewStore(dir string) *Store {
	s := &Store{dir: dir}

	if err := loadJSON(dir, skillsFile, &s.skills); err != nil {
		s.noteLoadFailure(skillsFile, err)
		s.skills = defaultSkills()
		s.persist(skillsFile, s.skills)
	}
	if err := loadJSON(dir, jobTitlesFile, &s.jobTitles); err != nil {
		s.noteLoadFailure(jobTitlesFile, err)
		s.jobTitles = defaultJobTitles()
		s.persist(jobTitlesFile, s.jobTitles)
	}
	if err := loadJSON(dir, industriesFile, &s.industries); err != nil {
		s.noteLoadFailure(industriesFile, err)
		s.industries = defaultIndustries()
		s.persist(industriesFile, s.industries)
	}
	if err := loadJSON(dir, certificationsFile, &s.certifications); err != nil {
		s.noteLoadFailure(certificationsFile, err)
		s.certifications = defaultCertifications()
		s.persist(certificationsFile, s.certifications)
	}
	if err := loadJSON(dir, educationFile, &s.education); err != nil {
		s.noteLoadFailure(educationFile, err)
		s.education = defaultEducationKeywords()
		s.persist(educationFile, s.education)
	}

	if s.skills == nil {
		s.skills = fallbackSkills()
	}
	if s.jobTitles == nil {
		s.jobTitles = fallbackJobTitles()
	}
	if s.industries == nil {
		s.industries = fallbackIndustries()
	}
	if s.certifications == nil {
		s.certifications = fallbackCertifications()
	}
	if s.education == nil {
		s.education = fallbackEducationKeywords()
	}

	return s
}

func (s *Store) noteLoadFailure(name string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		s.warnings = append(s.warnings, fmt.Sprintf("%s missing, using defaults", name))
		return
	}
	s.warnings = append(s.warnings, fmt.Sprintf("%s unusable (%v), using defaults", name, err))
}

// persist is best-effort during load; failures become warnings.
func (s *Store) persist(name string, data any) {
	if err := saveJSON(s.dir, name, data); err != nil {
		s.warnings = append(s.warnings, fmt.Sprintf("seed %s: %v", name, err))
	}
}

// Warnings returns the degradation warnings recorded so far.
func (s *Store) Warnings() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.warnings...)
}

// IndustryOrder returns the deterministic industry iteration order used for
// classification tie-breaking: the sorted union of skill and keyword
// industries. Sorted order is reproducible but otherwise arbitrary.
func (s *Store) IndustryOrder() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool, len(s.skills)+len(s.industries))
	for industry := range s.industries {
		seen[industry] = true
	}
	for industry := range s.skills {
		seen[industry] = true
	}
	out := make([]string, 0, len(seen))
	for industry := range seen {
		out = append(out, industry)
	}
	sort.Strings(out)
	return out
}

// IndustryKeywords returns the keyword list for one industry.
func (s *Store) IndustryKeywords(industry string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.industries[normalizeKey(industry)]...)
}

// AllSkills returns the deduplicated union of skills across all industries
// and categories.
func (s *Store) AllSkills() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, categories := range s.skills {
		for _, skills := range categories {
			for _, skill := range skills {
				if !seen[skill] {
					seen[skill] = true
					out = append(out, skill)
				}
			}
		}
	}
	sort.Strings(out)
	return out
}

// SkillsByIndustry returns all skills of one industry across categories.
func (s *Store) SkillsByIndustry(industry string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories, ok := s.skills[normalizeKey(industry)]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(categories))
	for category := range categories {
		names = append(names, category)
	}
	sort.Strings(names)

	var out []string
	for _, category := range names {
		out = append(out, categories[category]...)
	}
	return out
}

// SkillCategory resolves the lexicon category for a skill, preferring the
// given industry, then any industry. Unknown skills map to "other".
func (s *Store) SkillCategory(skill, industry string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := normalizeKey(skill)
	if categories, ok := s.skills[normalizeKey(industry)]; ok {
		if category := findCategory(categories, needle); category != "" {
			return category
		}
	}
	for _, name := range sortedKeys(s.skills) {
		if category := findCategory(s.skills[name], needle); category != "" {
			return category
		}
	}
	return "other"
}

// SkillCategories returns the category -> skills mapping for one industry.
func (s *Store) SkillCategories(industry string) map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories, ok := s.skills[normalizeKey(industry)]
	if !ok {
		return nil
	}
	out := make(map[string][]string, len(categories))
	for category, skills := range categories {
		out[category] = append([]string(nil), skills...)
	}
	return out
}

// AllJobTitles returns the deduplicated union of job titles.
func (s *Store) AllJobTitles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, name := range sortedKeys(s.jobTitles) {
		for _, title := range s.jobTitles[name] {
			if !seen[title] {
				seen[title] = true
				out = append(out, title)
			}
		}
	}
	return out
}

// JobTitlesByIndustry returns the job titles for one industry, industry
// titles first.
func (s *Store) JobTitlesByIndustry(industry string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.jobTitles[normalizeKey(industry)]...)
}

// AllCertifications returns the deduplicated union of certifications.
func (s *Store) AllCertifications() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, name := range sortedKeys(s.certifications) {
		for _, cert := range s.certifications[name] {
			if !seen[cert] {
				seen[cert] = true
				out = append(out, cert)
			}
		}
	}
	return out
}

// EducationGroup returns one education keyword group (degree_types,
// institutions, fields, honors, gpa_indicators).
func (s *Store) EducationGroup(group string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.education[group]...)
}

// AddSkills merges normalized skills into industry/category and persists the
// dataset. Adding existing skills is a no-op; a failed write returns
// ErrPersist with memory state already updated.
func (s *Store) AddSkills(industry, category string, items []string) error {
	industry = normalizeKey(industry)
	category = normalizeKey(category)
	if industry == "" {
		return fmt.Errorf("%w: industry is required", ErrValidation)
	}
	if category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.skills[industry] == nil {
		s.skills[industry] = map[string][]string{}
	}
	s.skills[industry][category] = mergeItems(s.skills[industry][category], items)

	if err := saveJSON(s.dir, skillsFile, s.skills); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// AddJobTitles merges normalized titles into an industry and persists.
func (s *Store) AddJobTitles(industry string, items []string) error {
	industry = normalizeKey(industry)
	if industry == "" {
		return fmt.Errorf("%w: industry is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobTitles[industry] = mergeItems(s.jobTitles[industry], items)
	if err := saveJSON(s.dir, jobTitlesFile, s.jobTitles); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// AddCertifications merges normalized certifications into an industry and
// persists.
func (s *Store) AddCertifications(industry string, items []string) error {
	industry = normalizeKey(industry)
	if industry == "" {
		return fmt.Errorf("%w: industry is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.certifications[industry] = mergeItems(s.certifications[industry], items)
	if err := saveJSON(s.dir, certificationsFile, s.certifications); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// Export writes the full dataset file set under dir.
func (s *Store) Export(dir string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	datasets := []struct {
		name string
		data any
	}{
		{skillsFile, s.skills},
		{jobTitlesFile, s.jobTitles},
		{industriesFile, s.industries},
		{certificationsFile, s.certifications},
		{educationFile, s.education},
	}
	for _, dataset := range datasets {
		if err := saveJSON(dir, dataset.name, dataset.data); err != nil {
			return err
		}
	}
	return nil
}

// Import merges dataset files from dir into the store. Each file's top-level
// shape is validated; malformed individual entries are skipped rather than
// aborting the import. It returns the number of datasets imported and
// persists the merged state.
func (s *Store) Import(dir string) (int, error) {
	if _, err := os.Stat(dir); err != nil {
		return 0, fmt.Errorf("import dir: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	imported := 0
	if raw, ok := readRaw(dir, skillsFile); ok {
		if merged := mergeSkillsRaw(s.skills, raw); merged {
			imported++
		}
	}
	if raw, ok := readRaw(dir, jobTitlesFile); ok {
		if mergeListRaw(s.jobTitles, raw) {
			imported++
		}
	}
	if raw, ok := readRaw(dir, industriesFile); ok {
		if mergeListRaw(s.industries, raw) {
			imported++
		}
	}
	if raw, ok := readRaw(dir, certificationsFile); ok {
		if mergeListRaw(s.certifications, raw) {
			imported++
		}
	}
	if raw, ok := readRaw(dir, educationFile); ok {
		if mergeGroupsRaw(s.education, raw) {
			imported++
		}
	}

	if imported > 0 {
		s.persist(skillsFile, s.skills)
		s.persist(jobTitlesFile, s.jobTitles)
		s.persist(industriesFile, s.industries)
		s.persist(certificationsFile, s.certifications)
		s.persist(educationFile, s.education)
	}
	return imported, nil
}

// Stats reports dataset sizes for the admin surface.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Skills: DatasetStats{
			IndustryCount: len(s.skills),
			EntryCount:    countSkills(s.skills),
			Industries:    sortedKeys(s.skills),
		},
		JobTitles: DatasetStats{
			IndustryCount: len(s.jobTitles),
			EntryCount:    countList(s.jobTitles),
			Industries:    sortedKeys(s.jobTitles),
		},
		Certifications: DatasetStats{
			IndustryCount: len(s.certifications),
			EntryCount:    countList(s.certifications),
			Industries:    sortedKeys(s.certifications),
		},
		Industries: DatasetStats{
			IndustryCount: len(s.industries),
			EntryCount:    countList(s.industries),
			Industries:    sortedKeys(s.industries),
		},
	}
}

func normalizeKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// mergeItems lowercase-trims items and appends the ones not already present.
func mergeItems(existing []string, items []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, item := range existing {
		seen[normalizeKey(item)] = true
	}
	out := existing
	for _, item := range items {
		normalized := normalizeKey(item)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}

func findCategory(categories map[string][]string, needle string) string {
	for _, category := range sortedKeysList(categories) {
		for _, skill := range categories[category] {
			if normalizeKey(skill) == needle {
				return category
			}
		}
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysList(m map[string][]string) []string {
	return sortedKeys(m)
}

func countSkills(db SkillsDB) int {
	total := 0
	for _, categories := range db {
		for _, skills := range categories {
			total += len(skills)
		}
	}
	return total
}

func countList(db ListDB) int {
	total := 0
	for _, items := range db {
		total += len(items)
	}
	return total
}

// readRaw loads a dataset file as loosely-typed JSON. Only a top-level
// object qualifies; anything else fails the dataset.
func readRaw(dir, name string) (map[string]json.RawMessage, bool) {
	var raw map[string]json.RawMessage
	if err := loadJSON(dir, name, &raw); err != nil {
		return nil, false
	}
	return raw, true
}

func mergeSkillsRaw(dst SkillsDB, raw map[string]json.RawMessage) bool {
	for industry, payload := range raw {
		var categories map[string][]string
		if err := json.Unmarshal(payload, &categories); err != nil {
			continue // skip malformed industry entry
		}
		key := normalizeKey(industry)
		if key == "" {
			continue
		}
		if dst[key] == nil {
			dst[key] = map[string][]string{}
		}
		for category, skills := range categories {
			catKey := normalizeKey(category)
			if catKey == "" {
				continue
			}
			dst[key][catKey] = mergeItems(dst[key][catKey], skills)
		}
	}
	return true
}

func mergeListRaw(dst ListDB, raw map[string]json.RawMessage) bool {
	for industry, payload := range raw {
		var items []string
		if err := json.Unmarshal(payload, &items); err != nil {
			continue
		}
		key := normalizeKey(industry)
		if key == "" {
			continue
		}
		dst[key] = mergeItems(dst[key], items)
	}
	return true
}

func mergeGroupsRaw(dst KeywordGroups, raw map[string]json.RawMessage) bool {
	for group, payload := range raw {
		var items []string
		if err := json.Unmarshal(payload, &items); err != nil {
			continue
		}
		key := normalizeKey(group)
		if key == "" {
			continue
		}
		dst[key] = mergeItems(dst[key], items)
	}
	return true
}
