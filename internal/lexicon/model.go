package lexicon

// SkillsDB maps industry -> category -> skill entries.
type SkillsDB map[string]map[string][]string

// ListDB maps industry -> entries; used for job titles, certifications and
// industry keywords.
type ListDB map[string][]string

// KeywordGroups maps a group name (degree_types, institutions, fields, ...)
// to its entries. Education keywords are flat, not per-industry.
type KeywordGroups map[string][]string

// Stats summarizes the datasets currently held by a Store.
type Stats struct {
	Skills         DatasetStats `json:"skills"`
	JobTitles      DatasetStats `json:"jobTitles"`
	Certifications DatasetStats `json:"certifications"`
	Industries     DatasetStats `json:"industries"`
}

// DatasetStats describes one dataset.
type DatasetStats struct {
	IndustryCount int      `json:"industryCount"`
	EntryCount    int      `json:"entryCount"`
	Industries    []string `json:"industries"`
}
