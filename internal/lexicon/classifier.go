package lexicon

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
)

// GeneralIndustry is returned when no industry scores above zero.
const GeneralIndustry = "general"

const defaultCacheSize = 256

// Classifier detects the dominant industry of a text by counting lexicon
// hits: industry keywords weigh 1.0, industry skills weigh 0.5. Results are
// memoized per text hash in a bounded cache.
type Classifier struct {
	store    *Store
	order    []string
	capacity int

	mu    sync.Mutex
	cache map[string]string
	queue []string
}

// ClassifierOption customizes a Classifier.
type ClassifierOption func(*Classifier)

// WithIndustryOrder overrides the tie-break iteration order. Industries not
// listed keep their default sorted position after the listed ones.
func WithIndustryOrder(order []string) ClassifierOption {
	return func(c *Classifier) {
		c.order = append([]string(nil), order...)
	}
}

// WithCacheSize bounds the memoization cache. Zero disables caching.
func WithCacheSize(n int) ClassifierOption {
	return func(c *Classifier) {
		c.capacity = n
	}
}

// NewClassifier builds a Classifier over the given store.
func NewClassifier(store *Store, opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		store:    store,
		capacity: defaultCacheSize,
		cache:    map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the highest-scoring industry for text, or
// GeneralIndustry when nothing matches. Equal scores resolve to the industry
// that comes first in the classifier's iteration order, so repeated calls
// with the same lexicon state always agree.
func (c *Classifier) Classify(text string) string {
	if strings.TrimSpace(text) == "" {
		return GeneralIndustry
	}

	key := textHash(text)
	if cached, ok := c.lookup(key); ok {
		return cached
	}

	best := GeneralIndustry
	bestScore := 0.0
	for _, industry := range c.iterationOrder() {
		score := c.scoreIndustry(strings.ToLower(text), industry)
		if score > bestScore {
			best = industry
			bestScore = score
		}
	}

	c.remember(key, best)
	return best
}

// Scores returns every industry with a non-zero score for text. Useful for
// explaining a classification; not cached.
func (c *Classifier) Scores(text string) map[string]float64 {
	out := map[string]float64{}
	if strings.TrimSpace(text) == "" {
		return out
	}
	lowered := strings.ToLower(text)
	for _, industry := range c.iterationOrder() {
		if score := c.scoreIndustry(lowered, industry); score > 0 {
			out[industry] = score
		}
	}
	return out
}

func (c *Classifier) scoreIndustry(lowered, industry string) float64 {
	score := 0.0
	for _, keyword := range c.store.IndustryKeywords(industry) {
		if strings.Contains(lowered, keyword) {
			score += 1.0
		}
	}
	for _, skill := range c.store.SkillsByIndustry(industry) {
		if strings.Contains(lowered, skill) {
			score += 0.5
		}
	}
	return score
}

func (c *Classifier) iterationOrder() []string {
	base := c.store.IndustryOrder()
	if len(c.order) == 0 {
		return base
	}

	seen := make(map[string]bool, len(c.order))
	out := make([]string, 0, len(base))
	for _, industry := range c.order {
		seen[industry] = true
		out = append(out, industry)
	}
	for _, industry := range base {
		if !seen[industry] {
			out = append(out, industry)
		}
	}
	return out
}

func (c *Classifier) lookup(key string) (string, bool) {
	if c.capacity <= 0 {
		return "", false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	industry, ok := c.cache[key]
	return industry, ok
}

// remember inserts with FIFO eviction once the cache is full.
func (c *Classifier) remember(key, industry string) {
	if c.capacity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.cache[key]; ok {
		return
	}
	if len(c.queue) >= c.capacity {
		oldest := c.queue[0]
		c.queue = c.queue[1:]
		delete(c.cache, oldest)
	}
	c.cache[key] = industry
	c.queue = append(c.queue, key)
}

// InvalidateCache drops memoized results, e.g. after lexicon mutations.
func (c *Classifier) InvalidateCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = map[string]string{}
	c.queue = nil
}

func textHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
