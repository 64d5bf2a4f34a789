package profile

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	nanpPhone       = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	loosePhone      = regexp.MustCompile(`(?:\+?[0-9]{1,3}[-.\s]?)?(?:\(?[0-9]{2,4}\)?[-.\s]?)?[0-9]{3,4}[-.\s]?[0-9]{3,4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
)

// Name candidate patterns for the line-scan fallback: First Last,
// First M. Last, First Middle Last.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b([A-Z][a-z]{1,20}\s+[A-Z][a-z]{1,20})\b`),
	regexp.MustCompile(`\b([A-Z][a-z]{1,20}\s+[A-Z]\.\s+[A-Z][a-z]{1,20})\b`),
	regexp.MustCompile(`\b([A-Z][a-z]{1,20}\s+[A-Z][a-z]{1,20}\s+[A-Z][a-z]{1,20})\b`),
}

var (
	namePrefixes = []string{"mr.", "mrs.", "ms.", "dr.", "prof.", "professor", "sir", "madam"}
	nameSuffixes = []string{"jr.", "sr.", "ii", "iii", "iv", "phd", "md", "cpa", "esq."}

	nameCharset = regexp.MustCompile(`^[A-Za-z\s.\-']+$`)

	// Lines matching any of these are headers, labels or titles, not names.
	nonNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(resume|cv|curriculum|vitae)\b`),
		regexp.MustCompile(`\b(email|phone|tel|fax|address|website)\b`),
		regexp.MustCompile(`\b(contact|information|details)\b`),
		regexp.MustCompile(`\b(objective|summary|profile|about)\b`),
		regexp.MustCompile(`\b(experience|education|skills|projects)\b`),
		regexp.MustCompile(`\b(manager|engineer|developer|analyst|director)\b`),
		regexp.MustCompile(`\b(company|corporation|inc|ltd|llc)\b`),
		regexp.MustCompile(`\d+`),
	}
)

func extractContactInfo(text string) ContactInfo {
	info := ContactInfo{}

	if email := emailPattern.FindString(text); email != "" {
		info.Email = email
	}
	info.Phone = extractPhone(text)
	info.Name = extractName(text)
	if link := linkedinPattern.FindString(text); link != "" {
		info.LinkedIn = "https://" + strings.ToLower(link)
	}

	return info
}

// extractPhone tries the NANP shape first and reformats it; otherwise keeps
// the first loose international match as written.
func extractPhone(text string) string {
	if match := nanpPhone.FindStringSubmatch(text); match != nil {
		return fmt.Sprintf("(%s) %s-%s", match[1], match[2], match[3])
	}
	return strings.TrimSpace(loosePhone.FindString(text))
}

// extractName looks for a person name near the top of the document. Names
// mentioned further down (references, managers) are deliberately ignored.
func extractName(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return ""
	}

	for _, line := range firstN(lines, 3) {
		cleaned := cleanNameLine(line)
		if isLikelyName(cleaned) {
			return cleaned
		}
	}

	for _, line := range firstN(lines, 10) {
		for _, pattern := range namePatterns {
			for _, match := range pattern.FindAllStringSubmatch(line, -1) {
				if isLikelyName(match[1]) {
					return match[1]
				}
			}
		}
	}
	return ""
}

func cleanNameLine(line string) string {
	cleaned := strings.TrimSpace(line)
	lowered := strings.ToLower(cleaned)

	for _, prefix := range namePrefixes {
		if strings.HasPrefix(lowered, prefix+" ") {
			cleaned = strings.TrimSpace(cleaned[len(prefix):])
			break
		}
	}
	lowered = strings.ToLower(cleaned)
	for _, suffix := range nameSuffixes {
		if strings.HasSuffix(lowered, " "+suffix) {
			cleaned = strings.TrimSpace(cleaned[:len(cleaned)-len(suffix)])
			break
		}
	}
	return strings.Join(strings.Fields(cleaned), " ")
}

func isLikelyName(candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	if len(candidate) < 2 {
		return false
	}
	if !nameCharset.MatchString(candidate) {
		return false
	}

	parts := strings.Fields(candidate)
	if len(parts) < 1 || len(parts) > 5 {
		return false
	}
	if len(parts) == 1 && len(parts[0]) < 3 {
		return false
	}
	for _, part := range parts {
		if len(part) > 25 {
			return false
		}
	}

	lowered := strings.ToLower(candidate)
	for _, pattern := range nonNamePatterns {
		if pattern.MatchString(lowered) {
			return false
		}
	}
	return true
}

func firstN(lines []string, n int) []string {
	if len(lines) < n {
		return lines
	}
	return lines[:n]
}
