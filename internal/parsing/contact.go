package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+\d{1,3}[\s.\-]?)?(?:\(\d{2,4}\)|\d{2,4})[\s.\-]?\d{3,4}(?:[\s.\-]?\d{3,4})?`)
	yearRange       = regexp.MustCompile(`^(?:19|20)\d{2}\s*[-–]\s*(?:19|20)\d{2}$`)
	linkedInPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/in/([A-Za-z0-9_\-%]+)`)
	urlPattern      = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(?:[a-z0-9](?:[a-z0-9\-]*[a-z0-9])?\.)+[a-z]{2,}(?:/[^\s,;()<>]*)?`)
)

// bareHostTLDs are the top-level domains accepted for URLs written without a
// scheme or "www." prefix ("janedoe.dev")
var bareHostTLDs = map[string]bool{
	"com": true, "org": true, "net": true, "io": true, "dev": true, "me": true, "co": true,
	"ai": true, "app": true, "info": true, "tech": true, "xyz": true, "site": true,
	"page": true, "blog": true, "design": true, "us": true, "uk": true, "ca": true, "de": true,
}

// ContactExtractor finds email, phone, LinkedIn and personal website anywhere in the text
type ContactExtractor struct {
	vocab *vocabulary.Vocabulary
}

// NewContactExtractor creates a ContactExtractor
func NewContactExtractor(vocab *vocabulary.Vocabulary) *ContactExtractor {
	return &ContactExtractor{vocab: vocab}
}

// Extract scans the full text; contact details usually sit in the header area,
// outside any named section.
func (e *ContactExtractor) Extract(doc *Document) (types.ExtractedContact, error) {
	text := doc.Text
	return types.ExtractedContact{
		Email:           FindEmail(text),
		Phone:           FindPhone(text),
		LinkedInURL:     FindLinkedIn(text),
		PersonalWebsite: e.FindWebsite(text),
	}, nil
}

// FindEmail returns the first email address in text
func FindEmail(text string) string {
	return emailPattern.FindString(text)
}

// FindPhone returns the first phone-like number with 7 to 15 digits.
// Year ranges such as "2019-2020" are skipped.
func FindPhone(text string) string {
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		candidate = strings.TrimSpace(candidate)
		if yearRange.MatchString(candidate) {
			continue
		}
		digits := countDigits(candidate)
		if digits >= 7 && digits <= 15 {
			return candidate
		}
	}
	return ""
}

// FindLinkedIn returns the first LinkedIn profile URL in canonical form
func FindLinkedIn(text string) string {
	m := linkedInPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return "https://www.linkedin.com/in/" + strings.TrimRight(m[1], "/")
}

// FindWebsite returns the first URL that is not an email domain, not on the
// excluded site list and not a dotted technology name such as "Node.js"
func (e *ContactExtractor) FindWebsite(text string) string {
	masked := emailPattern.ReplaceAllStringFunc(text, func(s string) string {
		return strings.Repeat(" ", len(s))
	})

	for _, candidate := range urlPattern.FindAllString(masked, -1) {
		candidate = strings.TrimRight(candidate, ".:/")
		if e.acceptWebsite(candidate) {
			return candidate
		}
	}
	return ""
}

func (e *ContactExtractor) acceptWebsite(candidate string) bool {
	lower := strings.ToLower(candidate)
	explicit := strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "www.")

	host := lower
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "https://")
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	host = strings.TrimPrefix(host, "www.")

	for _, excluded := range e.vocab.ExcludedSiteDomains {
		if host == excluded || strings.HasSuffix(host, "."+excluded) {
			return false
		}
	}

	if explicit {
		return true
	}

	tld := host[strings.LastIndexByte(host, '.')+1:]
	if !bareHostTLDs[tld] {
		return false
	}
	for _, skill := range e.vocab.Skills {
		if strings.Contains(skill, ".") && strings.Contains(lower, strings.ToLower(skill)) {
			return false
		}
	}
	return true
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
