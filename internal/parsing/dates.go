package parsing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	minYear = 1950
	maxYear = 2030
)

var months = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

const dateToken = `(?:\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\b\d{1,2}[/\-]\d{4})`

var (
	// dateRangePattern matches "MM/YYYY", "MM-YYYY" or "Month YYYY" ranges separated
	// by a dash, en-dash, em-dash or "to"; the end may be present/current/now
	dateRangePattern = regexp.MustCompile(`(?i)(` + dateToken + `)\s*(?:-|–|—|to)\s*(` + dateToken + `|present|current|now)`)
	numericDate      = regexp.MustCompile(`^(\d{1,2})[/\-](\d{4})$`)
	namedDate        = regexp.MustCompile(`(?i)^([a-z]{3})[a-z]*\.?\s+(\d{4})$`)
	yearPattern      = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
)

// DateRange is a parsed employment period. End is nil when the role is ongoing.
type DateRange struct {
	Start *string
	End   *string
	// Text is the matched source text, used to strip the range from header lines
	Text string
}

// FindDateRange returns the first date range in text. A range whose end is
// neither a valid date nor present/current/now is rejected, so that an
// unreadable end never turns into an ongoing role.
func FindDateRange(text string) (DateRange, bool) {
	m := dateRangePattern.FindStringSubmatch(text)
	if m == nil {
		return DateRange{}, false
	}

	start, ok := NormalizeDate(m[1])
	if !ok {
		return DateRange{}, false
	}
	r := DateRange{Start: &start, Text: m[0]}

	switch strings.ToLower(m[2]) {
	case "present", "current", "now":
	default:
		end, ok := NormalizeDate(m[2])
		if !ok {
			return DateRange{}, false
		}
		r.End = &end
	}
	return r, true
}

// NormalizeDate converts "MM/YYYY", "MM-YYYY" or "Month YYYY" to "YYYY-MM"
func NormalizeDate(token string) (string, bool) {
	token = strings.TrimSpace(token)

	if m := numericDate.FindStringSubmatch(token); m != nil {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		return formatYearMonth(year, month)
	}
	if m := namedDate.FindStringSubmatch(token); m != nil {
		month, ok := months[strings.ToLower(m[1])]
		if !ok {
			return "", false
		}
		year, _ := strconv.Atoi(m[2])
		return formatYearMonth(year, month)
	}
	return "", false
}

func formatYearMonth(year, month int) (string, bool) {
	if month < 1 || month > 12 || year < minYear || year > maxYear {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d", year, month), true
}

// LatestYear returns the largest four-digit year in [1950, 2030] found in text.
// When a block lists both enrollment and graduation years, the latest one is
// taken as the graduation year; this is a heuristic, not a guarantee.
func LatestYear(text string) (int, bool) {
	best := 0
	for _, m := range yearPattern.FindAllStringSubmatch(text, -1) {
		year, err := strconv.Atoi(m[1])
		if err != nil || year < minYear || year > maxYear {
			continue
		}
		if year > best {
			best = year
		}
	}
	return best, best != 0
}
