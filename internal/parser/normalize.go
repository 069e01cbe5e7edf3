package parser

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// dayNames follows the source system's Monday-start numbering: 2=Monday
// through 7=Saturday, 8=Sunday.
var dayNames = map[string]string{
	"2": "Monday",
	"3": "Tuesday",
	"4": "Wednesday",
	"5": "Thursday",
	"6": "Friday",
	"7": "Saturday",
	"8": "Sunday",
}

// ConvertDayCode maps a single-digit day code to a weekday name. Unknown
// codes pass through unchanged: the source system occasionally emits
// already-named days.
func ConvertDayCode(s string) string {
	if name, ok := dayNames[strings.TrimSpace(s)]; ok {
		return name
	}
	return s
}

// ParseTimeRange splits an "hhmm-hhmm" cell into start and end times. A side
// of exactly 4 digits gets a colon inserted ("0900" → "09:00"); anything else
// is returned unchanged. Missing separator or empty input yields two empty
// strings — callers treat empty as unspecified, not invalid.
func ParseTimeRange(s string) (start, end string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return formatClock(parts[0]), formatClock(parts[1])
}

// formatClock inserts the colon only when the value is exactly 4 digits.
func formatClock(s string) string {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return s
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return s
		}
	}
	return s[:2] + ":" + s[2:]
}

// ParseWeekList expands a comma-separated list of week numbers and inclusive
// "start-end" ranges into a sorted, de-duplicated slice. Best effort:
// malformed components are skipped, never failing the whole parse. Total
// failure returns an empty slice and is logged for the caller to surface.
func ParseWeekList(s string) []int {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}
	}

	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := splitRange(part); ok {
			for w := lo; w <= hi; w++ {
				seen[w] = true
			}
			continue
		}
		if w, err := strconv.Atoi(part); err == nil {
			seen[w] = true
		}
	}

	weeks := make([]int, 0, len(seen))
	for w := range seen {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	if len(weeks) == 0 {
		logrus.WithField("value", s).Debug("week list produced no values")
	}
	return weeks
}

// splitRange parses "start-end" with start <= end.
func splitRange(part string) (lo, hi int, ok bool) {
	dash := strings.Index(part, "-")
	if dash <= 0 || dash == len(part)-1 {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(strings.TrimSpace(part[:dash]))
	if err != nil {
		return 0, 0, false
	}
	hi, err = strconv.Atoi(strings.TrimSpace(part[dash+1:]))
	if err != nil || hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}

// parseInt converts lenient numeric text (thousand separators allowed) to an
// int, degrading to zero.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	i, _ := strconv.Atoi(s)
	return i
}
