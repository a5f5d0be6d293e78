package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// FormatDate formats an ISO date (YYYY-MM-DD) for display as DD/MM/YYYY.
func FormatDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return "—"
	}
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

// FormatDateRange formats start and end dates as "01/06/2025 – 03/06/2025",
// collapsing to a single date when both are equal.
func FormatDateRange(start, end string) string {
	if strings.TrimSpace(end) == "" || start == end {
		return FormatDate(start)
	}
	return FormatDate(start) + " – " + FormatDate(end)
}

// FormatCoordinate formats an optional coordinate.
func FormatCoordinate(v *float64) string {
	if v == nil {
		return "—"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// ParseDateInput parses flexible user input and normalizes to ISO (YYYY-MM-DD).
// Empty input is allowed and returns "".
func ParseDateInput(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", nil
	}

	layouts := []string{
		isoDate,
		"02/01/2006",
		"2/1/2006",
		"02-01-2006",
		"02.01.2006",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(isoDate), nil
		}
	}

	return "", fmt.Errorf("invalid date format")
}

// ParseDecimal parses a decimal number accepting a comma as the decimal
// separator ("-24,5" is -24.5).
func ParseDecimal(input string) (float64, error) {
	s := strings.Replace(strings.TrimSpace(input), ",", ".", 1)
	return strconv.ParseFloat(s, 64)
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
