// Package dateutils provides the date parsing and formatting helpers used
// throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// LayoutHarvest is the DD/MM/YYYY layout harvest dates are recorded in.
const LayoutHarvest = "02/01/2006"

// harvestDatePattern enforces the literal shape: exactly two digits, slash,
// two digits, slash, four digits. time.Parse alone is too lenient here.
var harvestDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// ParseHarvestDate parses a strict DD/MM/YYYY date string. The string must
// match the pattern and name a real calendar date (31/02/2024 is rejected,
// 29/02/2024 is accepted).
func ParseHarvestDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !harvestDatePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("date '%s' does not match DD/MM/YYYY", s)
	}
	t, err := time.Parse(LayoutHarvest, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date '%s' is not a real calendar date: %w", s, err)
	}
	return t, nil
}

// IsValidHarvestDate reports whether s is a well-formed DD/MM/YYYY date.
func IsValidHarvestDate(s string) bool {
	_, err := ParseHarvestDate(s)
	return err == nil
}

// Today returns the current date in DD/MM/YYYY form.
func Today() string {
	return time.Now().Format(LayoutHarvest)
}

// Timestamp formats t the way report headers display generation times.
func Timestamp(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

// FileStamp formats t for embedding in generated file names.
func FileStamp(t time.Time) string {
	return t.Format("20060102_150405")
}
