package dataset

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
	yearPattern   = regexp.MustCompile(`\d{4}`)
)

// ParseList converts a raw cell into a list of strings. The Steam dumps mix
// two encodings: Python-style literals ("['Action', 'Indie']") and plain
// separated values ("Action,Indie" or "Action;Indie" or "Action|Indie").
func ParseList(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return nil
		}
		return splitLiteralList(inner)
	}

	for _, sep := range []string{",", ";", "|"} {
		if strings.Contains(s, sep) {
			var out []string
			for _, part := range strings.Split(s, sep) {
				if item := strings.TrimSpace(part); item != "" {
					out = append(out, item)
				}
			}
			return out
		}
	}

	return []string{s}
}

// splitLiteralList splits the inside of a Python-style list literal on commas,
// leaving commas inside quoted elements alone.
func splitLiteralList(inner string) []string {
	var out []string
	var buf strings.Builder
	var quote rune

	flush := func() {
		item := strings.TrimSpace(buf.String())
		item = strings.Trim(item, `'"`)
		if item != "" {
			out = append(out, item)
		}
		buf.Reset()
	}

	for _, r := range inner {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			buf.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			buf.WriteRune(r)
		case r == ',':
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	flush()
	return out
}

// ParseOwners parses an estimated-owners range like "0 - 20,000" into its
// bounds and midpoint. A single value yields min == max == mid.
func ParseOwners(raw string) (min, max int64, mid float64, ok bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, 0, 0, false
	}

	parts := strings.SplitN(s, "-", 2)
	a, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, 0, false
	}
	b := a
	if len(parts) == 2 {
		b, err = strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return 0, 0, 0, false
		}
	}
	return a, b, float64(a+b) / 2, true
}

// CoerceUserScore normalizes the many user-score encodings seen in the wild
// onto a 0-10 scale:
//
//	"7.8/10" -> 7.8
//	"76%"    -> 7.6
//	"7,8"    -> 7.8 (decimal comma)
//	"0.78"   -> 7.8 (assumed 0-1)
//	"78"     -> 7.8 (assumed 0-100)
//
// Values that end up outside [0, 10] return nil.
func CoerceUserScore(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", ".")

	match := numberPattern.FindString(s)
	if match == "" {
		return nil
	}
	val, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}

	if !strings.Contains(s, "/10") {
		switch {
		case val >= 0 && val <= 1:
			val *= 10
		case val > 10 && val <= 100:
			val /= 10
		}
	}

	if val < 0 || val > 10 {
		return nil
	}
	return &val
}

// ExtractYear pulls a plausible four-digit year out of a free-form string.
func ExtractYear(raw string) (int, bool) {
	match := yearPattern.FindString(raw)
	if match == "" {
		return 0, false
	}
	y, err := strconv.Atoi(match)
	if err != nil || y < 1970 || y > 2100 {
		return 0, false
	}
	return y, true
}

// ParseFlag normalizes the boolean spellings found in the dumps. Anything
// unrecognized is false.
func ParseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "y", "t":
		return true
	default:
		return false
	}
}

// parseFloatCell leniently coerces a numeric cell, returning nil on failure.
func parseFloatCell(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseIntCell leniently coerces an integer cell, returning 0 on failure.
func parseIntCell(raw string) int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	// Some dumps write integer columns as floats ("120.0").
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}
