package bdphone

import "strings"

// cleanInput strips everything except digits and a single leading plus sign.
// Separators, parentheses and stray characters are dropped, so inputs like
// "+880 (17) 12-345678" and "01712345678" clean to comparable forms.
func cleanInput(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitCountry detects the input format and strips it down to the national
// significant number. Only the three accepted renderings (+880…, 880…, 0…)
// qualify; anything else is not a geographic number candidate.
func splitCountry(cleaned string) (NumberFormat, string, bool) {
	switch {
	case strings.HasPrefix(cleaned, "+880"):
		return FormatInternational, cleaned[len("+880"):], true
	case strings.HasPrefix(cleaned, "880"):
		return FormatCountryCode, cleaned[len("880"):], true
	case strings.HasPrefix(cleaned, "0"):
		return FormatLocal, cleaned[len("0"):], true
	}
	return FormatUnknown, "", false
}
