package bdphone

import "strings"

// FormatMode selects a rendering of a valid number.
type FormatMode string

const (
	// ModeInternational renders the canonical +880… form.
	ModeInternational FormatMode = "international"
	// ModeLocal renders the national form with the trunk zero, e.g. 01712345678.
	ModeLocal FormatMode = "local"
	// ModeDisplay renders a human-readable grouped form.
	ModeDisplay FormatMode = "display"
)

// liveInputMax caps how much of a partially typed number is formatted.
const liveInputMax = 15

// Format renders phone in the requested mode. Invalid input is returned
// unchanged: display code must never blow up on a half-typed or garbage
// number.
func (v *Validator) Format(phone string, mode FormatMode) string {
	res := v.classify(phone, v.defaults)
	if !res.Valid {
		return phone
	}

	switch mode {
	case ModeLocal:
		if res.Type == TypeSpecial {
			return res.NormalizedPhone
		}
		return "0" + res.Metadata.NumberWithoutCountry
	case ModeDisplay:
		return v.display(res)
	default:
		return res.NormalizedPhone
	}
}

// display groups mobile numbers 3-3-4 after the country code and landlines
// as area code plus a split subscriber part.
func (v *Validator) display(res Result) string {
	nsn := res.Metadata.NumberWithoutCountry
	switch res.Type {
	case TypeMobile:
		return countryCode + " " + nsn[:3] + " " + nsn[3:6] + " " + nsn[6:]
	case TypeLandline:
		areaDigits := res.Area.Code[1:]
		subscriber := nsn[len(areaDigits):]
		cut := len(subscriber) - 4
		return countryCode + " " + areaDigits + " " + subscriber[:cut] + " " + subscriber[cut:]
	default:
		return res.NormalizedPhone
	}
}

// FormatLiveInput re-renders a partially typed number with separators
// inserted progressively. It is a pure function of the current text: no
// state survives between keystrokes, and input beyond 15 significant
// characters is ignored.
func (v *Validator) FormatLiveInput(partial string) string {
	cleaned := cleanInput(partial)
	if len(cleaned) > liveInputMax {
		cleaned = cleaned[:liveInputMax]
	}

	switch {
	case strings.HasPrefix(cleaned, "+880"):
		return joinNonEmpty("+880", groupDigits(cleaned[4:], 3, 3, 4))
	case strings.HasPrefix(cleaned, "880"):
		return joinNonEmpty("880", groupDigits(cleaned[3:], 3, 3, 4))
	case strings.HasPrefix(cleaned, "01"):
		return joinNonEmpty("", groupDigits(cleaned, 3, 4, 4))
	case strings.HasPrefix(cleaned, "0"):
		// Group by the matched area code length; unrecognized codes get the
		// wider 3-digit grouping until enough digits arrive to tell.
		if area, ok := v.registry.areaForNationalNumber(cleaned[1:]); ok && len(area.Code) == 2 {
			return joinNonEmpty("", groupDigits(cleaned, 2, 4, 4))
		}
		return joinNonEmpty("", groupDigits(cleaned, 3, 4, 4))
	default:
		return cleaned
	}
}

// groupDigits splits s into chunks of the given sizes; whatever remains is
// appended to the final chunk.
func groupDigits(s string, sizes ...int) []string {
	groups := make([]string, 0, len(sizes))
	for i, size := range sizes {
		if s == "" {
			break
		}
		if i == len(sizes)-1 || len(s) <= size {
			groups = append(groups, s)
			return groups
		}
		groups = append(groups, s[:size])
		s = s[size:]
	}
	return groups
}

func joinNonEmpty(head string, groups []string) string {
	parts := make([]string, 0, len(groups)+1)
	if head != "" {
		parts = append(parts, head)
	}
	parts = append(parts, groups...)
	return strings.Join(parts, " ")
}

// Mask hides all but the last four digits, the usual rendering for OTP and
// account-recovery screens.
func Mask(phone string) string {
	digits := strings.TrimPrefix(cleanInput(phone), "+")
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// bengaliZero is the code point for the Bengali digit zero (U+09E6).
const bengaliZero = '০'

// ToBengaliDigits transliterates ASCII digits to Bengali numerals for
// localized display; all other characters pass through unchanged.
func ToBengaliDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return bengaliZero + (r - '0')
		}
		return r
	}, s)
}
