package i18n

import "golang.org/x/text/language"

// Match negotiates the best supported language for the caller's ordered
// preferences using BCP 47 matching, so "bn-BD" resolves to a loaded "bn"
// catalog. Returns fallback when nothing matches with any confidence.
func Match(preferred, supported []string, fallback string) string {
	if len(preferred) == 0 || len(supported) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	wanted := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		if tag, err := language.Parse(p); err == nil {
			wanted = append(wanted, tag)
		}
	}
	if len(wanted) == 0 {
		return fallback
	}

	matcher := language.NewMatcher(tags)
	_, idx, conf := matcher.Match(wanted...)
	if conf == language.No {
		return fallback
	}
	return names[idx]
}
