package bdphone

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// OperatorInfo describes one mobile operator prefix. Several prefixes may
// belong to the same operator.
type OperatorInfo struct {
	// Prefix is the 3-digit national mobile prefix, e.g. "017".
	Prefix             string
	Name               string
	LocalizedName      string
	NetworkGenerations []string
	BrandColor         string
	LogoRef            string
}

// AreaInfo describes one landline area code.
type AreaInfo struct {
	// Code is the 2- or 3-digit area code with its trunk zero, e.g. "02".
	Code            string
	Area            string
	LocalizedArea   string
	Region          string
	LocalizedRegion string
}

// SpecialCategory groups non-geographic special service numbers that share a
// pattern set, such as emergency short codes.
type SpecialCategory struct {
	// Key identifies the category ("emergency", "toll_free", "premium",
	// "corporate") and doubles as the message-catalog key for descriptions.
	Key                  string
	Description          string
	LocalizedDescription string
	// Patterns are anchored regular expressions over cleaned digits.
	Patterns []string
	// Prefixes mark digit sequences that signal an attempt at this category,
	// used to report INVALID_SPECIAL_FORMAT instead of the generic rejection.
	// Exact-code categories such as emergency leave this empty.
	Prefixes []string
	Examples []string

	compiled []*regexp.Regexp
}

func (c *SpecialCategory) matches(digits string) bool {
	for _, re := range c.compiled {
		if re.MatchString(digits) {
			return true
		}
	}
	return false
}

// Registry is the immutable pattern registry: operator prefixes, landline
// area codes and special-number categories. Construct it once with
// NewRegistry (or use DefaultRegistry) and share it freely; it is never
// mutated after construction.
type Registry struct {
	operators []OperatorInfo
	areas     []AreaInfo
	specials  []SpecialCategory

	operatorByPrefix map[string]int
}

var (
	prefixRegex   = regexp.MustCompile(`^01\d$`)
	areaCodeRegex = regexp.MustCompile(`^0\d{1,2}$`)
)

// NewRegistry builds a registry from the given tables, validating that every
// code is well formed and that mobile prefixes and area codes stay disjoint.
// The input slices are copied; callers cannot mutate the registry afterwards.
func NewRegistry(operators []OperatorInfo, areas []AreaInfo, specials []SpecialCategory) (*Registry, error) {
	if len(operators) == 0 {
		return nil, ErrNoOperators
	}

	r := &Registry{
		operators:        make([]OperatorInfo, len(operators)),
		areas:            make([]AreaInfo, len(areas)),
		specials:         make([]SpecialCategory, len(specials)),
		operatorByPrefix: make(map[string]int, len(operators)),
	}
	copy(r.operators, operators)
	copy(r.areas, areas)
	copy(r.specials, specials)

	for i, op := range r.operators {
		if !prefixRegex.MatchString(op.Prefix) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, op.Prefix)
		}
		if _, exists := r.operatorByPrefix[op.Prefix]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, op.Prefix)
		}
		r.operatorByPrefix[op.Prefix] = i
	}

	seen := make(map[string]bool, len(r.areas))
	for _, area := range r.areas {
		if !areaCodeRegex.MatchString(area.Code) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAreaCode, area.Code)
		}
		if seen[area.Code] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, area.Code)
		}
		seen[area.Code] = true
		// The 01 block belongs to mobile prefixes; an area code inside it
		// would break the mobile-before-landline precedence.
		if strings.HasPrefix(area.Code, "01") {
			return nil, fmt.Errorf("%w: %q", ErrCodeOverlap, area.Code)
		}
	}

	// A shorter area code that prefixes a longer one would make national
	// number parsing ambiguous, so reject such tables outright.
	for _, a := range r.areas {
		for _, b := range r.areas {
			if a.Code != b.Code && strings.HasPrefix(b.Code, a.Code) {
				return nil, fmt.Errorf("%w: %q shadows %q", ErrShadowedArea, a.Code, b.Code)
			}
		}
	}

	for i := range r.specials {
		cat := &r.specials[i]
		cat.compiled = make([]*regexp.Regexp, 0, len(cat.Patterns))
		for _, pattern := range cat.Patterns {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %q: %v", ErrInvalidPattern, cat.Key, pattern, err)
			}
			cat.compiled = append(cat.compiled, re)
		}
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on invalid tables. Intended
// for static registry data known at compile time.
func MustNewRegistry(operators []OperatorInfo, areas []AreaInfo, specials []SpecialCategory) *Registry {
	r, err := NewRegistry(operators, areas, specials)
	if err != nil {
		panic(err)
	}
	return r
}

// Operators returns a copy of the operator table ordered by prefix as
// registered. Useful for building UI pickers.
func (r *Registry) Operators() []OperatorInfo {
	out := make([]OperatorInfo, len(r.operators))
	copy(out, r.operators)
	return out
}

// Areas returns a copy of the landline area table.
func (r *Registry) Areas() []AreaInfo {
	out := make([]AreaInfo, len(r.areas))
	copy(out, r.areas)
	return out
}

// SpecialCategories returns a copy of the special-number categories.
func (r *Registry) SpecialCategories() []SpecialCategory {
	out := make([]SpecialCategory, len(r.specials))
	copy(out, r.specials)
	return out
}

// OperatorByPrefix looks up the operator owning a 3-digit mobile prefix.
func (r *Registry) OperatorByPrefix(prefix string) (OperatorInfo, bool) {
	idx, ok := r.operatorByPrefix[prefix]
	if !ok {
		return OperatorInfo{}, false
	}
	return r.operators[idx], true
}

// areaForNationalNumber matches the area whose code (without the trunk zero)
// prefixes the national significant number. Codes are prefix-free by
// construction, so at most one area can match.
func (r *Registry) areaForNationalNumber(nsn string) (AreaInfo, bool) {
	for _, area := range r.areas {
		if strings.HasPrefix(nsn, area.Code[1:]) {
			return area, true
		}
	}
	return AreaInfo{}, false
}

// specialNearMiss reports whether the digits start like one of the special
// categories without matching any of its patterns.
func (r *Registry) specialNearMiss(digits string) bool {
	for _, cat := range r.specials {
		for _, prefix := range cat.Prefixes {
			if strings.HasPrefix(digits, prefix) {
				return true
			}
		}
	}
	return false
}

// exampleNumbers returns representative valid numbers for error responses.
func (r *Registry) exampleNumbers() []string {
	examples := make([]string, 0, 3)
	if len(r.operators) > 0 {
		local := r.operators[0].Prefix + "12345678"
		examples = append(examples, local, "+880"+local[1:])
	}
	for _, area := range r.areas {
		sub := "12345678"
		if len(area.Code) == 3 {
			sub = "1234567"
		}
		examples = append(examples, area.Code+sub)
		break
	}
	return examples
}

// mobilePrefixList renders the registered prefixes for suggestion text.
func (r *Registry) mobilePrefixList() string {
	prefixes := make([]string, len(r.operators))
	for i, op := range r.operators {
		prefixes[i] = op.Prefix
	}
	return strings.Join(prefixes, ", ")
}

// defaultRegistry holds the Bangladesh numbering plan tables. Operator and
// area data is static national numbering information; descriptions for the
// special categories are resolved from the embedded bilingual catalog.
var defaultRegistry = sync.OnceValue(func() *Registry {
	tr := messageCatalog()
	describe := func(cat SpecialCategory) SpecialCategory {
		key := "special." + cat.Key
		cat.Description = tr.T("en", key)
		cat.LocalizedDescription = tr.T("bn", key)
		return cat
	}

	return MustNewRegistry(
		[]OperatorInfo{
			{Prefix: "013", Name: "Teletalk", LocalizedName: "টেলিটক", NetworkGenerations: []string{"2G", "3G", "4G", "5G"}, BrandColor: "#00A651", LogoRef: "logos/teletalk.svg"},
			{Prefix: "014", Name: "Banglalink", LocalizedName: "বাংলালিংক", NetworkGenerations: []string{"2G", "3G", "4G"}, BrandColor: "#F26522", LogoRef: "logos/banglalink.svg"},
			{Prefix: "015", Name: "Teletalk", LocalizedName: "টেলিটক", NetworkGenerations: []string{"2G", "3G", "4G", "5G"}, BrandColor: "#00A651", LogoRef: "logos/teletalk.svg"},
			{Prefix: "016", Name: "Airtel", LocalizedName: "এয়ারটেল", NetworkGenerations: []string{"2G", "3G", "4G"}, BrandColor: "#ED1C24", LogoRef: "logos/airtel.svg"},
			{Prefix: "017", Name: "Grameenphone", LocalizedName: "গ্রামীণফোন", NetworkGenerations: []string{"2G", "3G", "4G", "5G"}, BrandColor: "#0C6CF2", LogoRef: "logos/grameenphone.svg"},
			{Prefix: "018", Name: "Robi", LocalizedName: "রবি", NetworkGenerations: []string{"2G", "3G", "4G"}, BrandColor: "#E60000", LogoRef: "logos/robi.svg"},
			{Prefix: "019", Name: "Banglalink", LocalizedName: "বাংলালিংক", NetworkGenerations: []string{"2G", "3G", "4G"}, BrandColor: "#F26522", LogoRef: "logos/banglalink.svg"},
		},
		[]AreaInfo{
			{Code: "02", Area: "Dhaka", LocalizedArea: "ঢাকা", Region: "Dhaka Division", LocalizedRegion: "ঢাকা বিভাগ"},
			{Code: "031", Area: "Chittagong", LocalizedArea: "চট্টগ্রাম", Region: "Chittagong Division", LocalizedRegion: "চট্টগ্রাম বিভাগ"},
			{Code: "041", Area: "Khulna", LocalizedArea: "খুলনা", Region: "Khulna Division", LocalizedRegion: "খুলনা বিভাগ"},
			{Code: "051", Area: "Bogra", LocalizedArea: "বগুড়া", Region: "Rajshahi Division", LocalizedRegion: "রাজশাহী বিভাগ"},
			{Code: "061", Area: "Barisal", LocalizedArea: "বরিশাল", Region: "Barisal Division", LocalizedRegion: "বরিশাল বিভাগ"},
			{Code: "071", Area: "Jessore", LocalizedArea: "যশোর", Region: "Khulna Division", LocalizedRegion: "খুলনা বিভাগ"},
			{Code: "081", Area: "Comilla", LocalizedArea: "কুমিল্লা", Region: "Chittagong Division", LocalizedRegion: "চট্টগ্রাম বিভাগ"},
			{Code: "091", Area: "Mymensingh", LocalizedArea: "ময়মনসিংহ", Region: "Mymensingh Division", LocalizedRegion: "ময়মনসিংহ বিভাগ"},
		},
		[]SpecialCategory{
			describe(SpecialCategory{
				Key:      "emergency",
				Patterns: []string{`^999$`, `^333$`, `^109$`, `^106$`},
				Examples: []string{"999", "333"},
			}),
			describe(SpecialCategory{
				Key:      "toll_free",
				Patterns: []string{`^0800\d{7}$`},
				Prefixes: []string{"0800"},
				Examples: []string{"08001234567"},
			}),
			describe(SpecialCategory{
				Key:      "premium",
				Patterns: []string{`^0900\d{7}$`},
				Prefixes: []string{"0900"},
				Examples: []string{"09001234567"},
			}),
			describe(SpecialCategory{
				Key:      "corporate",
				Patterns: []string{`^096\d{8}$`},
				Prefixes: []string{"096"},
				Examples: []string{"09666777888", "09611123456"},
			}),
		},
	)
})

// DefaultRegistry returns the shared Bangladesh numbering plan registry.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}
