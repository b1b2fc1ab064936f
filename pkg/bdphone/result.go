package bdphone

// NumberType is the category a valid number belongs to.
type NumberType string

const (
	TypeMobile   NumberType = "mobile"
	TypeLandline NumberType = "landline"
	TypeSpecial  NumberType = "special"
)

// NumberFormat is the input format a number was recognized in.
type NumberFormat string

const (
	FormatInternational NumberFormat = "international" // +880…
	FormatCountryCode   NumberFormat = "country_code"  // 880…
	FormatLocal         NumberFormat = "local"         // 0…
	FormatUnknown       NumberFormat = "unknown"       // short codes and the like
)

// Metadata carries derived facts about a validated number.
type Metadata struct {
	// Length is the digit count of the cleaned input.
	Length int
	// CountryCode is "+880" for geographic numbers, empty for short codes.
	CountryCode string
	// NumberWithoutCountry is the national significant number.
	NumberWithoutCountry string
}

// Result is the outcome of classifying one phone number. Exactly one of the
// two variants applies: Valid carries the type-specific payload, otherwise
// Err describes the rejection. Results are freshly built values; nothing in
// them is shared or mutated after construction.
type Result struct {
	Valid           bool
	Type            NumberType
	Format          NumberFormat
	NormalizedPhone string

	// Type-specific payload. Operator is set for mobile numbers, Area for
	// landlines, Special (and Category, its key) for special numbers.
	Operator *OperatorInfo
	Area     *AreaInfo
	Special  *SpecialCategory
	Category string

	// Use-case flags, set by ValidateForUseCase only.
	SMSCapable bool
	Verifiable bool

	Metadata Metadata

	// Err is nil when Valid is true.
	Err *ValidationError
}
