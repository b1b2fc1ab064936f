package bdphone

// ValidationOptions selects which number categories the classifier accepts.
// The zero value rejects everything; use DefaultValidationOptions for the
// standard mobile+landline policy.
type ValidationOptions struct {
	AllowLandline bool
	AllowMobile   bool
	AllowSpecial  bool
}

// DefaultValidationOptions accepts mobile and landline numbers and rejects
// special service numbers.
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{
		AllowLandline: true,
		AllowMobile:   true,
		AllowSpecial:  false,
	}
}
