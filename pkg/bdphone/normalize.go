package bdphone

// Normalize collapses any accepted rendering of a number into the canonical
// form: "+880" followed by the national significant number with no
// separators. Returns false when the input is not a valid number.
//
// Normalization is idempotent: feeding a canonical form back in yields the
// same string, and every rendering of the same physical number (local,
// country-code, international) collapses to byte-identical output.
func (v *Validator) Normalize(phone string) (string, bool) {
	res := v.classify(phone, v.defaults)
	if !res.Valid {
		return "", false
	}
	return res.NormalizedPhone, true
}
