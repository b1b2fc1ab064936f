package bdphone

import "strings"

// countryCode is the E.164 country code for Bangladesh.
const countryCode = "+880"

// mobileNSNLength is the length of a mobile national significant number:
// one leading 1, the two remaining prefix digits, then 8 subscriber digits.
const mobileNSNLength = 10

// Validate classifies phone using the validator's default options.
func (v *Validator) Validate(phone string) Result {
	return v.classify(phone, v.defaults)
}

// ValidateWithOptions classifies phone with explicit category toggles.
func (v *Validator) ValidateWithOptions(phone string, opts ValidationOptions) Result {
	return v.classify(phone, opts)
}

// classify runs the ordered dispatch: special categories first (when
// enabled), then mobile, then landline. Precedence is structural: mobile
// national numbers start with 1 and the registry rejects area codes inside
// the 01 block, so a digit string is never both.
func (v *Validator) classify(raw string, opts ValidationOptions) Result {
	cleaned := cleanInput(raw)
	digits := strings.TrimPrefix(cleaned, "+")
	if digits == "" {
		return v.invalid(CodeEmptyPhone)
	}

	if opts.AllowSpecial {
		for i := range v.registry.specials {
			cat := &v.registry.specials[i]
			if cat.matches(digits) {
				return v.validSpecial(digits, v.registry.specials[i])
			}
		}
	}

	format, nsn, recognized := splitCountry(cleaned)
	if recognized {
		if strings.HasPrefix(nsn, "1") {
			// The 01 block is mobile territory; failures here are terminal
			// and never fall through to landline.
			if opts.AllowMobile {
				return v.classifyMobile(digits, format, nsn)
			}
		} else if opts.AllowLandline {
			if res, ok := v.classifyLandline(digits, format, nsn); ok {
				return res
			}
		}
	}

	if opts.AllowSpecial && v.registry.specialNearMiss(digits) {
		return v.invalid(CodeInvalidSpecialFormat)
	}
	return v.invalidWithHints(CodeInvalidFormat)
}

func (v *Validator) classifyMobile(digits string, format NumberFormat, nsn string) Result {
	if len(nsn) != mobileNSNLength {
		return v.invalid(CodeInvalidMobileFormat)
	}

	prefix := "0" + nsn[:2]
	op, ok := v.registry.OperatorByPrefix(prefix)
	if !ok {
		return v.invalidArgs(CodeUnsupportedOperator, "prefix", prefix)
	}

	return Result{
		Valid:           true,
		Type:            TypeMobile,
		Format:          format,
		NormalizedPhone: countryCode + nsn,
		Operator:        &op,
		Metadata: Metadata{
			Length:               len(digits),
			CountryCode:          countryCode,
			NumberWithoutCountry: nsn,
		},
	}
}

// classifyLandline reports ok=false when the number does not resemble a
// landline at all, letting classify fall through to the generic rejection.
func (v *Validator) classifyLandline(digits string, format NumberFormat, nsn string) (Result, bool) {
	area, found := v.registry.areaForNationalNumber(nsn)
	if !found {
		// Right length for a landline but no registered area: reject
		// explicitly rather than guessing.
		if len(nsn) == 9 {
			return v.invalid(CodeInvalidLandlineFormat), true
		}
		return Result{}, false
	}

	subscriber := nsn[len(area.Code)-1:]
	subscriberLen := 7
	if len(area.Code) == 2 {
		subscriberLen = 8
	}
	if len(subscriber) != subscriberLen || subscriber[0] == '0' {
		return v.invalid(CodeInvalidLandlineFormat), true
	}

	return Result{
		Valid:           true,
		Type:            TypeLandline,
		Format:          format,
		NormalizedPhone: countryCode + nsn,
		Area:            &area,
		Metadata: Metadata{
			Length:               len(digits),
			CountryCode:          countryCode,
			NumberWithoutCountry: nsn,
		},
	}, true
}

// validSpecial builds the result for a matched special service number.
// Short codes have no +880 rendering, so the cleaned digits are canonical
// and the format is reported as unknown.
func (v *Validator) validSpecial(digits string, cat SpecialCategory) Result {
	cat.compiled = nil
	return Result{
		Valid:           true,
		Type:            TypeSpecial,
		Format:          FormatUnknown,
		NormalizedPhone: digits,
		Special:         &cat,
		Category:        cat.Key,
		Metadata: Metadata{
			Length:               len(digits),
			NumberWithoutCountry: digits,
		},
	}
}

func (v *Validator) invalid(code ErrorCode) Result {
	return Result{Valid: false, Err: v.newError(code)}
}

func (v *Validator) invalidArgs(code ErrorCode, args ...string) Result {
	return Result{Valid: false, Err: v.newError(code, args...)}
}

// invalidWithHints attaches registry-derived suggestions and example numbers
// to the generic rejection.
func (v *Validator) invalidWithHints(code ErrorCode) Result {
	err := v.newError(code)
	err.Suggestions = []string{
		"Mobile numbers are 11 digits and start with one of: " + v.registry.mobilePrefixList(),
		"Landline numbers start with an area code such as 02 (Dhaka)",
		"International format uses the +880 country code",
	}
	err.Examples = v.registry.exampleNumbers()
	return Result{Valid: false, Err: err}
}

func (v *Validator) newError(code ErrorCode, args ...string) *ValidationError {
	key := messageKey(code)
	return &ValidationError{
		Code:             code,
		Message:          v.translator.T(v.defaultLang, key, args...),
		LocalizedMessage: v.translator.T(langBengali, key, args...),
	}
}
