// Package bdphone validates, classifies, normalizes and formats Bangladeshi
// phone numbers.
//
// The engine decides whether a string is a valid number for the Bangladesh
// numbering plan, tells mobile numbers, landlines and special service
// numbers apart, identifies the owning operator or area, and collapses every
// accepted rendering into one canonical form (+880 followed by the national
// number). Rejections come back as values with a stable error code and
// bilingual (English/Bengali) text; the package never panics on user input
// and performs no I/O at call time.
//
// # Architecture
//
//   - Registry: immutable tables of operator prefixes, landline area codes
//     and special-number categories, validated for disjointness at
//     construction. DefaultRegistry covers the national plan; NewRegistry
//     accepts custom tables.
//   - Validator: the facade binding a registry, the embedded bilingual
//     message catalog and default ValidationOptions. Classification runs
//     special categories first (when enabled), then mobile, then landline.
//   - Formatter: international/local/display renderings plus progressive
//     live-input masking, masking for OTP screens and Bengali digit
//     transliteration. Invalid input is returned unchanged, never an error.
//   - Use-case layer: per-purpose policy (registration, otp, sms,
//     verification) on top of classification.
//   - Stats: batch summaries of validation outcomes.
//   - Debounced: a timer-owning wrapper for live form feedback where only
//     the last keystroke's input in a burst gets validated.
//
// Everything except Debounced is stateless and safe for concurrent use.
//
// # Usage
//
//	res := bdphone.Validate("+880 1712-345678")
//	if res.Valid {
//		fmt.Println(res.NormalizedPhone, res.Operator.Name) // +8801712345678 Grameenphone
//	} else {
//		fmt.Println(res.Err.Code, res.Err.LocalizedMessage)
//	}
//
//	canonical, ok := bdphone.Normalize("01712345678") // "+8801712345678", true
//	_ = canonical
//	_ = ok
//
//	otp := bdphone.ValidateForUseCase("0212345678", bdphone.UseCaseOTP)
//	// otp.Err.Code == bdphone.CodeMobileOnly
//
// A custom Validator can restrict categories, swap the registry or add a
// message catalog language:
//
//	v := bdphone.New(
//		bdphone.WithDefaultValidationOptions(bdphone.ValidationOptions{AllowMobile: true}),
//	)
//	_ = v
package bdphone
