package bdphone

// UseCase names a purpose with its own acceptance policy.
type UseCase string

const (
	// UseCaseRegistration accepts mobile and landline numbers and reports
	// whether the number can additionally receive SMS/OTP.
	UseCaseRegistration UseCase = "registration"
	// UseCaseOTP requires a mobile number.
	UseCaseOTP UseCase = "otp"
	// UseCaseSMS requires a mobile number.
	UseCaseSMS UseCase = "sms"
	// UseCaseVerification accepts mobile and landline numbers and flags them
	// verifiable.
	UseCaseVerification UseCase = "verification"
)

// mobileOnly reports whether the use case rejects landlines.
func (u UseCase) mobileOnly() bool {
	return u == UseCaseOTP || u == UseCaseSMS
}

// ValidateForUseCase classifies phone and applies the per-purpose policy on
// top. It never re-implements classification: it restricts the category
// toggles and post-processes the result. A landline that would otherwise be
// valid fails with MOBILE_ONLY under the otp and sms use cases. Unknown use
// cases get plain classification with no extra flags.
func (v *Validator) ValidateForUseCase(phone string, useCase UseCase) Result {
	res := v.classify(phone, ValidationOptions{AllowMobile: true, AllowLandline: true})

	if useCase.mobileOnly() && res.Valid && res.Type == TypeLandline {
		return v.invalid(CodeMobileOnly)
	}
	if !res.Valid {
		return res
	}

	switch useCase {
	case UseCaseRegistration:
		res.SMSCapable = res.Type == TypeMobile
	case UseCaseOTP, UseCaseSMS:
		res.SMSCapable = true
	case UseCaseVerification:
		res.Verifiable = true
	}
	return res
}
