package bdphone

import (
	"errors"
	"fmt"
)

// ErrorCode identifies why a phone number was rejected. Codes are stable:
// consumers may branch on them.
type ErrorCode string

const (
	// CodeInvalidInput is reserved for bindings where the input can be absent
	// or non-textual. The Go API always receives a string, so this code is
	// part of the taxonomy but never produced here.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeEmptyPhone means the input was blank after cleaning.
	CodeEmptyPhone ErrorCode = "EMPTY_PHONE"

	// CodeInvalidMobileFormat means the number starts like a mobile number
	// but has the wrong overall shape.
	CodeInvalidMobileFormat ErrorCode = "INVALID_MOBILE_FORMAT"

	// CodeUnsupportedOperator means the number is mobile-shaped but its
	// 3-digit prefix is not in the operator registry.
	CodeUnsupportedOperator ErrorCode = "UNSUPPORTED_OPERATOR"

	// CodeInvalidLandlineFormat means the number looks like a landline but
	// the area code is unregistered or the subscriber part is malformed.
	CodeInvalidLandlineFormat ErrorCode = "INVALID_LANDLINE_FORMAT"

	// CodeInvalidSpecialFormat means the number starts like a special service
	// number but does not match any category pattern.
	CodeInvalidSpecialFormat ErrorCode = "INVALID_SPECIAL_FORMAT"

	// CodeInvalidFormat is the generic rejection when no category matched.
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// CodeMobileOnly means use-case policy requires a mobile number but the
	// input classified as a landline.
	CodeMobileOnly ErrorCode = "MOBILE_ONLY"
)

// ValidationError describes a rejected phone number with a stable code and
// bilingual text. It is carried on the Result, not returned as a Go error:
// malformed user input is an expected outcome for a validation library.
type ValidationError struct {
	Code             ErrorCode
	Message          string
	LocalizedMessage string
	Suggestions      []string
	Examples         []string
}

// Error implements the error interface for callers that want to treat a
// rejection as an error value anyway.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Registry construction and configuration errors.
var (
	ErrNoOperators     = errors.New("bdphone: registry has no mobile operators")
	ErrInvalidPrefix   = errors.New("bdphone: invalid mobile operator prefix")
	ErrInvalidAreaCode = errors.New("bdphone: invalid landline area code")
	ErrDuplicateCode   = errors.New("bdphone: duplicate code in registry")
	ErrCodeOverlap     = errors.New("bdphone: mobile prefix and area code overlap")
	ErrShadowedArea    = errors.New("bdphone: area code shadows another area code")
	ErrInvalidPattern  = errors.New("bdphone: invalid special category pattern")
	ErrParsingConfig   = errors.New("bdphone: failed to parse environment config")
)
