package validation

import (
	"regexp"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/goliatone/go-signupform/pkg/model"
)

const (
	// MinNameLength is the minimum number of characters of a trimmed name.
	MinNameLength = 5
	// MinPasswordLength is the minimum length of a password in UTF-16 code units.
	MinPasswordLength = 8
	// PasswordSymbols lists the punctuation accepted as a password symbol.
	PasswordSymbols = "#?!@$%^&*-"
)

// Verdict codes.
const (
	CodeNameTooShort        = "name_too_short"
	CodeEmailInvalid        = "email_invalid"
	CodePasswordTooShort    = "password_too_short"
	CodePasswordComposition = "password_composition"
	CodeOccupationRequired  = "occupation_required"
	CodeStateRequired       = "state_required"
)

// Verdict reasons as shown next to the offending input.
const (
	ReasonName                = "Please, enter a valid name"
	ReasonEmail               = "Please, enter a valid email address"
	ReasonPasswordTooShort    = "Your password must be at least 8 characters long"
	ReasonPasswordComposition = "Your password must have eight characters with one number, one special character, and a combination of uppercase and lowercase letters"
	ReasonOccupation          = "Please, select your occupation"
	ReasonState               = "Please, select your state"
)

var (
	// The local-part classes exclude every Unicode space, not only ASCII ones.
	emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s\v\p{Z}\x{FEFF}@"]+(\.[^<>()\[\]\\.,;:\s\v\p{Z}\x{FEFF}@"]+)*)|("[^\n\r\x{2028}\x{2029}]+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

	passwordClasses = []*regexp.Regexp{
		regexp.MustCompile(`[A-Z]`),
		regexp.MustCompile(`[a-z]`),
		regexp.MustCompile(`[0-9]`),
		regexp.MustCompile(`[` + regexp.QuoteMeta(PasswordSymbols) + `]`),
	}
)

// Validate checks raw against the rule for kind. Unknown kinds always pass.
func Validate(kind model.FieldKind, raw string) model.Verdict {
	switch kind {
	case model.KindName:
		return validateName(raw)
	case model.KindEmail:
		return validateEmail(raw)
	case model.KindPassword:
		return validatePassword(raw)
	case model.KindOccupation:
		return validateOccupation(raw)
	case model.KindState:
		return validateState(raw)
	default:
		// Callers only ever use the five known kinds; anything else is a no-op.
		return model.Pass()
	}
}

func validateName(raw string) model.Verdict {
	if utf8.RuneCountInString(strings.TrimSpace(raw)) < MinNameLength {
		return model.Fail(CodeNameTooShort, ReasonName)
	}
	return model.Pass()
}

func validateEmail(raw string) model.Verdict {
	if err := recordValidator().Var(raw, EmailTag); err != nil {
		return model.Fail(CodeEmailInvalid, ReasonEmail)
	}
	return model.Pass()
}

func validatePassword(raw string) model.Verdict {
	if passwordLength(raw) < MinPasswordLength {
		return model.Fail(CodePasswordTooShort, ReasonPasswordTooShort)
	}
	if !hasPasswordClasses(raw) {
		return model.Fail(CodePasswordComposition, ReasonPasswordComposition)
	}
	return model.Pass()
}

func validateOccupation(raw string) model.Verdict {
	if raw == "" {
		return model.Fail(CodeOccupationRequired, ReasonOccupation)
	}
	return model.Pass()
}

func validateState(raw string) model.Verdict {
	if raw == "" {
		return model.Fail(CodeStateRequired, ReasonState)
	}
	return model.Pass()
}

// IsEmail reports whether value matches the accepted address shape.
func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// passwordLength counts UTF-16 code units, so a character outside the Basic
// Multilingual Plane counts twice.
func passwordLength(value string) int {
	return len(utf16.Encode([]rune(value)))
}

func hasPasswordClasses(value string) bool {
	// A password is a single line.
	if strings.ContainsAny(value, "\r\n\u2028\u2029") {
		return false
	}
	for _, class := range passwordClasses {
		if !class.MatchString(value) {
			return false
		}
	}
	return true
}
