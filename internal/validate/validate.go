// Package validate holds the field-validation rules shared by the sign-up
// flow and the quote-creation form. Every rule resolves locally, before any
// storage or network call, and fails fast with a specific variant.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Variant identifies which rule a FieldError violated.
type Variant string

const (
	EmptyField       Variant = "empty_field"
	NameTooShort     Variant = "name_too_short"
	InvalidEmail     Variant = "invalid_email"
	PasswordTooShort Variant = "password_too_short"
	PasswordMismatch Variant = "password_mismatch"
	TermsNotAccepted Variant = "terms_not_accepted"
	TitleRequired    Variant = "title_required"
	BodyTooShort     Variant = "body_too_short"
)

// MinPasswordLen is the hard gate on password length. The strength score is
// advisory and never blocks submission.
const MinPasswordLen = 6

// MinNameLen applies to the display name after trimming.
const MinNameLen = 3

// MinQuoteBodyLen applies to the quote body (frase) after trimming.
const MinQuoteBodyLen = 3

// FieldError describes a failed validation rule. Message carries the short
// user-facing text displayed inline near the triggering control.
type FieldError struct {
	Field   string
	Variant Variant
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Variant)
}

// emailShape requires one non-whitespace run, '@', one non-whitespace run,
// '.', one non-whitespace run. No deeper validation is attempted.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailShape reports whether s looks like local@domain.tld.
func EmailShape(s string) bool {
	return emailShape.MatchString(s)
}

var (
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasDigit   = regexp.MustCompile(`[0-9]`)
	hasSpecial = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// PasswordStrength scores a password: one point each for length ≥6,
// length ≥8, an uppercase letter, a digit, and a non-alphanumeric character,
// capped at 3.
func PasswordStrength(password string) int {
	strength := 0
	if utf8.RuneCountInString(password) >= 6 {
		strength++
	}
	if utf8.RuneCountInString(password) >= 8 {
		strength++
	}
	if hasUpper.MatchString(password) {
		strength++
	}
	if hasDigit.MatchString(password) {
		strength++
	}
	if hasSpecial.MatchString(password) {
		strength++
	}
	if strength > 3 {
		strength = 3
	}
	return strength
}

// StrengthLabel maps a PasswordStrength score to its qualitative label.
func StrengthLabel(score int) string {
	switch {
	case score <= 0:
		return "weak"
	case score == 1:
		return "fair"
	case score == 2:
		return "medium"
	default:
		return "strong"
	}
}

// SignUp runs the registration validation chain and returns the first
// violated rule, or nil if every rule passes. The order matches the
// registration screen: presence, name length, email shape, password length,
// confirmation match, terms.
func SignUp(name, email, password, confirmPassword string, acceptTerms bool) *FieldError {
	if name == "" || email == "" || password == "" || confirmPassword == "" {
		return &FieldError{Field: "all", Variant: EmptyField,
			Message: "Por favor, preencha todos os campos."}
	}
	if utf8.RuneCountInString(strings.TrimSpace(name)) < MinNameLen {
		return &FieldError{Field: "name", Variant: NameTooShort,
			Message: "Nome deve ter pelo menos 3 caracteres."}
	}
	if !EmailShape(email) {
		return &FieldError{Field: "email", Variant: InvalidEmail,
			Message: "Email inválido."}
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return &FieldError{Field: "password", Variant: PasswordTooShort,
			Message: "A senha deve ter pelo menos 6 caracteres."}
	}
	if password != confirmPassword {
		return &FieldError{Field: "confirmPassword", Variant: PasswordMismatch,
			Message: "As senhas não coincidem."}
	}
	if !acceptTerms {
		return &FieldError{Field: "terms", Variant: TermsNotAccepted,
			Message: "Você precisa aceitar os termos e condições."}
	}
	return nil
}

// QuoteDraft validates the locally-required quote fields: a non-empty title
// and a body of at least MinQuoteBodyLen characters after trimming. The
// remaining fields are optional.
func QuoteDraft(titulo, frase string) *FieldError {
	if strings.TrimSpace(titulo) == "" {
		return &FieldError{Field: "titulo", Variant: TitleRequired,
			Message: "Título é obrigatório."}
	}
	if utf8.RuneCountInString(strings.TrimSpace(frase)) < MinQuoteBodyLen {
		return &FieldError{Field: "frase", Variant: BodyTooShort,
			Message: "A frase deve ter pelo menos 3 caracteres."}
	}
	return nil
}
