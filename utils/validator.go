package utils

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Input validation for credentials and registration fields. Formats are
// checked before any database access so malformed input never reaches a query.

var (
	reEmployeeID    = regexp.MustCompile(`^EMP[0-9]{6}$`)
	reFullName      = regexp.MustCompile(`^[A-Za-z \-']{1,100}$`)
	reIDNumber      = regexp.MustCompile(`^[0-9]{13}$`)
	reAccountNumber = regexp.MustCompile(`^[0-9]{7,11}$`)
	reSwiftCode     = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	reCurrency      = regexp.MustCompile(`^[A-Z]{3}$`)
	reAmount        = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)

	rePwdLower    = regexp.MustCompile(`[a-z]`)
	rePwdUpper    = regexp.MustCompile(`[A-Z]`)
	rePwdDigit    = regexp.MustCompile(`[0-9]`)
	rePwdSpecial  = regexp.MustCompile(`[@$!%*?&]`)
	rePwdCharset  = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&]+$`)
	reHTMLTag     = regexp.MustCompile(`<[^>]*>?`)
	reInterpChars = regexp.MustCompile(`[\$\{\}]`)
)

// ValidateEmployeeID reports whether id is 'EMP' followed by exactly 6 digits.
func ValidateEmployeeID(id string) bool {
	return reEmployeeID.MatchString(id)
}

// ValidatePassword enforces the credential strength policy: at least 8
// characters with at least one lowercase letter, one uppercase letter, one
// digit and one special character from @$!%*?&, using no characters outside
// that set.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return rePwdCharset.MatchString(password) &&
		rePwdLower.MatchString(password) &&
		rePwdUpper.MatchString(password) &&
		rePwdDigit.MatchString(password) &&
		rePwdSpecial.MatchString(password)
}

// ValidateFullName accepts letters, spaces, hyphens and apostrophes, 1-100 chars.
func ValidateFullName(name string) bool {
	return reFullName.MatchString(name)
}

// ValidateIDNumber accepts a 13-digit national ID number.
func ValidateIDNumber(id string) bool {
	return reIDNumber.MatchString(id)
}

// ValidateAccountNumber accepts a 7-11 digit bank account number.
func ValidateAccountNumber(acc string) bool {
	return reAccountNumber.MatchString(acc)
}

// ValidateSwiftCode accepts an 8 or 11 character BIC.
func ValidateSwiftCode(code string) bool {
	return reSwiftCode.MatchString(code)
}

// ValidateCurrency accepts a 3-letter uppercase currency code.
func ValidateCurrency(code string) bool {
	return reCurrency.MatchString(code)
}

// ValidateAmount accepts a positive decimal amount with up to 2 decimal places.
func ValidateAmount(amount string) bool {
	return reAmount.MatchString(amount)
}

// Sanitize defangs a request string before it is used in lookups or stored:
// HTML tags are stripped, previously escaped entities are normalized back to
// characters, the literal characters $ { } are removed, the result is capped
// at 1000 runes and trimmed, and the five XML-special characters are
// entity-escaped. Normalizing before escaping keeps the transform idempotent:
// Sanitize(Sanitize(s)) == Sanitize(s) for every s. The cap applies to the
// unescaped text, so the escaped output can run past 1000 bytes.
func Sanitize(input string) string {
	s := reHTMLTag.ReplaceAllString(input, "")
	s = html.UnescapeString(s)
	s = reInterpChars.ReplaceAllString(s, "")
	if utf8.RuneCountInString(s) > 1000 {
		s = string([]rune(s)[:1000])
	}
	s = strings.TrimSpace(s)
	return html.EscapeString(s)
}

// SanitizeValue applies Sanitize to values decoded from generic JSON. Anything
// that is not a string maps to the empty string.
func SanitizeValue(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Sanitize(s)
}
