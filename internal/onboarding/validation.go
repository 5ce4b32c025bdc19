package onboarding

import (
	"regexp"
	"strings"
	"unicode"
)

// emailPattern is deliberately loose: something@something.something with no
// whitespace in any part. Whitespace includes the Unicode separators and the
// byte order mark, matching isSpace.
var emailPattern = regexp.MustCompile(
	`[^\s\p{Z}\x{FEFF}]+@[^\s\p{Z}\x{FEFF}]+\.[^\s\p{Z}\x{FEFF}]+`,
)

// ErrorSet maps a field to its validation message. Only failing fields are
// present. The zero value is an empty set and is safe to read.
type ErrorSet map[Field]string

// Len returns the number of fields with an error.
func (e ErrorSet) Len() int {
	return len(e)
}

// Empty reports whether no field has an error.
func (e ErrorSet) Empty() bool {
	return len(e) == 0
}

// Has reports whether field has an error.
func (e ErrorSet) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for field, or "" when it has none.
func (e ErrorSet) Get(field Field) string {
	return e[field]
}

// Fields returns the failing fields in form order.
func (e ErrorSet) Fields() []Field {
	out := make([]Field, 0, len(e))
	for _, f := range Fields {
		if e.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Clone returns an independent copy.
func (e ErrorSet) Clone() ErrorSet {
	out := make(ErrorSet, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Validate checks the fields that belong to step and returns the failures.
// Steps without required fields (the preferences step, or anything out of
// range) always validate.
func Validate(step int, data FormData) ErrorSet {
	errs := ErrorSet{}

	switch step {
	case StepPersonal:
		if isBlank(data.Name) {
			errs[FieldName] = "Name is required"
		}
		if isBlank(data.Email) {
			errs[FieldEmail] = "Email is required"
		} else if !ValidEmail(data.Email) {
			errs[FieldEmail] = "Email is invalid"
		}

	case StepBusiness:
		for _, f := range []Field{FieldCompanyName, FieldIndustry, FieldCompanySize} {
			if isBlank(data.Get(f)) {
				errs[f] = requiredMessage(f)
			}
		}
	}

	return errs
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func requiredMessage(f Field) string {
	return f.Label() + " is required"
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}

// isSpace treats the ASCII controls, every Unicode separator (Zs, Zl, Zp)
// and U+FEFF as whitespace.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF':
		return true
	}
	return unicode.In(r, unicode.Z)
}
