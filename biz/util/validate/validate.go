// Package validate holds the credential format rules and the struct validator
// that applies them to request bodies.
package validate

import (
	"errors"
	"regexp"

	"authgate/biz/model/errs"

	"github.com/go-playground/validator/v10"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

const (
	tagRequired         = "required"
	tagEmailFormat      = "email_format"
	tagPasswordStrength = "password_strength"
	tagPasswordBytes    = "password_bytes"
)

var emailRe = regexp.MustCompile(`^[^\s\p{Zs}@]+@[^\s\p{Zs}@]+\.[^\s\p{Zs}@]+$`)

// Email reports whether s looks like local@domain.tld. It does not check the
// top level domain or any length.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Password reports whether s has at least 8 characters and contains an ASCII
// digit, lowercase and uppercase letter. Line terminators are not characters
// here, so any password containing one fails.
func Password(s string) bool {
	var n int
	var digit, lower, upper bool
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029':
			return false
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		}
		n++
	}
	return n >= 8 && digit && lower && upper
}

var v = newValidator()

func newValidator() *validator.Validate {
	vd := validator.New()
	mustRegister(vd, tagEmailFormat, func(fl validator.FieldLevel) bool {
		return Email(fl.Field().String())
	})
	mustRegister(vd, tagPasswordStrength, func(fl validator.FieldLevel) bool {
		return Password(fl.Field().String())
	})
	mustRegister(vd, tagPasswordBytes, func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
	return vd
}

func mustRegister(vd *validator.Validate, tag string, fn validator.Func) {
	if err := vd.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Struct validates req and maps the outcome to the client error a caller
// should see. Missing fields win over format problems, and format problems
// are reported in field order.
func Struct(req any) errs.Error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.ParamError
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == tagRequired {
			return errs.MissingFields
		}
	}

	switch fieldErrs[0].Tag() {
	case tagEmailFormat:
		return errs.InvalidEmail
	case tagPasswordStrength:
		return errs.WeakPassword
	case tagPasswordBytes:
		return errs.PasswordTooLong
	}
	return errs.ParamError
}
