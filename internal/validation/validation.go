// Package validation holds the shared validator instance and the custom
// rules used by the contact form and the site profile.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	looseEmailPattern = regexp.MustCompile(strings.ReplaceAll(EmailPattern, `\s`, browserSpaceClass))
)

// EmailPattern is the loose address rule in browser regexp syntax:
// something@something.something with no whitespace.
const EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

// browserSpaceClass is what \s matches in a browser, as Go class members.
const browserSpaceClass = `\s\v\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

// IsSpace reports whether r is whitespace to a browser: Unicode White_Space
// plus U+FEFF, without U+0085.
func IsSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// TrimSpace trims what a browser's String.prototype.trim would.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// Validator returns the shared validator instance, configured on first use.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their form/yaml name so error maps are keyed the
		// way the page and profile refer to them.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"form", "yaml", "json"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return field.Name
		})

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
			return LooseEmail(fl.Field().String())
		})

		_ = v.RegisterValidation("min_trimmed", func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return utf8.RuneCountInString(TrimSpace(fl.Field().String())) >= n
		})

		validateInst = v
	})

	return validateInst
}

// LooseEmail reports whether s looks like an address. It is not RFC 5322.
func LooseEmail(s string) bool {
	return looseEmailPattern.MatchString(s)
}

// FieldErrors flattens a validator error into field name -> failed tag.
// Errors that are not validation errors are returned unchanged.
func FieldErrors(err error) (map[string]string, error) {
	fields := map[string]string{}
	if err == nil {
		return fields, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	for _, fe := range verrs {
		name := fe.Namespace()
		if idx := strings.Index(name, "."); idx >= 0 {
			name = name[idx+1:]
		}
		if _, seen := fields[name]; !seen {
			fields[name] = fe.Tag()
		}
	}
	return fields, nil
}
