// Package contact validates the contact form and turns a valid submission
// into a mailto: link for the visitor's mail client.
package contact

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rahulcj/portfolio/internal/validation"
)

// Subject is the fixed subject line of every message.
const Subject = "Portfolio contact"

// MinMessageLength is the shortest accepted message, in characters after
// trimming. It must match the min_trimmed tag on Form.Message.
const MinMessageLength = 10

// Form is the contact form's field state.
type Form struct {
	Name    string `form:"name" validate:"notblank"`
	Email   string `form:"email" validate:"loose_email"`
	Message string `form:"message" validate:"min_trimmed=10"`
}

// Errors maps a field name to its inline message.
type Errors map[string]string

// OK reports whether there are no errors.
func (e Errors) OK() bool { return len(e) == 0 }

var messages = map[string]string{
	"name":    "Name is required",
	"email":   "Valid email required",
	"message": "Please enter at least 10 characters",
}

// Validate checks every field and returns the full error set, empty when
// the form is valid.
func Validate(f Form) Errors {
	errs := Errors{}
	fields, err := validation.FieldErrors(validation.Validator().Struct(f))
	if err != nil {
		// Struct only fails this way on programmer error.
		panic(fmt.Sprintf("contact: validate form: %v", err))
	}
	for field := range fields {
		errs[field] = messages[field]
	}
	return errs
}

// MailtoURL composes the mailto: link carrying the submission.
func MailtoURL(recipient string, f Form) string {
	body := fmt.Sprintf("From: %s <%s>\n\n%s", f.Name, f.Email, f.Message)
	return "mailto:" + recipient +
		"?subject=" + encodeComponent(Subject) +
		"&body=" + encodeComponent(body)
}

// Submit validates f. On success it returns the mailto: target and no
// errors; otherwise an empty target and the errors.
func Submit(recipient string, f Form) (string, Errors) {
	errs := Validate(f)
	if !errs.OK() {
		return "", errs
	}
	return MailtoURL(recipient, f), errs
}

// encodeComponent percent-encodes like encodeURIComponent: spaces become %20
// rather than "+", which mail clients do not decode.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
