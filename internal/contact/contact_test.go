package contact

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipient = "owner@example.com"

func TestMissingNameOnly(t *testing.T) {
	t.Parallel()

	target, errs := Submit(recipient, Form{Name: "", Email: "a@b.com", Message: "1234567890"})
	assert.Empty(t, target)
	assert.Equal(t, Errors{"name": "Name is required"}, errs)
}

func TestBadEmailAndShortMessage(t *testing.T) {
	t.Parallel()

	target, errs := Submit(recipient, Form{Name: "Jo", Email: "not-an-email", Message: "short"})
	assert.Empty(t, target)
	assert.Equal(t, Errors{
		"email":   "Valid email required",
		"message": "Please enter at least 10 characters",
	}, errs)
}

func TestWhitespaceDoesNotCount(t *testing.T) {
	t.Parallel()

	errs := Validate(Form{Name: "   ", Email: "jo@x.io", Message: "  123456789  "})
	assert.Equal(t, Errors{
		"name":    "Name is required",
		"message": "Please enter at least 10 characters",
	}, errs)
}

func TestValidSubmissionBuildsMailto(t *testing.T) {
	t.Parallel()

	form := Form{Name: "Jo", Email: "jo@x.io", Message: "Hello there, this works."}
	target, errs := Submit(recipient, form)
	require.True(t, errs.OK())
	require.NotEmpty(t, target)
	assert.NotContains(t, target, "+")

	u, err := url.Parse(target)
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, recipient, u.Opaque)

	q := u.Query()
	assert.Equal(t, Subject, q.Get("subject"))
	body := q.Get("body")
	assert.Contains(t, body, "Jo")
	assert.Contains(t, body, "jo@x.io")
	assert.Contains(t, body, "Hello there, this works.")
	assert.Equal(t, "From: Jo <jo@x.io>\n\nHello there, this works.", body)
}

func TestEncodeComponentEscapesQuerySeparators(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a%20%26%20b%3Dc%2B", encodeComponent("a & b=c+"))
}

func TestFormViewShowsErrors(t *testing.T) {
	t.Parallel()

	form := Form{Name: "Jo", Email: "nope", Message: "hi <b>"}
	var b strings.Builder
	require.NoError(t, FormView(recipient, form, Validate(form)).Render(&b))
	out := b.String()

	assert.Contains(t, out, `id="email-error"`)
	assert.Contains(t, out, "Valid email required")
	assert.Contains(t, out, "Please enter at least 10 characters")
	assert.Contains(t, out, `<p id="name-error" class="mt-1 text-xs text-orange-600" data-message="Name is required" hidden></p>`)
	assert.Contains(t, out, `aria-invalid="true"`)
	assert.Contains(t, out, `value="Jo"`)
	assert.Contains(t, out, "hi &lt;b&gt;")
	assert.Contains(t, out, "novalidate")
}

func TestFormViewCarriesBrowserRules(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	require.NoError(t, FormView(recipient, Form{}, nil).Render(&b))
	out := b.String()

	assert.Contains(t, out, `data-recipient="owner@example.com"`)
	assert.Contains(t, out, `data-subject="Portfolio contact"`)
	assert.Contains(t, out, `data-rule="required"`)
	assert.Contains(t, out, `data-rule="pattern" data-pattern="^[^\s@]+@[^\s@]+\.[^\s@]+$"`)
	assert.Contains(t, out, `data-rule="min" data-min="10"`)
	for field, msg := range messages {
		assert.Contains(t, out, `id="`+field+`-error"`)
		assert.Contains(t, out, `data-message="`+msg+`"`)
	}
	assert.NotContains(t, out, "hx-post")
	assert.NotContains(t, out, "aria-invalid")
}

func TestMinMessageLengthMatchesRule(t *testing.T) {
	t.Parallel()

	short := strings.Repeat("x", MinMessageLength-1)
	assert.Contains(t, Validate(Form{Name: "Jo", Email: "jo@x.io", Message: short}), "message")
	assert.NotContains(t, Validate(Form{Name: "Jo", Email: "jo@x.io", Message: short + "x"}), "message")
}

func TestBrowserWhitespaceRejected(t *testing.T) {
	t.Parallel()

	cases := []Form{
		{Name: "Jo", Email: "jo\u00a0x@x.io", Message: "long enough message"},
		{Name: "Jo", Email: "jo\vx@x.io", Message: "long enough message"},
		{Name: "Jo", Email: "jo\u2028x@x.io", Message: "long enough message"},
	}
	for _, f := range cases {
		assert.Equal(t, Errors{"email": "Valid email required"}, Validate(f), "%q", f.Email)
	}
	assert.Equal(t, Errors{"name": "Name is required"}, Validate(Form{Name: "\ufeff", Email: "jo@x.io", Message: "long enough message"}))
}

func TestDetailsView(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	require.NoError(t, DetailsView(Details{Email: recipient, Phone: "+91 91216 10100"}).Render(&b))
	assert.Contains(t, b.String(), `href="mailto:owner@example.com"`)
	assert.Contains(t, b.String(), `href="tel:+919121610100"`)
}
