package setcookie

import (
	"fmt"
	"strings"
)

// Attributes describes one cookie to be written in a Set-Cookie header.
//
// Attributes is a value: every With* method returns a modified copy and
// leaves the receiver untouched. Optional attributes keep "absent" apart
// from their zero value, so WithMaxAge(0) still writes "Max-Age=0".
type Attributes struct {
	name      string
	value     string
	domain    string
	path      string
	comment   string
	sameSite  SameSite
	secure    bool
	httpOnly  bool
	maxAge    int
	hasMaxAge bool
}

// NewAttributes returns Attributes for a cookie with the given name and
// value and no optional attributes.
//
// Parameters:
//   - name: The cookie name. Must not be blank.
//   - value: The cookie value. Must not be blank.
//
// Returns:
//   - Attributes: The new attributes.
//   - error: ErrInvalidArgument if name or value is blank.
func NewAttributes(name, value string) (Attributes, error) {
	if err := checkNameValue(name, value); err != nil {
		return Attributes{}, err
	}
	return Attributes{name: name, value: value}, nil
}

// WithDomain sets the Domain attribute. A blank domain omits it.
func (a Attributes) WithDomain(domain string) Attributes {
	a.domain = domain
	return a
}

// WithPath sets the Path attribute. A blank path omits it.
func (a Attributes) WithPath(path string) Attributes {
	a.path = path
	return a
}

// WithSameSite sets the SameSite attribute. Passing the zero value (or any
// value for which Valid is false) removes it.
func (a Attributes) WithSameSite(s SameSite) Attributes {
	if !s.Valid() {
		s = 0
	}
	a.sameSite = s
	return a
}

// WithRawSameSite sets SameSite from untyped input using ParseSameSite.
// Blank input removes the attribute; unknown input is an error and the
// receiver is returned unchanged.
//
// Parameters:
//   - raw: The SameSite string, in any letter case.
//
// Returns:
//   - Attributes: The attributes with SameSite set.
//   - error: ErrInvalidSameSite for unknown values.
func (a Attributes) WithRawSameSite(raw string) (Attributes, error) {
	s, _, err := ParseSameSite(raw)
	if err != nil {
		return a, err
	}
	return a.WithSameSite(s), nil
}

// WithSecure sets the Secure flag.
func (a Attributes) WithSecure(secure bool) Attributes {
	a.secure = secure
	return a
}

// WithHTTPOnly sets the HttpOnly flag.
func (a Attributes) WithHTTPOnly(httpOnly bool) Attributes {
	a.httpOnly = httpOnly
	return a
}

// WithMaxAge sets Max-Age in seconds. Zero and negative values are kept
// and written as given; both ask the client to expire the cookie now.
func (a Attributes) WithMaxAge(seconds int) Attributes {
	a.maxAge = seconds
	a.hasMaxAge = true
	return a
}

// WithoutMaxAge removes Max-Age, making the cookie a session cookie.
func (a Attributes) WithoutMaxAge() Attributes {
	a.maxAge = 0
	a.hasMaxAge = false
	return a
}

// WithComment sets the RFC 2109 Comment attribute. A blank comment omits it.
func (a Attributes) WithComment(comment string) Attributes {
	a.comment = comment
	return a
}

// Name returns the cookie name.
func (a Attributes) Name() string { return a.name }

// Value returns the cookie value.
func (a Attributes) Value() string { return a.value }

// Domain returns the Domain attribute, empty when unset.
func (a Attributes) Domain() string { return a.domain }

// Path returns the Path attribute, empty when unset.
func (a Attributes) Path() string { return a.path }

// Comment returns the Comment attribute, empty when unset.
func (a Attributes) Comment() string { return a.comment }

// SameSite returns the SameSite policy and whether one is set.
func (a Attributes) SameSite() (SameSite, bool) { return a.sameSite, a.sameSite.Valid() }

// Secure reports the Secure flag.
func (a Attributes) Secure() bool { return a.secure }

// HTTPOnly reports the HttpOnly flag.
func (a Attributes) HTTPOnly() bool { return a.httpOnly }

// MaxAge returns Max-Age in seconds and whether it is set.
func (a Attributes) MaxAge() (int, bool) { return a.maxAge, a.hasMaxAge }

func checkNameValue(name, value string) error {
	if isBlank(name) || isBlank(value) {
		return fmt.Errorf("%w: cookie name or value can not be empty (%s=%s)",
			ErrInvalidArgument, name, value)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
