package setcookie

import (
	"strings"
	"time"
)

const hostPrefix = "__Host-"

// Builder produces Attributes for one named cookie from a preset. Builders
// are mutable and meant to be configured once, then used many times.
type Builder struct {
	base       Attributes
	name       string
	ttlSeconds int
	hostPrefix bool
}

// NewEssential creates a builder for first-party session identifiers and
// auth tokens:
//
//	Secure, HttpOnly, Path=/, SameSite=Lax, no Max-Age.
//
// Parameters:
//   - name: The name of the cookie.
//
// Returns:
//   - *Builder: The new builder.
func NewEssential(name string) *Builder {
	return &Builder{
		base: cookieDefaults().
			WithHTTPOnly(true).
			WithSameSite(SameSiteLax),
		name:       name,
		ttlSeconds: 0, // session cookie by default
	}
}

// NewAnalytics creates a builder for client-readable analytics IDs:
//
//	Secure, not HttpOnly, Path=/, SameSite=None, Max-Age of 180 days.
func NewAnalytics(name string) *Builder {
	return &Builder{
		base: cookieDefaults().
			WithHTTPOnly(false).
			WithSameSite(SameSiteNone),
		name:       name,
		ttlSeconds: durToSec(180 * 24 * time.Hour),
	}
}

// NewThirdParty creates a builder for cross-site cookies:
//
//	Secure, not HttpOnly, Path=/, SameSite=None, Max-Age of 90 days.
func NewThirdParty(name string) *Builder {
	return &Builder{
		base: cookieDefaults().
			WithHTTPOnly(false).
			WithSameSite(SameSiteNone),
		name:       name,
		ttlSeconds: durToSec(90 * 24 * time.Hour),
	}
}

// WithTTL sets Max-Age from a duration rounded down to seconds. Zero or a
// negative duration makes a session cookie.
func (b *Builder) WithTTL(ttl time.Duration) *Builder {
	b.ttlSeconds = durToSec(ttl)
	return b
}

// WithDomain sets the Domain attribute. Ignored while the host prefix is
// enabled.
func (b *Builder) WithDomain(domain string) *Builder {
	if !b.hostPrefix {
		b.base = b.base.WithDomain(domain)
	}
	return b
}

// WithPath sets the Path attribute. Ignored while the host prefix is
// enabled.
func (b *Builder) WithPath(path string) *Builder {
	if !b.hostPrefix {
		b.base = b.base.WithPath(path)
	}
	return b
}

// WithSameSite overrides the preset SameSite policy.
func (b *Builder) WithSameSite(s SameSite) *Builder {
	b.base = b.base.WithSameSite(s)
	return b
}

// WithHostPrefix enforces the "__Host-" prefix, which requires Secure,
// Path=/ and no Domain.
//
// Parameters:
//   - enable: Whether to enforce the prefix.
//
// Returns:
//   - *Builder: The builder with the host prefix set.
func (b *Builder) WithHostPrefix(enable bool) *Builder {
	b.hostPrefix = enable
	if enable {
		b.base = b.base.WithPath("/").WithDomain("").WithSecure(true)
	}
	return b
}

// Name returns the cookie name, including the host prefix when enabled.
func (b *Builder) Name() string {
	if b.hostPrefix && !strings.HasPrefix(b.name, hostPrefix) {
		return hostPrefix + b.name
	}
	return b.name
}

// Attributes returns the preset attributes for value.
//
// Parameters:
//   - value: The cookie value.
//
// Returns:
//   - Attributes: The attributes.
//   - error: ErrInvalidArgument if the name or value is blank.
func (b *Builder) Attributes(value string) (Attributes, error) {
	if err := checkNameValue(b.name, value); err != nil {
		return Attributes{}, err
	}
	a := b.base
	a.name = b.Name()
	a.value = value
	if b.ttlSeconds > 0 {
		a = a.WithMaxAge(b.ttlSeconds)
	}
	return a, nil
}

// Apply adds the preset cookie with value to sink.
func (b *Builder) Apply(sink HeaderSink, value string) error {
	a, err := b.Attributes(value)
	if err != nil {
		return err
	}
	return Apply(sink, a)
}

// cookieDefaults returns the attributes shared by every preset.
func cookieDefaults() Attributes {
	return Attributes{}.WithPath("/").WithSecure(true)
}

// durToSec converts a duration to seconds.
func durToSec(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d / time.Second)
}
