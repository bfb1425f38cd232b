package setcookie

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	sameSiteNone   = "none"
	sameSiteLax    = "lax"
	sameSiteStrict = "strict"
)

// SameSite is the policy written in the SameSite cookie attribute. The zero
// value is not a policy; Attributes treat it as "no SameSite attribute".
type SameSite int

const (
	// SameSiteLax sends the cookie on top-level navigations from other
	// sites but not on cross-site subrequests.
	SameSiteLax SameSite = iota + 1
	// SameSiteNone sends the cookie in all contexts. Browsers reject it
	// unless Secure is also set.
	SameSiteNone
	// SameSiteStrict sends the cookie in first-party contexts only.
	SameSiteStrict
)

// String returns the canonical wire form: "Lax", "None" or "Strict".
func (s SameSite) String() string {
	switch s {
	case SameSiteLax:
		return "Lax"
	case SameSiteNone:
		return "None"
	case SameSiteStrict:
		return "Strict"
	default:
		return fmt.Sprintf("SameSite(%d)", int(s))
	}
}

// Valid reports whether s is one of the three policies.
func (s SameSite) Valid() bool {
	return s >= SameSiteLax && s <= SameSiteStrict
}

// ParseSameSite converts untyped input to a SameSite. Matching is
// case-insensitive and ignores surrounding whitespace. Blank input is not
// an error: it reports ok=false, meaning no SameSite attribute. Anything
// else fails with ErrInvalidSameSite.
//
// Parameters:
//   - raw: The string to convert.
//
// Returns:
//   - SameSite: The policy, zero when absent.
//   - bool: Whether a policy was given.
//   - error: ErrInvalidSameSite for unknown values.
func ParseSameSite(raw string) (SameSite, bool, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false, nil
	}
	switch strings.ToLower(s) {
	case sameSiteNone:
		return SameSiteNone, true, nil
	case sameSiteLax:
		return SameSiteLax, true, nil
	case sameSiteStrict:
		return SameSiteStrict, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidSameSite, raw)
	}
}

// MustParseSameSite is like ParseSameSite but panics on unknown input.
// Blank input returns the zero SameSite.
func MustParseSameSite(raw string) SameSite {
	s, _, err := ParseSameSite(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// FromHTTPSameSite maps a net/http SameSite mode. http.SameSiteDefaultMode
// and unknown modes report ok=false.
func FromHTTPSameSite(mode http.SameSite) (SameSite, bool) {
	switch mode {
	case http.SameSiteLaxMode:
		return SameSiteLax, true
	case http.SameSiteNoneMode:
		return SameSiteNone, true
	case http.SameSiteStrictMode:
		return SameSiteStrict, true
	default:
		return 0, false
	}
}

// HTTPSameSite returns the equivalent net/http mode, or
// http.SameSiteDefaultMode for the zero value.
func (s SameSite) HTTPSameSite() http.SameSite {
	switch s {
	case SameSiteLax:
		return http.SameSiteLaxMode
	case SameSiteNone:
		return http.SameSiteNoneMode
	case SameSiteStrict:
		return http.SameSiteStrictMode
	default:
		return http.SameSiteDefaultMode
	}
}
