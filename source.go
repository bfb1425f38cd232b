package setcookie

import (
	"fmt"
	"net/http"
)

// Source is a read-only cookie object, such as a cookie type from another
// framework. Empty Domain, Path and Comment mean the attribute is unset.
type Source interface {
	Name() string
	Value() string
	Domain() string
	Path() string
	Secure() bool
	HTTPOnly() bool
	MaxAge() int
	Comment() string
}

// FromSource copies src into Attributes and adds sameSite (the zero value
// means no SameSite attribute).
//
// MaxAge is always taken as set. Sources whose "unset" convention is a
// sentinel such as -1 therefore produce "Max-Age=-1"; callers that want
// the attribute dropped should call WithoutMaxAge on the result.
//
// Parameters:
//   - src: The cookie to read. Must not be nil.
//   - sameSite: The SameSite policy to add.
//
// Returns:
//   - Attributes: The attributes.
//   - error: ErrInvalidArgument if src is nil or its name or value is blank.
func FromSource(src Source, sameSite SameSite) (Attributes, error) {
	if src == nil {
		return Attributes{}, fmt.Errorf("%w: cookie source must not be nil", ErrInvalidArgument)
	}
	a, err := NewAttributes(src.Name(), src.Value())
	if err != nil {
		return Attributes{}, err
	}
	return a.
		WithDomain(src.Domain()).
		WithPath(src.Path()).
		WithSameSite(sameSite).
		WithSecure(src.Secure()).
		WithHTTPOnly(src.HTTPOnly()).
		WithMaxAge(src.MaxAge()).
		WithComment(src.Comment()), nil
}

// FromHTTPCookie converts a net/http cookie using net/http's MaxAge
// convention: 0 means unset, negative means "delete now" and becomes
// Max-Age=0, positive values are kept. Expires, Partitioned and Raw are
// ignored.
func FromHTTPCookie(c *http.Cookie) (Attributes, error) {
	if c == nil {
		return Attributes{}, fmt.Errorf("%w: cookie must not be nil", ErrInvalidArgument)
	}
	a, err := NewAttributes(c.Name, c.Value)
	if err != nil {
		return Attributes{}, err
	}
	a = a.
		WithDomain(c.Domain).
		WithPath(c.Path).
		WithSecure(c.Secure).
		WithHTTPOnly(c.HttpOnly)
	if s, ok := FromHTTPSameSite(c.SameSite); ok {
		a = a.WithSameSite(s)
	}
	switch {
	case c.MaxAge < 0:
		a = a.WithMaxAge(0)
	case c.MaxAge > 0:
		a = a.WithMaxAge(c.MaxAge)
	}
	return a, nil
}

// EncodeCookie is FromSource followed by Encode.
func EncodeCookie(src Source, sameSite SameSite) (string, error) {
	a, err := FromSource(src, sameSite)
	if err != nil {
		return "", err
	}
	return Encode(a)
}

// ApplyCookie is FromSource followed by Apply. The sink is checked before
// src is read.
func ApplyCookie(sink HeaderSink, src Source, sameSite SameSite) error {
	if src == nil {
		return fmt.Errorf("%w: cookie source must not be nil", ErrInvalidArgument)
	}
	if err := checkSink(sink); err != nil {
		logger().Debug().Err(err).Msg("set-cookie header rejected")
		return err
	}
	a, err := FromSource(src, sameSite)
	if err != nil {
		return err
	}
	return Apply(sink, a)
}
