// Package cdpcookie connects setcookie to the Chrome DevTools Protocol via
// mafredri/cdp: browser cookies become Attributes, and Set-Cookie headers
// can be injected into responses paused by the Fetch domain.
package cdpcookie

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mafredri/cdp/protocol/fetch"
	"github.com/mafredri/cdp/protocol/network"

	"github.com/aatuh/setcookie"
)

// FromNetworkCookie converts a cookie reported by the browser.
//
// Session cookies get no Max-Age. Persistent cookies get the seconds left
// until Expires relative to now, rounded up; an expired cookie yields a
// negative Max-Age, which asks the client to drop it.
func FromNetworkCookie(c network.Cookie, now time.Time) (setcookie.Attributes, error) {
	a, err := setcookie.NewAttributes(c.Name, c.Value)
	if err != nil {
		return setcookie.Attributes{}, err
	}
	a, err = a.WithRawSameSite(string(c.SameSite))
	if err != nil {
		return setcookie.Attributes{}, err
	}
	a = a.
		WithDomain(c.Domain).
		WithPath(c.Path).
		WithSecure(c.Secure).
		WithHTTPOnly(c.HTTPOnly)
	if !c.Session {
		left := c.Expires - float64(now.UnixNano())/float64(time.Second)
		a = a.WithMaxAge(int(math.Ceil(left)))
	}
	return a, nil
}

// Continuer is the part of cdp.Fetch used by Headers.Continue.
type Continuer interface {
	ContinueResponse(ctx context.Context, args *fetch.ContinueResponseArgs) error
}

// Headers is a setcookie.HeaderSink over the response headers of a request
// paused at the response stage. It is committed once the response has
// been continued.
type Headers struct {
	requestID fetch.RequestID
	entries   []fetch.HeaderEntry
	sealed    bool
}

// NewHeaders starts from the headers of ev. A nil ev yields nil, which
// setcookie.Apply rejects.
func NewHeaders(ev *fetch.RequestPausedReply) *Headers {
	if ev == nil {
		return nil
	}
	h := &Headers{requestID: ev.RequestID}
	h.entries = append(h.entries, ev.ResponseHeaders...)
	return h
}

// Committed implements setcookie.HeaderSink.
func (h *Headers) Committed() bool {
	return h == nil || h.sealed
}

// AddHeader implements setcookie.HeaderSink.
func (h *Headers) AddHeader(name, value string) {
	h.entries = append(h.entries, fetch.HeaderEntry{Name: name, Value: value})
}

// Entries returns a copy of the current headers.
func (h *Headers) Entries() []fetch.HeaderEntry {
	out := make([]fetch.HeaderEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// ContinueArgs seals h and returns the arguments for Fetch.continueResponse
// carrying the modified headers.
func (h *Headers) ContinueArgs() *fetch.ContinueResponseArgs {
	h.sealed = true
	return &fetch.ContinueResponseArgs{
		RequestID:       h.requestID,
		ResponseHeaders: h.Entries(),
	}
}

// Continue resumes the paused response with the modified headers.
func (h *Headers) Continue(ctx context.Context, f Continuer) error {
	if h.Committed() {
		return fmt.Errorf("%w: response %q already continued", setcookie.ErrInvalidArgument, h.requestIDString())
	}
	if f == nil {
		return fmt.Errorf("%w: fetch client must not be nil", setcookie.ErrInvalidArgument)
	}
	if err := f.ContinueResponse(ctx, h.ContinueArgs()); err != nil {
		return fmt.Errorf("continue response %s: %w", h.requestID, err)
	}
	return nil
}

func (h *Headers) requestIDString() string {
	if h == nil {
		return ""
	}
	return string(h.requestID)
}
