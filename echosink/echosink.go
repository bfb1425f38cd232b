// Package echosink delivers Set-Cookie headers to labstack/echo responses.
package echosink

import (
	"github.com/labstack/echo/v4"

	"github.com/aatuh/setcookie"
)

// Sink adapts an *echo.Response to setcookie.HeaderSink. It reports the
// response as committed once echo has written the status line.
type Sink struct {
	res *echo.Response
}

// New returns a Sink for the response of c.
func New(c echo.Context) *Sink {
	if c == nil {
		return &Sink{}
	}
	return &Sink{res: c.Response()}
}

// FromResponse returns a Sink for res.
func FromResponse(res *echo.Response) *Sink {
	return &Sink{res: res}
}

// Committed implements setcookie.HeaderSink.
func (s *Sink) Committed() bool {
	return s == nil || s.res == nil || s.res.Committed
}

// AddHeader implements setcookie.HeaderSink.
func (s *Sink) AddHeader(name, value string) {
	s.res.Header().Add(name, value)
}

// Apply adds attrs to the response of c.
func Apply(c echo.Context, attrs setcookie.Attributes) error {
	return setcookie.Apply(New(c), attrs)
}
