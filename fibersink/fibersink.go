// Package fibersink delivers Set-Cookie headers to gofiber/fiber responses.
package fibersink

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aatuh/setcookie"
)

// Sink adapts a *fiber.Ctx to setcookie.HeaderSink.
//
// fasthttp buffers the whole response until the handler returns, so the
// response only counts as committed when the connection was hijacked.
type Sink struct {
	c *fiber.Ctx
}

// New returns a Sink for c.
func New(c *fiber.Ctx) *Sink {
	return &Sink{c: c}
}

// Committed implements setcookie.HeaderSink.
func (s *Sink) Committed() bool {
	return s == nil || s.c == nil || s.c.Context().Hijacked()
}

// AddHeader implements setcookie.HeaderSink. The value is stored raw, so
// fiber does not re-serialize it through its own cookie type.
func (s *Sink) AddHeader(name, value string) {
	s.c.Response().Header.Add(name, value)
}

// Apply adds attrs to the response of c.
func Apply(c *fiber.Ctx, attrs setcookie.Attributes) error {
	return setcookie.Apply(New(c), attrs)
}
