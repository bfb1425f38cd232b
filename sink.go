package setcookie

import (
	"fmt"
	"net/http"
)

// HeaderSink receives encoded Set-Cookie headers. It stands in for an HTTP
// response whose headers may still be changed.
type HeaderSink interface {
	// Committed reports whether headers have already been sent. Headers
	// added after that point would be dropped.
	Committed() bool
	// AddHeader appends a header without replacing earlier values of the
	// same name.
	AddHeader(name, value string)
}

// Apply encodes attrs and adds the result to sink as a Set-Cookie header.
// Each call appends one header; existing Set-Cookie headers are kept.
//
// Parameters:
//   - sink: The response to add the header to.
//   - attrs: The cookie to encode.
//
// Returns:
//   - error: ErrInvalidArgument if sink is nil or committed, or if attrs
//     has a blank name or value. Nothing is added on error.
func Apply(sink HeaderSink, attrs Attributes) error {
	if err := checkSink(sink); err != nil {
		logger().Debug().Err(err).Str("cookie", attrs.name).Msg("set-cookie header rejected")
		return err
	}
	v, err := Encode(attrs)
	if err != nil {
		logger().Debug().Err(err).Msg("set-cookie header rejected")
		return err
	}
	sink.AddHeader(HeaderSetCookie, v)
	logger().Debug().
		Str("cookie", attrs.name).
		Str("sink", fmt.Sprintf("%T", sink)).
		Msg("set-cookie header applied")
	return nil
}

func checkSink(sink HeaderSink) error {
	if sink == nil || sink.Committed() {
		return fmt.Errorf("%w: response is nil or already committed, so no cookie can be set",
			ErrInvalidArgument)
	}
	return nil
}

// HeaderSinkFunc adapts a function to a HeaderSink that is never
// committed, for example http.Header.Add on a header map that is sent
// later. A nil HeaderSinkFunc reports itself as committed.
type HeaderSinkFunc func(name, value string)

// Committed implements HeaderSink.
func (f HeaderSinkFunc) Committed() bool { return f == nil }

// AddHeader implements HeaderSink.
func (f HeaderSinkFunc) AddHeader(name, value string) { f(name, value) }

// ResponseSink is an http.ResponseWriter that also implements HeaderSink.
// It considers the response committed once WriteHeader, Write or Flush has
// been called through it. Handlers should write through the ResponseSink,
// not the wrapped writer, or the commit is not observed.
type ResponseSink struct {
	http.ResponseWriter
	committed bool
}

// NewResponseSink wraps w. If w already is a *ResponseSink it is returned
// as is.
//
// Parameters:
//   - w: The http.ResponseWriter to wrap.
//
// Returns:
//   - *ResponseSink: The sink.
func NewResponseSink(w http.ResponseWriter) *ResponseSink {
	if s, ok := w.(*ResponseSink); ok {
		return s
	}
	return &ResponseSink{ResponseWriter: w}
}

// Committed implements HeaderSink. A nil sink is reported as committed.
func (s *ResponseSink) Committed() bool {
	return s == nil || s.ResponseWriter == nil || s.committed
}

// AddHeader implements HeaderSink.
func (s *ResponseSink) AddHeader(name, value string) {
	s.Header().Add(name, value)
}

// WriteHeader sends the status code and marks the response committed.
func (s *ResponseSink) WriteHeader(code int) {
	s.committed = true
	s.ResponseWriter.WriteHeader(code)
}

// Write writes the body and marks the response committed.
func (s *ResponseSink) Write(p []byte) (int, error) {
	s.committed = true
	return s.ResponseWriter.Write(p)
}

// Flush marks the response committed and flushes the wrapped writer when
// it supports http.Flusher.
func (s *ResponseSink) Flush() {
	s.committed = true
	if f, ok := s.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap returns the wrapped writer for http.ResponseController.
func (s *ResponseSink) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
