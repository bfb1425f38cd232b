// Package setcookie builds HTTP Set-Cookie header values, including the
// SameSite attribute, and delivers them to a response. It includes:
//
//   - Attributes, an immutable cookie description with fluent With* copies.
//   - Encode, a pure RFC 6265 serializer with a fixed attribute order and
//     RFC 2109 Comment support.
//   - SameSite as a closed enum plus a case-insensitive string parser for
//     untyped input.
//   - Apply, which adds the header to a HeaderSink and refuses committed
//     responses.
//   - Source and *http.Cookie adapters.
//   - Essential, Analytics and ThirdParty presets.
//
// Notes:
//   - Max-Age is either absent or present; zero and negative values are
//     written as given.
//   - Repeated Apply calls append independent Set-Cookie headers.
//   - Value escaping and RFC character-set checks are left to the caller.
package setcookie
