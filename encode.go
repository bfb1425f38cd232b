package setcookie

import (
	"strconv"
	"strings"
	"unicode"
)

// HeaderSetCookie is the response header the encoded value belongs in.
const HeaderSetCookie = "Set-Cookie"

const (
	attrDomain   = "Domain"
	attrPath     = "Path"
	attrSameSite = "SameSite"
	attrSecure   = "Secure"
	attrHTTPOnly = "HttpOnly"
	attrMaxAge   = "Max-Age"
	attrComment  = "Comment"

	separator = "; "
	assign    = "="
)

// Encode serializes attrs into a Set-Cookie header value.
//
// Tokens are written in a fixed order: name=value, Domain, Path, SameSite,
// Secure, HttpOnly, Max-Age, Comment. Unset or blank attributes are left
// out. Each token is terminated by "; " and trailing whitespace is trimmed
// from the result, so it ends with the last token's ";":
//
//	ROUTEID=.serverid; Path=/; Max-Age=-1;
//
// Encode fails with ErrInvalidArgument when the name or value is blank.
func Encode(attrs Attributes) (string, error) {
	if err := checkNameValue(attrs.name, attrs.value); err != nil {
		return "", err
	}

	var b strings.Builder
	writeToken(&b, attrs.name, attrs.value)
	if !isBlank(attrs.domain) {
		writeToken(&b, attrDomain, attrs.domain)
	}
	if !isBlank(attrs.path) {
		writeToken(&b, attrPath, attrs.path)
	}
	if attrs.sameSite.Valid() {
		writeToken(&b, attrSameSite, attrs.sameSite.String())
	}
	if attrs.secure {
		writeFlag(&b, attrSecure)
	}
	if attrs.httpOnly {
		writeFlag(&b, attrHTTPOnly)
	}
	if attrs.hasMaxAge {
		writeToken(&b, attrMaxAge, strconv.Itoa(attrs.maxAge))
	}
	if !isBlank(attrs.comment) {
		writeToken(&b, attrComment, attrs.comment)
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace), nil
}

// MustEncode is like Encode but panics on error.
func MustEncode(attrs Attributes) string {
	v, err := Encode(attrs)
	if err != nil {
		panic(err)
	}
	return v
}

func writeToken(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteString(assign)
	b.WriteString(value)
	b.WriteString(separator)
}

func writeFlag(b *strings.Builder, key string) {
	b.WriteString(key)
	b.WriteString(separator)
}
