package setcookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// servletCookie mimics a cookie object whose MaxAge defaults to -1.
type servletCookie struct {
	name, value, domain, path, comment string
	secure, httpOnly                   bool
	maxAge                             int
}

func newServletCookie(name, value string) *servletCookie {
	return &servletCookie{name: name, value: value, maxAge: -1}
}

func (c *servletCookie) Name() string    { return c.name }
func (c *servletCookie) Value() string   { return c.value }
func (c *servletCookie) Domain() string  { return c.domain }
func (c *servletCookie) Path() string    { return c.path }
func (c *servletCookie) Secure() bool    { return c.secure }
func (c *servletCookie) HTTPOnly() bool  { return c.httpOnly }
func (c *servletCookie) MaxAge() int     { return c.maxAge }
func (c *servletCookie) Comment() string { return c.comment }

func TestEncodeCookie_Scenarios(t *testing.T) {
	t.Parallel()

	c := newServletCookie("COOKIE", "testvalue")
	c.domain = "foo.foo.org"
	c.path = "/foo/config"
	c.secure = true
	c.maxAge = 5000
	got, err := EncodeCookie(c, SameSiteNone)
	require.NoError(t, err)
	assert.Equal(t, "COOKIE=testvalue; Domain=foo.foo.org; Path=/foo/config; SameSite=None; Secure; Max-Age=5000;", got)

	route := newServletCookie("ROUTEID", ".serverid")
	route.path = "/"
	got, err = EncodeCookie(route, 0)
	require.NoError(t, err)
	assert.Equal(t, "ROUTEID=.serverid; Path=/; Max-Age=-1;", got)

	session := newServletCookie("JSESSIONID", "someID.2345SASDFASF")
	session.path = "/fooserver/home"
	got, err = EncodeCookie(session, 0)
	require.NoError(t, err)
	assert.Equal(t, "JSESSIONID=someID.2345SASDFASF; Path=/fooserver/home; Max-Age=-1;", got)
}

func TestFromSource_Comment(t *testing.T) {
	t.Parallel()
	c := newServletCookie("pref", "dark")
	c.comment = "UI theme"
	c.httpOnly = true
	a, err := FromSource(c, SameSiteLax)
	require.NoError(t, err)
	assert.Equal(t, "pref=dark; SameSite=Lax; HttpOnly; Max-Age=-1; Comment=UI theme;", MustEncode(a))

	assert.Equal(t, "pref=dark; SameSite=Lax; HttpOnly; Comment=UI theme;", MustEncode(a.WithoutMaxAge()))
}

func TestFromSource_Errors(t *testing.T) {
	t.Parallel()
	_, err := FromSource(nil, SameSiteLax)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = EncodeCookie(newServletCookie("name", " "), 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "(name= )")
}

func TestApplyCookie(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	sink := NewResponseSink(rec)

	require.NoError(t, ApplyCookie(sink, newServletCookie("a", "1"), SameSiteStrict))
	assert.Equal(t, []string{"a=1; SameSite=Strict; Max-Age=-1;"}, rec.Header().Values(HeaderSetCookie))

	assert.ErrorIs(t, ApplyCookie(sink, nil, 0), ErrInvalidArgument)
	assert.ErrorIs(t, ApplyCookie(nil, newServletCookie("a", "1"), 0), ErrInvalidArgument)

	sink.WriteHeader(http.StatusOK)
	assert.ErrorIs(t, ApplyCookie(sink, newServletCookie("b", "2"), 0), ErrInvalidArgument)
	assert.Len(t, rec.Header().Values(HeaderSetCookie), 1)
}

func TestFromHTTPCookie(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		cookie *http.Cookie
		want   string
	}{
		{
			name:   "unset max-age",
			cookie: &http.Cookie{Name: "a", Value: "1", Path: "/"},
			want:   "a=1; Path=/;",
		},
		{
			name:   "delete now",
			cookie: &http.Cookie{Name: "a", Value: "1", MaxAge: -1},
			want:   "a=1; Max-Age=0;",
		},
		{
			name: "all attributes",
			cookie: &http.Cookie{
				Name: "a", Value: "1", Domain: "example.com", Path: "/x",
				Secure: true, HttpOnly: true, MaxAge: 120, SameSite: http.SameSiteNoneMode,
			},
			want: "a=1; Domain=example.com; Path=/x; SameSite=None; Secure; HttpOnly; Max-Age=120;",
		},
		{
			name:   "default samesite",
			cookie: &http.Cookie{Name: "a", Value: "1", SameSite: http.SameSiteDefaultMode},
			want:   "a=1;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := FromHTTPCookie(tt.cookie)
			require.NoError(t, err)
			assert.Equal(t, tt.want, MustEncode(a))
		})
	}

	_, err := FromHTTPCookie(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = FromHTTPCookie(&http.Cookie{Name: "a"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
