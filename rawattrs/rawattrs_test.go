package rawattrs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatuh/setcookie"
	"github.com/aatuh/setcookie/rawattrs"
)

func TestFromJSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "full object",
			doc: `{"name":"COOKIE","value":"testvalue","domain":"foo.foo.org","path":"/foo/config",
				"sameSite":"none","secure":true,"httpOnly":false,"maxAge":5000}`,
			want: "COOKIE=testvalue; Domain=foo.foo.org; Path=/foo/config; SameSite=None; Secure; Max-Age=5000;",
		},
		{
			name: "zero max-age is present",
			doc:  `{"name":"a","value":"1","maxAge":0}`,
			want: "a=1; Max-Age=0;",
		},
		{
			name: "null max-age is absent",
			doc:  `{"name":"a","value":"1","maxAge":null,"comment":null}`,
			want: "a=1;",
		},
		{
			name: "blank samesite is absent",
			doc:  `{"name":"a","value":"1","sameSite":"","comment":"legacy"}`,
			want: "a=1; Comment=legacy;",
		},
		{
			name: "max-age beyond float precision",
			doc:  `{"name":"a","value":"1","maxAge":9007199254740993}`,
			want: "a=1; Max-Age=9007199254740993;",
		},
		{
			name: "exponent max-age",
			doc:  `{"name":"a","value":"1","maxAge":1e3}`,
			want: "a=1; Max-Age=1000;",
		},
		{
			name: "snake case keys",
			doc:  `{"name":"a","value":"1","same_site":"STRICT","http_only":true,"max_age":-1}`,
			want: "a=1; SameSite=Strict; HttpOnly; Max-Age=-1;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := rawattrs.FromJSON(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, setcookie.MustEncode(a))
		})
	}
}

func TestFromJSON_Errors(t *testing.T) {
	t.Parallel()
	for _, doc := range []string{
		`{"name":"a"`,
		`["a","b"]`,
		`{"name":"a","value":""}`,
		`{"name":"a","value":"1","sameSite":"sometimes"}`,
		`{"name":"a","value":"1","maxAge":"10"}`,
		`{"name":"a","value":"1","maxAge":1.5}`,
		`{"name":"a","value":"1","secure":"perhaps"}`,
		`{"name":"a","value":"1","maxAge":1,"max_age":2}`,
		`{"name":"a","value":"1","maxAge":99999999999999999999}`,
	} {
		_, err := rawattrs.FromJSON(doc)
		assert.ErrorIs(t, err, setcookie.ErrInvalidArgument, doc)
	}
}

func TestFromMap(t *testing.T) {
	t.Parallel()
	a, err := rawattrs.FromMap(map[string]any{
		"Name":     "ROUTEID",
		"value":    ".serverid",
		"path":     "/",
		"max-age":  "-1",
		"secure":   "false",
		"HttpOnly": 0,
		"domain":   nil,
	})
	require.NoError(t, err)
	assert.Equal(t, "ROUTEID=.serverid; Path=/; Max-Age=-1;", setcookie.MustEncode(a))

	a, err = rawattrs.FromMap(map[string]any{
		"name":      "id",
		"value":     42,
		"same_site": "lax",
		"secure":    true,
		"http_only": "true",
		"max_age":   0,
	})
	require.NoError(t, err)
	assert.Equal(t, "id=42; SameSite=Lax; Secure; HttpOnly; Max-Age=0;", setcookie.MustEncode(a))
}

func TestFromMap_Errors(t *testing.T) {
	t.Parallel()
	for _, m := range []map[string]any{
		nil,
		{"name": "a"},
		{"name": "a", "value": "1", "max_age": "soon"},
		{"name": "a", "value": "1", "max_age": " "},
		{"name": "a", "value": "1", "samesite": "maybe"},
		{"name": "a", "value": "1", "secure": []string{"x"}},
		{"name": map[string]any{"x": 1}, "value": "1"},
		{"name": "a", "value": "1", "maxAge": 10, "max_age": 20},
		{"name": "a", "Name": "b", "value": "1"},
	} {
		_, err := rawattrs.FromMap(m)
		assert.ErrorIs(t, err, setcookie.ErrInvalidArgument, "%v", m)
	}
}

func TestFromMap_AliasConflict(t *testing.T) {
	t.Parallel()
	m := map[string]any{"name": "a", "value": "1", "maxAge": 10, "max_age": 20, "max-age": 30}
	_, first := rawattrs.FromMap(m)
	require.ErrorIs(t, first, setcookie.ErrInvalidArgument)
	assert.ErrorContains(t, first, "maxage")

	for i := 0; i < 50; i++ {
		_, err := rawattrs.FromMap(m)
		require.Error(t, err)
	}

	a, err := rawattrs.FromMap(map[string]any{"name": "a", "value": "1", "maxAge": 10, "max_age": nil})
	require.NoError(t, err)
	assert.Equal(t, "a=1; Max-Age=10;", setcookie.MustEncode(a))
}
