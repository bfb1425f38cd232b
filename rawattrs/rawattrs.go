// Package rawattrs builds setcookie.Attributes from untyped input: JSON
// documents and generic maps such as decoded YAML or viper settings.
//
// Recognised keys are name, value, domain, path, sameSite, secure,
// httpOnly, maxAge and comment. Map keys match case-insensitively and may
// use "_" or "-" separators (max_age, http-only); two keys naming the same
// attribute are an error. A missing or null maxAge
// leaves Max-Age unset; any number, including 0, sets it.
package rawattrs

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"

	"github.com/aatuh/setcookie"
)

const (
	keyName     = "name"
	keyValue    = "value"
	keyDomain   = "domain"
	keyPath     = "path"
	keySameSite = "samesite"
	keySecure   = "secure"
	keyHTTPOnly = "httponly"
	keyMaxAge   = "maxage"
	keyComment  = "comment"
)

// FromJSON reads attributes from a JSON object.
func FromJSON(doc string) (setcookie.Attributes, error) {
	if !gjson.Valid(doc) {
		return setcookie.Attributes{}, fmt.Errorf("%w: malformed cookie JSON", setcookie.ErrInvalidArgument)
	}
	root := gjson.Parse(doc)
	if !root.IsObject() {
		return setcookie.Attributes{}, fmt.Errorf("%w: cookie JSON must be an object", setcookie.ErrInvalidArgument)
	}

	raw := make(map[string]any)
	origin := make(map[string]string)
	var err error
	root.ForEach(func(k, v gjson.Result) bool {
		if v.Type == gjson.Null {
			return true
		}
		key := normalizeKey(k.String())
		if err = claim(origin, key, k.String()); err != nil {
			return false
		}
		raw[key], err = jsonValue(key, v)
		return err == nil
	})
	if err != nil {
		return setcookie.Attributes{}, err
	}
	return fromNormalized(raw)
}

// FromMap reads attributes from a generic map. Values are coerced with
// spf13/cast, so "true", 1 and true are all accepted for flags.
func FromMap(m map[string]any) (setcookie.Attributes, error) {
	if m == nil {
		return setcookie.Attributes{}, fmt.Errorf("%w: cookie map must not be nil", setcookie.ErrInvalidArgument)
	}
	raw := make(map[string]any, len(m))
	origin := make(map[string]string, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		key := normalizeKey(k)
		if err := claim(origin, key, k); err != nil {
			return setcookie.Attributes{}, err
		}
		raw[key] = v
	}
	return fromNormalized(raw)
}

func fromNormalized(raw map[string]any) (setcookie.Attributes, error) {
	str := func(key string) (string, error) {
		v, ok := raw[key]
		if !ok {
			return "", nil
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", setcookie.ErrInvalidArgument, key, err)
		}
		return s, nil
	}
	flag := func(key string) (bool, error) {
		v, ok := raw[key]
		if !ok {
			return false, nil
		}
		b, err := cast.ToBoolE(v)
		if err != nil {
			return false, fmt.Errorf("%w: %s: %v", setcookie.ErrInvalidArgument, key, err)
		}
		return b, nil
	}

	strs := make(map[string]string, 6)
	for _, key := range []string{keyName, keyValue, keyDomain, keyPath, keySameSite, keyComment} {
		s, err := str(key)
		if err != nil {
			return setcookie.Attributes{}, err
		}
		strs[key] = s
	}

	secure, err := flag(keySecure)
	if err != nil {
		return setcookie.Attributes{}, err
	}
	httpOnly, err := flag(keyHTTPOnly)
	if err != nil {
		return setcookie.Attributes{}, err
	}

	a, err := setcookie.NewAttributes(strs[keyName], strs[keyValue])
	if err != nil {
		return setcookie.Attributes{}, err
	}
	a, err = a.WithRawSameSite(strs[keySameSite])
	if err != nil {
		return setcookie.Attributes{}, err
	}
	a = a.
		WithDomain(strs[keyDomain]).
		WithPath(strs[keyPath]).
		WithSecure(secure).
		WithHTTPOnly(httpOnly).
		WithComment(strs[keyComment])

	if v, ok := raw[keyMaxAge]; ok {
		age, err := toInt(v)
		if err != nil {
			return setcookie.Attributes{}, err
		}
		a = a.WithMaxAge(age)
	}
	return a, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%w: maxage: %v is not a whole number", setcookie.ErrInvalidArgument, n)
		}
		return int(n), nil
	case string:
		n = strings.TrimSpace(n)
		if n == "" {
			return 0, fmt.Errorf("%w: maxage: empty", setcookie.ErrInvalidArgument)
		}
		v = n
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: maxage: %v", setcookie.ErrInvalidArgument, err)
	}
	return i, nil
}

// claim records that key came from the input key k. Two input keys that
// normalize to the same key are rejected.
func claim(origin map[string]string, key, k string) error {
	if prev, ok := origin[key]; ok {
		a, b := prev, k
		if b < a {
			a, b = b, a
		}
		return fmt.Errorf("%w: keys %q and %q both set %s", setcookie.ErrInvalidArgument, a, b, key)
	}
	origin[key] = k
	return nil
}

// jsonValue unwraps v. maxAge must be a JSON number; whole numbers are
// kept as their literal so large values do not pass through float64.
func jsonValue(key string, v gjson.Result) (any, error) {
	if key != keyMaxAge {
		return v.Value(), nil
	}
	if v.Type != gjson.Number {
		return nil, fmt.Errorf("%w: maxAge must be a number, got %s", setcookie.ErrInvalidArgument, v.Raw)
	}
	if strings.ContainsAny(v.Raw, ".eE") {
		return v.Float(), nil
	}
	return v.Raw, nil
}

func normalizeKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	return strings.NewReplacer("_", "", "-", "").Replace(k)
}
