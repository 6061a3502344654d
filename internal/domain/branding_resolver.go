package domain

import (
	"fmt"
	"strings"
)

// LookupFunc reports the value of a named variable and whether it is set.
// An empty value that is set is distinct from an absent one.
type LookupFunc func(name string) (string, bool)

// BrandingResolver computes the final value of every branding key.
//
// Precedence per key: explicit override, then environment (trimmed, even when
// empty), then template default, then "". BRAND_ID never falls back to the
// template. The chosen value is normalized by the key's rule.
type BrandingResolver struct {
	lookup LookupFunc
}

// BrandingResolverOption configures BrandingResolver.
type BrandingResolverOption func(*BrandingResolver)

// WithLookup sets the environment source (os.LookupEnv in production).
func WithLookup(fn LookupFunc) BrandingResolverOption {
	return func(r *BrandingResolver) {
		if fn != nil {
			r.lookup = fn
		}
	}
}

// NewBrandingResolver builds a resolver. Without WithLookup no environment
// variable is ever present.
func NewBrandingResolver(opts ...BrandingResolverOption) *BrandingResolver {
	r := &BrandingResolver{
		lookup: func(string) (string, bool) { return "", false },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve evaluates all keys in declaration order and stops at the first error.
func (r *BrandingResolver) Resolve(defaults, overrides Values) (Values, error) {
	out := make(Values, keyCount)
	for _, k := range Keys() {
		v, err := r.ResolveKey(k, defaults, overrides)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// ResolveKey applies the precedence chain and normalization to a single key.
func (r *BrandingResolver) ResolveKey(k Key, defaults, overrides Values) (string, error) {
	raw, err := r.pick(k, defaults, overrides)
	if err != nil {
		return "", err
	}
	return k.Normalize(raw)
}

func (r *BrandingResolver) pick(k Key, defaults, overrides Values) (string, error) {
	if v, ok := overrides[k]; ok {
		return v, nil
	}
	if v, ok := r.lookup(k.String()); ok {
		return strings.TrimSpace(v), nil
	}
	if k.Required() {
		return "", &OpError{
			Op:   "branding.resolve",
			Kind: KindMissingRequiredKey,
			Err:  fmt.Errorf("%s must be set via environment or --set: %w", k, ErrMissingRequiredKey),
		}
	}
	return defaults[k], nil
}

// ParseOverrides parses KEY=VALUE pairs. Values may contain '='; only the first
// one separates key and value. A repeated key keeps its last value.
func ParseOverrides(pairs []string) (Values, error) {
	out := Values{}
	for _, item := range pairs {
		name, value, found := strings.Cut(item, "=")
		if !found {
			return nil, &OpError{
				Op:   "branding.overrides",
				Kind: KindInvalidFormat,
				Err:  fmt.Errorf("%q is not in KEY=VALUE form: %w", item, ErrInvalidFormat),
			}
		}

		name = strings.TrimSpace(name)
		key, ok := ParseKey(name)
		if !ok {
			return nil, &OpError{
				Op:   "branding.overrides",
				Kind: KindUnsupportedKey,
				Err:  fmt.Errorf("%q: %w", name, ErrUnsupportedKey),
			}
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}
