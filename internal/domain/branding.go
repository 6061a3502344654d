package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Key identifies one of the branding settings understood by Branding.xcconfig.
// The set is closed: anything else is rejected when parsing overrides.
type Key int

const (
	KeyBrandID Key = iota
	KeyBundleIDSuffix
	KeyBrandName
	KeyDeeplinkHost
	KeyBrandingEndpoint
	KeyBrandingPreviewVersion
	KeyProductBundleIdentifier
	KeyDisplayName

	keyCount
)

// Values maps each key to its string value.
type Values map[Key]string

type normalizer func(Key, string) (string, error)

type keySpec struct {
	name string
	// required keys have no template fallback: an override or env var must provide them.
	required  bool
	normalize normalizer
}

var keySpecs = [keyCount]keySpec{
	KeyBrandID:                 {name: "BRAND_ID", required: true, normalize: nonEmpty},
	KeyBundleIDSuffix:          {name: "BUNDLE_ID_SUFFIX", normalize: bundleSuffix},
	KeyBrandName:               {name: "BRAND_NAME", normalize: trimOnly},
	KeyDeeplinkHost:            {name: "DEEPLINK_HOST", normalize: nonEmpty},
	KeyBrandingEndpoint:        {name: "BRANDING_ENDPOINT", normalize: nonEmpty},
	KeyBrandingPreviewVersion:  {name: "BRANDING_PREVIEW_VERSION", normalize: trimOnly},
	KeyProductBundleIdentifier: {name: "PRODUCT_BUNDLE_IDENTIFIER", normalize: trimOnly},
	KeyDisplayName:             {name: "DISPLAY_NAME", normalize: trimOnly},
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, keyCount)
	for k := Key(0); k < keyCount; k++ {
		m[keySpecs[k].name] = k
	}
	return m
}()

// Keys returns every recognized key in declaration order.
func Keys() []Key {
	out := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKey maps a setting name (e.g. "BRAND_ID") to its Key.
func ParseKey(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keySpecs[k].name
}

func (k Key) Valid() bool { return k >= 0 && k < keyCount }

// Required reports whether the key must come from an override or the environment.
func (k Key) Required() bool { return k.Valid() && keySpecs[k].required }

// Normalize applies the key's sanitization and validation rule.
func (k Key) Normalize(value string) (string, error) {
	if !k.Valid() {
		return "", &OpError{
			Op:   "branding.normalize",
			Kind: KindUnsupportedKey,
			Err:  fmt.Errorf("%s: %w", k, ErrUnsupportedKey),
		}
	}
	return keySpecs[k].normalize(k, value)
}

const zeroWidthSpace = "\u200b"

func trimOnly(_ Key, v string) (string, error) {
	return strings.TrimSpace(v), nil
}

func nonEmpty(k Key, v string) (string, error) {
	s := strings.TrimSpace(v)
	if s == "" {
		return "", validationErr(k, errors.New("value is required"))
	}
	return s, nil
}

func bundleSuffix(k Key, v string) (string, error) {
	s := strings.TrimSpace(strings.ReplaceAll(v, zeroWidthSpace, ""))
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return "", validationErr(k, errors.New("must not contain whitespace"))
	}
	// "..com.acme" would otherwise produce "app..com.acme" in the bundle id.
	return strings.TrimLeft(s, "."), nil
}

func validationErr(k Key, err error) error {
	return &OpError{
		Op:   "branding.normalize",
		Kind: KindValidation,
		Err:  fmt.Errorf("%s %v: %w", k, err, ErrValidation),
	}
}
