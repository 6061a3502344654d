// Package envsource adapts environment sources to domain.LookupFunc.
package envsource

import (
	"os"

	"github.com/intrale/brandkit/internal/domain"
)

// Process returns a lookup backed by the process environment.
func Process() domain.LookupFunc {
	return os.LookupEnv
}

// Map returns a lookup backed by a fixed map; a key present with "" is set.
func Map(vars map[string]string) domain.LookupFunc {
	cp := make(map[string]string, len(vars))
	for k, v := range vars {
		cp[k] = v
	}
	return func(name string) (string, bool) {
		v, ok := cp[name]
		return v, ok
	}
}

// Layered consults each lookup in order and returns the first hit.
func Layered(lookups ...domain.LookupFunc) domain.LookupFunc {
	return func(name string) (string, bool) {
		for _, l := range lookups {
			if l == nil {
				continue
			}
			if v, ok := l(name); ok {
				return v, true
			}
		}
		return "", false
	}
}
