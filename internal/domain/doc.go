// Package domain contains the core model for brandkit.
//
// The domain is transport- and persistence-agnostic: it does not read files, the
// process environment or the network. Infra/adapters map into/from these types.
package domain
