// Package domain contains the types shared by every layer of the console
// backend: entity types, entities, parsed filters, dashboard settings and the
// sentinel errors used for errors.Is checks.
//
// The package has no dependencies beyond the standard library and knows
// nothing about how entities are fetched or where loading state is kept.
package domain
