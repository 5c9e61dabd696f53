package vfb

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// KnownKeys returns every top-level key the catalogue recognises, sorted
// ascending. Deterministic ordering matters for diagnostics and for tests
// that enumerate the whole catalogue (the variant_to_key(key_to_variant(k))
// == k round-trip property), mirroring the pervasive
// golang.org/x/exp/maps.Keys + slices.Sort idiom for turning a map into a
// stable, ordered view.
func KnownKeys() []uint16 {
	keys := maps.Keys(keyCatalogue)
	slices.Sort(keys)
	return keys
}
