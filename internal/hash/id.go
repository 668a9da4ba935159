package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given name. Categories, columns and data
// blocks are looked up through these IDs instead of string-keyed maps.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
