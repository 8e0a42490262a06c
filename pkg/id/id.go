package id

import "github.com/oklog/ulid/v2"

// New returns a ULID string. ULIDs sort lexicographically by generation
// time, so keys derived from them line up in the order they were minted.
func New() string {
	return ulid.Make().String()
}
