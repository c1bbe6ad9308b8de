package id

import "github.com/google/uuid"

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}

// Stable derives a deterministic identifier from a namespaced key, used for seed rows.
func Stable(namespace, key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(namespace+":"+key)).String()
}
