// Package id implements the IDGenerator capability: a UUIDv4 generator backed
// by crypto/rand, with a deterministic timestamp-plus-random-suffix fallback
// for the (unlikely) case that the strong source is unavailable.
package id

import (
	"fmt"
	mrand "math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/minoq/storefront/internal/core/ports"
)

// New picks the generator at startup: UUID when crypto/rand responds,
// otherwise the timestamp fallback. Selection happens once here rather than
// as inline conditionals at every call site.
func New() ports.IDGenerator {
	if _, err := uuid.NewRandom(); err != nil {
		return TimestampGenerator{}
	}
	return UUIDGenerator{}
}

// UUIDGenerator issues random (version 4) UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	u, err := uuid.NewRandom()
	if err != nil {
		// crypto/rand failed mid-flight; degrade rather than block creation.
		return timestampID()
	}
	return u.String()
}

// TimestampGenerator is the deterministic fallback: millisecond timestamp
// plus a nine-character base36 suffix.
type TimestampGenerator struct{}

func (TimestampGenerator) NewID() string {
	return timestampID()
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func timestampID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[mrand.Intn(len(base36))]
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}
