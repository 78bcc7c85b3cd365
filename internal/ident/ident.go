// Package ident generates the opaque identifiers assigned to new entities.
package ident

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Generator produces a new identifier on every call.
type Generator func() string

// New returns a random UUID. If the system entropy source fails it falls
// back to a timestamp plus random suffix, both base36.
func New() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fallback(time.Now())
	}
	return id.String()
}

func fallback(now time.Time) string {
	suffix := strconv.FormatUint(rand.Uint64(), 36)
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return strconv.FormatInt(now.UnixNano(), 36) + "-" + suffix
}

// Sequence returns a deterministic generator yielding prefix-1, prefix-2, ...
// It is meant for tests and fixtures.
func Sequence(prefix string) Generator {
	var n int
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
