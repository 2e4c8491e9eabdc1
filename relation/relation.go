package relation

import (
	"fmt"

	"github.com/pkg/errors"
)

// A single row of any input relation. For T1 the key is a and the value is
// x, for T2 it is (b, y) and for T3 it is (c, z).
type Pair struct {
	Key   float64
	Value float64
}

// Relation keeps its rows in file order. T1's file order is what decides the
// first-seen rank of a group, so nothing is allowed to reorder it in place.
type Relation []Pair

func (self Relation) Len() int { return len(self) }

func (self Relation) Keys() []float64 {
	out := make([]float64, len(self))
	for i, p := range self {
		out[i] = p.Key
	}
	return out
}

func (self Relation) Values() []float64 {
	out := make([]float64, len(self))
	for i, p := range self {
		out[i] = p.Value
	}
	return out
}

var (
	ErrInputNotFound   = errors.New("input not found")
	ErrInputUnreadable = errors.New("input unreadable")
	ErrMalformedRow    = errors.New("malformed row")
)

func err(kind error, stage string, f string, args ...interface{}) error {
	msg := fmt.Sprintf(f, args...)
	return errors.Wrapf(kind, "stage(%s): %s", stage, msg)
}
