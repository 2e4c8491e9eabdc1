package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

// LIMIT of the query
const Limit = 10

type Group struct {
	A    float64 // group key, the raw a value
	XSum float64 // sum of x over every T1 row carrying A
	Rank int     // ordinal of the first T1 row carrying A, among groups
}

type ScoredGroup struct {
	A    float64
	S    float64
	Rank int
}

func (self ScoredGroup) String() string {
	return fmt.Sprintf("#%d(a=%v, s=%v)", self.Rank, self.A, self.S)
}

var ErrComputation = errors.New("computation failure")

func err(kind error, stage string, f string, args ...interface{}) error {
	msg := fmt.Sprintf(f, args...)
	return errors.Wrapf(kind, "stage(%s): %s", stage, msg)
}
