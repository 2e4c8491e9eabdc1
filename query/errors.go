package query

import (
	"fmt"

	"github.com/dianpeng/topjoin/engine"
	"github.com/dianpeng/topjoin/output"
	"github.com/dianpeng/topjoin/relation"
	"github.com/pkg/errors"
)

// Error kinds a caller of Select can tell apart with errors.Is. The first
// three come from the loader, every one of them is fatal and nothing is
// written when any of them is returned.
var (
	ErrInputNotFound   = relation.ErrInputNotFound
	ErrInputUnreadable = relation.ErrInputUnreadable
	ErrMalformedRow    = relation.ErrMalformedRow
	ErrComputation     = engine.ErrComputation
	ErrOutputWrite     = output.ErrOutputWrite

	ErrVerification = errors.New("verification failure")
	ErrConfig       = errors.New("invalid config")
)

func err(kind error, stage string, f string, args ...interface{}) error {
	msg := fmt.Sprintf(f, args...)
	return errors.Wrapf(kind, "stage(%s): %s", stage, msg)
}

// Stage returns the name of the failing stage recorded in e, or "" if none.
func Stage(e error) string {
	for _, s := range []struct {
		kind  error
		stage string
	}{
		{ErrConfig, "config"},
		{ErrInputNotFound, "load"},
		{ErrInputUnreadable, "load"},
		{ErrMalformedRow, "load"},
		{ErrComputation, "compute"},
		{ErrVerification, "verify"},
		{ErrOutputWrite, "write"},
	} {
		if errors.Is(e, s.kind) {
			return s.stage
		}
	}
	return ""
}
