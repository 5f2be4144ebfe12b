// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions internal to the engine. File and parse
// errors carry their own context (see reader.go) and are not sentinels.
var (
	errSearchDepthExceeded = errors.New("search depth exceeds maxDepth")
	errEmptyColumn         = errors.New("cover of a header with count 0")
)

// InvariantError reports a violation of one of the five structural
// invariants of spec §3, caught by the sanity-check pass. It is only ever
// produced when the engine was built with Sanity(true).
type InvariantError struct {
	NodeID    int32
	Invariant int
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant I%d violated at node %d: %s", e.Invariant, e.NodeID, e.Detail)
}

// Error returns the error status of the ZDD, or the empty string if there is
// none.
func (z *ZDD) Error() string {
	if z.err == nil {
		return ""
	}
	return z.err.Error()
}

// Errored returns true if an error occurred during a previous computation.
func (z *ZDD) Errored() bool {
	return z.err != nil
}

func (z *ZDD) seterror(format string, a ...interface{}) error {
	if z.err != nil {
		format = format + "; " + z.Error()
		z.err = fmt.Errorf(format, a...)
		return z.err
	}
	z.err = fmt.Errorf(format, a...)
	if _DEBUG {
		logger.Println(z.err)
	}
	return z.err
}
