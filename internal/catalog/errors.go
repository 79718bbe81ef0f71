package catalog

import (
	"errors"
	"fmt"
)

// ErrConfig marks a benchmark config that is missing, unreadable, or
// structurally invalid. It aborts the whole fetch pass.
var ErrConfig = errors.New("invalid benchmark config")

// UnknownTypeError is returned by Query when the requested type has no header
// schema. It is distinct from a known type with no benchmarks, which is an
// empty (but successful) result.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown benchmark type %q", e.Type)
}
