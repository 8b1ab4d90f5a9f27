package scope

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is matched by every GeometryError.
var ErrInvalidGeometry = errors.New("scope: invalid recorder geometry")

// GeometryError reports a construction parameter that cannot produce a
// drawable recorder.
type GeometryError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("scope: invalid %s %g: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidGeometry) hold for every GeometryError.
func (e *GeometryError) Is(target error) bool {
	return target == ErrInvalidGeometry
}
