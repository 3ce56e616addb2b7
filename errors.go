package lazysignals

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSignal means a referenced entity does not exist or does not carry
	// the expected cell. Operations that hit it degrade to a logged no-op.
	ErrNoSignal = errors.New("signal does not exist")

	// ErrNoNextValue is the sentinel a cell's pending slot holds between
	// merges. It never escapes to callers as a stored value.
	ErrNoNextValue = errors.New("no next value")
)

// ReadError reports a malformed read attempt, usually a type mismatch
// between the cell's concrete value type and the requested one.
type ReadError struct {
	Entity Entity
}

func (e ReadError) Error() string {
	return fmt.Sprintf("error reading signal %d", e.Entity)
}
