package g1

import (
	"errors"

	"github.com/gerri-robotics/g1bridge-go/internal/bindings"
)

var (
	// ErrNotBuilt reports that unitree_sdk2 is not linked into this binary.
	ErrNotBuilt = errors.New("g1: native SDK not built (build with cgo and -tags g1sdk)")

	// ErrUnknownAction is returned by ActionID for names outside the catalog.
	ErrUnknownAction = errors.New("g1: unknown arm action")

	errInvalidHandle = errors.New("g1: invalid handle")
)

// remapError converts bindings layer errors to public API errors.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bindings.ErrNotBuilt) {
		return ErrNotBuilt
	}
	return err
}
