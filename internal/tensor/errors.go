package tensor

import "github.com/pkg/errors"

// ErrShapeMismatch is wrapped by every panic caused by a wrong number of
// values or values of the wrong length.
var ErrShapeMismatch = errors.New("shape mismatch")
