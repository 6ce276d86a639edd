package phys2d

import "errors"

// ErrNotImplemented is carried by the panic of operations that are
// declared but deliberately left unimplemented, such as Vec2.Abs.
var ErrNotImplemented = errors.New("not implemented")
