package source

import "errors"

// ErrInvalidSource is returned by [Resolver.Resolve] when a descriptor
// matches none of the recognized source grammars.
var ErrInvalidSource = errors.New("invalid or unrecognized source")
