package acidmap

import "errors"

// ErrNotFound is returned by At when the requested key is absent.
var ErrNotFound = errors.New("acidmap: key not found")
