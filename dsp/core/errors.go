package core

import "errors"

// Error kinds shared by every denoising package. Packages wrap them with
// context, so callers match with errors.Is.
var (
	// ErrConfiguration reports an unknown basis name, an unknown shrinkage
	// mode or an out-of-range policy parameter.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidParameter reports a parameter that is incompatible with the
	// signal, such as a decomposition level too deep for its length.
	ErrInvalidParameter = errors.New("invalid parameter")
)
