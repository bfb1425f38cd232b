package setcookie

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is wrapped by every error this package returns.
	ErrInvalidArgument = errors.New("setcookie: invalid argument")

	// ErrInvalidSameSite indicates a SameSite string that is not Lax, None
	// or Strict.
	ErrInvalidSameSite = fmt.Errorf("%w: invalid SameSite value", ErrInvalidArgument)
)
